package game

// Timer is the tick source. Arm schedules exactly one future tick.
type Timer interface {
	Arm()
}

// Display is told when the snapshot has changed.
type Display interface {
	RequestRedraw()
}

type nopTimer struct{}

func (nopTimer) Arm() {}

type nopDisplay struct{}

func (nopDisplay) RequestRedraw() {}

// Redraw latches redraw requests until the front-end takes them.
type Redraw struct {
	pending bool
}

func (r *Redraw) RequestRedraw() {
	r.pending = true
}

// Take reports whether a redraw was requested since the last call.
func (r *Redraw) Take() bool {
	pending := r.pending
	r.pending = false
	return pending
}
