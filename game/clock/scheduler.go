// Package clock schedules simulation ticks for a control loop that polls it.
package clock

import "time"

// Scheduler is a one-shot periodic task. Arm schedules the next tick one
// interval from now; Due fires it at most once and leaves the scheduler
// disarmed until it is armed again. Not re-arming cancels future ticks.
type Scheduler struct {
	interval time.Duration
	now      func() time.Time
	next     time.Time
	armed    bool
}

// NewScheduler creates a disarmed scheduler. A nil now uses time.Now.
func NewScheduler(interval time.Duration, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		interval: interval,
		now:      now,
	}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

func (s *Scheduler) Arm() {
	s.next = s.now().Add(s.interval)
	s.armed = true
}

func (s *Scheduler) Disarm() {
	s.armed = false
}

func (s *Scheduler) Armed() bool {
	return s.armed
}

// Due reports whether an armed tick has come due, consuming it if so.
func (s *Scheduler) Due() bool {
	if !s.armed || s.now().Before(s.next) {
		return false
	}
	s.armed = false
	return true
}
