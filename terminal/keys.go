package terminal

import (
	"snake-arcade/input"

	"github.com/gdamore/tcell/v2"
)

var arrows = input.Keymap[tcell.Key]{
	tcell.KeyUp:     input.Up,
	tcell.KeyDown:   input.Down,
	tcell.KeyLeft:   input.Left,
	tcell.KeyRight:  input.Right,
	tcell.KeyEnter:  input.Confirm,
	tcell.KeyEscape: input.Quit,
	tcell.KeyCtrlC:  input.Quit,
}

// KeyIntent maps a tcell key event onto an intent. Letters use the shared
// WASD scheme.
func KeyIntent(ev *tcell.EventKey) input.Intent {
	if ev.Key() == tcell.KeyRune {
		return input.Letters.Lookup(ev.Rune())
	}
	return arrows.Lookup(ev.Key())
}
