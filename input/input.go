// Package input turns key presses from any front-end into game intents.
package input

import (
	"snake-arcade/game/types"
)

// Intent is a discrete player request.
type Intent int

const (
	None Intent = iota
	Up
	Down
	Left
	Right
	Confirm
	Quit
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps a directional intent onto a heading.
func (i Intent) Direction() (types.Direction, bool) {
	switch i {
	case Up:
		return types.Up, true
	case Down:
		return types.Down, true
	case Left:
		return types.Left, true
	case Right:
		return types.Right, true
	default:
		return 0, false
	}
}

// Controller is the part of the game input is allowed to touch.
type Controller interface {
	SetPendingDirection(dir types.Direction)
	Confirm()
}

// Dispatch applies intent to c. It returns false when the player asked to quit.
func Dispatch(c Controller, intent Intent) bool {
	switch intent {
	case Quit:
		return false
	case Confirm:
		c.Confirm()
	case Up, Down, Left, Right:
		dir, _ := intent.Direction()
		c.SetPendingDirection(dir)
	case None:
	}
	return true
}

// Keymap binds one front-end's key codes to intents.
type Keymap[K comparable] map[K]Intent

// Lookup returns None for unbound keys.
func (m Keymap[K]) Lookup(key K) Intent {
	if intent, ok := m[key]; ok {
		return intent
	}
	return None
}

// Merge combines schemes; later maps win on conflicts.
func Merge[K comparable](maps ...Keymap[K]) Keymap[K] {
	merged := make(Keymap[K])
	for _, m := range maps {
		for key, intent := range m {
			merged[key] = intent
		}
	}
	return merged
}

// Letters is the WASD scheme keyed by rune, both cases.
var Letters = Keymap[rune]{
	'w': Up, 'W': Up,
	's': Down, 'S': Down,
	'a': Left, 'A': Left,
	'd': Right, 'D': Right,
}
