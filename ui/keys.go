package ui

import (
	"snake-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var letterKeys = input.Keymap[int32]{
	rl.KeyW: input.Up,
	rl.KeyS: input.Down,
	rl.KeyA: input.Left,
	rl.KeyD: input.Right,
}

var arrowKeys = input.Keymap[int32]{
	rl.KeyUp:    input.Up,
	rl.KeyDown:  input.Down,
	rl.KeyLeft:  input.Left,
	rl.KeyRight: input.Right,
}

// Keys maps raylib key codes for both schemes plus Enter.
var Keys = input.Merge(letterKeys, arrowKeys, input.Keymap[int32]{
	rl.KeyEnter:   input.Confirm,
	rl.KeyKpEnter: input.Confirm,
})

// PollIntents returns the intents for keys pressed since the last frame, in
// key-queue order so the last direction pressed is applied last.
func PollIntents() []input.Intent {
	var intents []input.Intent
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if intent := Keys.Lookup(key); intent != input.None {
			intents = append(intents, intent)
		}
	}
	return intents
}
