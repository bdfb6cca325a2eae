// Package ui is the raylib window front-end.
package ui

import (
	"context"

	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/types"
	"snake-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

const targetFPS = 60

// Run opens the window and drives g until the window closes, the player
// quits, or ctx is done. Input is applied before the tick in each frame.
// Any pending tick is cancelled on return.
func Run(ctx context.Context, title string, g *game.Game, sched *clock.Scheduler, frame *game.Redraw, log *logrus.Entry) error {
	renderer := NewRenderer(g.Grid, types.CellSize)
	width, height := WindowSize(g.Grid, types.CellSize)

	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()
	defer sched.Disarm()
	rl.SetTargetFPS(targetFPS)

	renderer.Update(g.Snapshot())
	log.WithFields(logrus.Fields{
		"width":         width,
		"height":        height,
		"tick_interval": sched.Interval(),
	}).Info("window front-end started")

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing window")
			return nil
		default:
		}

		for _, intent := range PollIntents() {
			if !input.Dispatch(g, intent) {
				log.WithField("tick_pending", sched.Armed()).Info("quit requested")
				return nil
			}
		}

		if sched.Due() {
			g.Step()
		}

		if frame.Take() {
			renderer.Update(g.Snapshot())
		}
		renderer.Draw()
	}

	log.Info("window closed")
	return nil
}
