package terminal

import (
	"context"
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/input"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// frameInterval is how often the loop checks the tick scheduler.
const frameInterval = 10 * time.Millisecond

// Open creates and initializes the terminal screen. The caller must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}

	screen.HideCursor()
	return screen, nil
}

// Run drives g from screen until the player quits or ctx is done. Input is
// always applied before the tick that follows it. Any pending tick is
// cancelled on return.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, sched *clock.Scheduler, frame *game.Redraw, log *logrus.Entry) error {
	renderer := NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	defer sched.Disarm()

	frame.RequestRedraw()
	log.WithField("tick_interval", sched.Interval()).Info("terminal front-end started")

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving terminal front-end")
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent := KeyIntent(ev)
				if !input.Dispatch(g, intent) {
					log.WithField("tick_pending", sched.Armed()).Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				frame.RequestRedraw()
			}

		case <-ticker.C:
			if sched.Due() {
				g.Step()
			}
		}

		if frame.Take() {
			renderer.Draw(g.Snapshot())
			screen.Show()
		}
	}
}
