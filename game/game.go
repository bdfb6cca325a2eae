package game

import (
	"io"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Settings are fixed for the lifetime of a Game.
type Settings struct {
	Grid types.Grid
	Seed uint64
	// FoodOnSnake lets respawned food land under the snake.
	FoodOnSnake bool
}

// Game is the single owned aggregate holding all simulation state. It is not
// safe for concurrent use; the control loop owns it.
type Game struct {
	ID        string
	Grid      types.Grid
	StartTime time.Time

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	ticks        int

	timer   Timer
	display Display
	log     *logrus.Entry
}

// NewGame builds a game in the Start phase. A nil timer, display or logger
// is replaced by a no-op.
func NewGame(settings Settings, timer Timer, display Display, log *logrus.Entry) *Game {
	grid := settings.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		grid = types.DefaultGrid()
	}
	if timer == nil {
		timer = nopTimer{}
	}
	if display == nil {
		display = nopDisplay{}
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	rng := rand.New(rand.NewSource(settings.Seed))
	foodMgr := manager.NewFoodManager(grid, rng, settings.FoodOnSnake)
	foodMgr.Place(initialFood(grid))

	return &Game{
		Grid:         grid,
		snake:        entity.NewSnake(startPosition(grid), types.Right),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
		timer:        timer,
		display:      display,
		log:          log,
	}
}

// initialFood keeps the start-screen food on the board for grids smaller
// than the default one.
func initialFood(grid types.Grid) types.Point {
	if grid.Contains(types.InitialFood) {
		return types.InitialFood
	}
	return types.Point{X: grid.Width - 1, Y: grid.Height - 1}
}

func startPosition(grid types.Grid) types.Point {
	if grid.Contains(types.StartPosition) {
		return types.StartPosition
	}
	return grid.Center()
}

// Reset starts a fresh game. The high score and session history survive.
func (g *Game) Reset() {
	g.ID = uuid.New().String()
	g.StartTime = time.Now()
	g.ticks = 0

	g.snake = entity.NewSnake(startPosition(g.Grid), types.Right)
	g.foodMgr.Spawn(g.snake)
	g.stateMgr.Begin()

	g.log.WithFields(logrus.Fields{
		"game_id":    g.ID,
		"food":       g.foodMgr.GetFood(),
		"high_score": g.stateMgr.GetHighScore(),
	}).Info("game started")

	g.timer.Arm()
	g.display.RequestRedraw()
}

// Confirm starts a game from the start screen or the game-over screen.
func (g *Game) Confirm() {
	switch phase := g.stateMgr.GetPhase(); phase {
	case types.Start, types.GameOver:
		g.log.WithField("from", phase.String()).Debug("confirm")
		g.Reset()
	case types.Running:
	}
}

// SetPendingDirection changes the heading immediately. The last accepted
// call before a tick wins; reversals and calls outside Running are ignored.
func (g *Game) SetPendingDirection(dir types.Direction) {
	if g.stateMgr.GetPhase() != types.Running {
		return
	}

	if !g.snake.SetDirection(dir) {
		g.log.WithFields(logrus.Fields{
			"current":   g.snake.Direction.String(),
			"requested": dir.String(),
		}).Trace("direction rejected")
	}
}

// Step advances the simulation by one tick. It does nothing outside Running.
func (g *Game) Step() {
	if g.stateMgr.GetPhase() != types.Running {
		return
	}

	newHead := g.snake.NextHead()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.endGame(collision)
		return
	}

	g.ticks++
	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.stateMgr.AddScore(types.FoodReward)
		food := g.foodMgr.Spawn(g.snake)

		g.log.WithFields(logrus.Fields{
			"game_id": g.ID,
			"score":   g.stateMgr.GetScore(),
			"length":  g.snake.Len(),
			"food":    food,
		}).Debug("food eaten")
	} else {
		g.snake.RemoveTail()
	}

	g.display.RequestRedraw()
	g.timer.Arm()
}

// endGame leaves the timer disarmed; only Reset arms it again.
func (g *Game) endGame(cause types.CollisionType) {
	g.stateMgr.End(manager.GameRecord{
		GameID:    g.ID,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
		Length:    g.snake.Len(),
		Ticks:     g.ticks,
		Cause:     cause,
	})

	g.log.WithFields(logrus.Fields{
		"game_id":    g.ID,
		"cause":      cause.String(),
		"score":      g.stateMgr.GetScore(),
		"high_score": g.stateMgr.GetHighScore(),
		"length":       g.snake.Len(),
		"ticks":        g.ticks,
		"games_played": g.stateMgr.GetGamesPlayed(),
	}).Info("game over")

	g.display.RequestRedraw()
}

func (g *Game) GetPhase() types.Phase {
	return g.stateMgr.GetPhase()
}

// GetHistory returns the finished games of this process, oldest first.
func (g *Game) GetHistory() []manager.GameRecord {
	return g.stateMgr.GetHistory()
}
