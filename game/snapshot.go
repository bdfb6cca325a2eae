package game

import (
	"fmt"

	"snake-arcade/game/types"
)

// recentGames is how many finished games the snapshot lists.
const recentGames = 3

// Cell is what occupies a grid position in a snapshot.
type Cell int

const (
	Empty Cell = iota
	Food
	Body
	Head
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	GameID      string
	Grid        types.Grid
	Snake       []types.Point // head first
	Food        types.Point
	Direction   types.Direction
	Phase       types.Phase
	Score       int
	HighScore   int
	Ticks       int
	GamesPlayed int
	Cause       types.CollisionType
	Recent      []int // scores of the last finished games, newest first
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:      g.ID,
		Grid:        g.Grid,
		Snake:       g.snake.Cells(),
		Food:        g.foodMgr.GetFood(),
		Direction:   g.snake.Direction,
		Phase:       g.stateMgr.GetPhase(),
		Score:       g.stateMgr.GetScore(),
		HighScore:   g.stateMgr.GetHighScore(),
		Ticks:       g.ticks,
		GamesPlayed: g.stateMgr.GetGamesPlayed(),
		Cause:       g.stateMgr.GetLastCause(),
		Recent:      g.recentScores(recentGames),
	}
}

func (g *Game) recentScores(n int) []int {
	history := g.GetHistory()
	scores := make([]int, 0, n)
	for i := len(history) - 1; i >= 0 && len(scores) < n; i-- {
		scores = append(scores, history[i].Score)
	}
	return scores
}

// CauseText describes how the last game ended, or "" if it has not ended.
func (s Snapshot) CauseText() string {
	switch s.Cause {
	case types.WallCollision:
		return "Hit the wall"
	case types.SelfCollision:
		return "Ran into itself"
	default:
		return ""
	}
}

// RecentText lists the recent scores, or "" before the first game over.
func (s Snapshot) RecentText() string {
	if len(s.Recent) == 0 {
		return ""
	}
	text := "Last games:"
	for i, score := range s.Recent {
		if i > 0 {
			text += ","
		}
		text += fmt.Sprintf(" %d", score)
	}
	return text
}

// StatusText is the one-line score summary shown under the board.
func (s Snapshot) StatusText() string {
	return fmt.Sprintf("Score: %d  High Score: %d  Games: %d", s.Score, s.HighScore, s.GamesPlayed)
}

// GameOverLines are the overlay lines for the game-over screen.
func (s Snapshot) GameOverLines() []string {
	lines := []string{"Game Over!"}
	if cause := s.CauseText(); cause != "" {
		lines = append(lines, cause)
	}
	lines = append(lines,
		"Press Enter to Play Again",
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("High Score: %d", s.HighScore),
	)
	if recent := s.RecentText(); recent != "" {
		lines = append(lines, recent)
	}
	return lines
}

func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// CellAt reports what is drawn at p. The snake is drawn over the food.
func (s Snapshot) CellAt(p types.Point) Cell {
	for i, part := range s.Snake {
		if part != p {
			continue
		}
		if i == 0 {
			return Head
		}
		return Body
	}
	if p == s.Food {
		return Food
	}
	return Empty
}
