package manager

import (
	"time"

	"snake-arcade/game/types"
)

// maxHistory bounds the in-memory session history.
const maxHistory = 50

// GameRecord describes one finished game.
type GameRecord struct {
	GameID    string              `json:"gameId"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Ticks     int                 `json:"ticks"`
	Cause     types.CollisionType `json:"cause"`
}

// StateManager tracks phase, score and the process-lifetime high score.
// Nothing is written to disk.
type StateManager struct {
	phase       types.Phase
	score       int
	highScore   int
	lastCause   types.CollisionType
	gamesPlayed int
	history     []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase:   types.Start,
		history: make([]GameRecord, 0),
	}
}

func (sm *StateManager) GetPhase() types.Phase {
	return sm.phase
}

// Begin starts a new game: score back to zero, phase Running.
func (sm *StateManager) Begin() {
	sm.score = 0
	sm.lastCause = types.NoCollision
	sm.phase = types.Running
}

func (sm *StateManager) AddScore(points int) {
	if points > 0 {
		sm.score += points
	}
}

// End moves to GameOver, folds the score into the high score and appends
// the record to the session history.
func (sm *StateManager) End(record GameRecord) {
	sm.phase = types.GameOver
	sm.lastCause = record.Cause
	sm.gamesPlayed++
	sm.UpdateScore(sm.score)

	record.Score = sm.score
	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, record)
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetLastCause() types.CollisionType {
	return sm.lastCause
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetHistory returns a copy of the most recent finished games, oldest first.
func (sm *StateManager) GetHistory() []GameRecord {
	history := make([]GameRecord, len(sm.history))
	copy(history, sm.history)
	return history
}
