package types

// Phase is the coarse game mode.
type Phase int

const (
	Start Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Start:
		return "start"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
