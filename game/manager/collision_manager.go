package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks a prospective head position against the walls and
// the snake's pre-move body, head included.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}

	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}

	return types.NoCollision
}

// isWallCollision checks if a position is outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// The tail has not been popped yet, so moving into the tail's cell counts.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	if snake == nil {
		return false
	}
	return snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
