package manager

import (
	"snake-gl/game/entity"
	"snake-gl/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSelfCollision reports whether the head has run into the body.
// Must be evaluated after the snake moved.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) bool {
	return snake.BodyContains(snake.Head)
}

// CheckWin reports whether the snake covers every cell of the grid
func (cm *CollisionManager) CheckWin(snake *entity.Snake) bool {
	return snake.Length() == cm.grid.Cells()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for a new fruit
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
