package manager

import (
	"blocksnake/game/entity"
	"blocksnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies what the snake head is on. Self collision wins
// over walls, walls over fruit.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, border entity.Wall, walls []entity.Wall, fruit entity.Fruit) types.CollisionKind {
	head := snake.Head()

	// Hit its own body?
	if snake.IsSelfColliding() {
		return types.SnakeCollision
	}

	// Hit the border?
	if entity.Classify(head, border) == types.WallCollision {
		return types.WallCollision
	}

	// Hit an obstacle?
	for _, wall := range walls {
		if entity.Classify(head, wall) == types.WallCollision {
			return types.WallCollision
		}
	}

	// Found food?
	if entity.Classify(head, fruit) == types.FruitCollision {
		return types.FruitCollision
	}

	return types.NoCollision
}

// ValidateSpawnPosition reports whether pos is inside the border and free of
// the snake and the given walls.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, walls []entity.Wall) bool {
	if cm.isBorder(pos) {
		return false
	}

	if snake != nil && snake.Occupies(pos) {
		return false
	}

	for _, wall := range walls {
		if wall.Contains(pos) {
			return false
		}
	}

	return true
}

// isBorder reports whether pos is on or outside the border.
func (cm *CollisionManager) isBorder(pos types.Point) bool {
	return pos.X <= 0 || pos.X >= cm.grid.Width || pos.Y <= 0 || pos.Y >= cm.grid.Height
}
