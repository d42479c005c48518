package manager

import (
	"blocksnake/game/entity"
	"blocksnake/game/types"
)

// MaxSpawnAttempts bounds the re-draws made when overlap avoidance is on.
const MaxSpawnAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          types.Random
	collisionMgr *CollisionManager
	avoidOverlap bool
}

func NewFoodManager(grid types.Grid, rng types.Random, collisionMgr *CollisionManager, avoidOverlap bool) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		avoidOverlap: avoidOverlap,
	}
}

// GenerateFruit places a new fruit on a random interior cell. Unless overlap
// avoidance is enabled the cell may already hold a wall or the snake.
func (fm *FoodManager) GenerateFruit(snake *entity.Snake, walls []entity.Wall) entity.Fruit {
	fruit := entity.RandomFruit(fm.grid, fm.rng)
	if !fm.avoidOverlap {
		return fruit
	}

	for i := 1; i < MaxSpawnAttempts; i++ {
		if fm.collisionMgr.ValidateSpawnPosition(fruit.Position(), snake, walls) {
			break
		}
		fruit = entity.RandomFruit(fm.grid, fm.rng)
	}
	return fruit
}
