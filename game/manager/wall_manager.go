package manager

import (
	"blocksnake/game/entity"
	"blocksnake/game/types"
)

type WallManager struct {
	grid         types.Grid
	rng          types.Random
	collisionMgr *CollisionManager
	avoidOverlap bool
}

func NewWallManager(grid types.Grid, rng types.Random, collisionMgr *CollisionManager, avoidOverlap bool) *WallManager {
	return &WallManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		avoidOverlap: avoidOverlap,
	}
}

// GenerateWalls builds between MinWalls and MaxWalls-1 obstacles, each with
// between MinBricks and MaxBricks-1 bricks.
func (wm *WallManager) GenerateWalls(snake *entity.Snake) []entity.Wall {
	count := types.MinWalls + wm.rng.Intn(types.MaxWalls-types.MinWalls)

	walls := make([]entity.Wall, 0, count)
	for i := 0; i < count; i++ {
		bricks := types.MinBricks + wm.rng.Intn(types.MaxBricks-types.MinBricks)
		walls = append(walls, entity.RandomWallFrom(wm.anchor(snake, walls), bricks, wm.rng))
	}
	return walls
}

// anchor draws the first brick of a wall. With overlap avoidance on, only the
// anchor is kept clear of the snake and earlier walls; the walk from it is not.
func (wm *WallManager) anchor(snake *entity.Snake, walls []entity.Wall) types.Point {
	pos := entity.RandomInterior(wm.grid, wm.rng)
	if !wm.avoidOverlap {
		return pos
	}

	for i := 1; i < MaxSpawnAttempts; i++ {
		if wm.collisionMgr.ValidateSpawnPosition(pos, snake, walls) {
			break
		}
		pos = entity.RandomInterior(wm.grid, wm.rng)
	}
	return pos
}
