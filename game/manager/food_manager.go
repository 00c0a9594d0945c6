package manager

import (
	"snake-gl/game/entity"
	"snake-gl/game/types"
)

// Number of random draws before GenerateFood falls back to scanning for a free cell
const maxSpawnAttempts = 64

// Rand is the subset of a random generator the food manager draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SpawnRegion returns the half-open rectangle [lo, hi) fruit is sampled from.
// Row 0 and column 0 are never part of it.
func (fm *FoodManager) SpawnRegion() (lo, hi types.Point) {
	return types.Point{X: 1, Y: 1}, types.Point{X: fm.grid.Width, Y: fm.grid.Height}
}

// RandomInRegion draws a cell uniformly from the spawn region without looking at the snake.
// Used for the very first fruit.
func (fm *FoodManager) RandomInRegion() types.Point {
	lo, hi := fm.SpawnRegion()
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return types.Point{}
	}
	return types.Point{
		X: lo.X + fm.rng.Intn(hi.X-lo.X),
		Y: lo.Y + fm.rng.Intn(hi.Y-lo.Y),
	}
}

// GenerateFood picks a cell from the spawn region that the snake does not occupy.
// It reports false when the whole grid is covered.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	lo, hi := fm.SpawnRegion()
	if hi.X > lo.X && hi.Y > lo.Y {
		for i := 0; i < maxSpawnAttempts; i++ {
			food := fm.RandomInRegion()
			if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
				return food, true
			}
		}
	}

	// Snake covers most of the region, pick among what is left
	if food, ok := fm.pickFree(snake, lo, hi); ok {
		return food, true
	}
	return fm.pickFree(snake, types.Point{}, types.Point{X: fm.grid.Width, Y: fm.grid.Height})
}

func (fm *FoodManager) pickFree(snake *entity.Snake, lo, hi types.Point) (types.Point, bool) {
	var free []types.Point
	for y := lo.Y; y < hi.Y; y++ {
		for x := lo.X; x < hi.X; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
