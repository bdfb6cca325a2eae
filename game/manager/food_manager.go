package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food cell and the random source used to move it.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	food         types.Point
	allowOnSnake bool
}

// NewFoodManager creates a food manager with no food placed yet. With
// allowOnSnake set, respawns pick any grid cell, including ones under the snake.
func NewFoodManager(grid types.Grid, rng *rand.Rand, allowOnSnake bool) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		allowOnSnake: allowOnSnake,
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Place puts the food on p without consulting the random source.
func (fm *FoodManager) Place(p types.Point) {
	fm.food = p
}

// Spawn moves the food to a new cell and returns it.
func (fm *FoodManager) Spawn(snake *entity.Snake) types.Point {
	if fm.allowOnSnake || snake == nil {
		fm.food = fm.randomCell()
		return fm.food
	}

	if food, ok := fm.freeCell(snake); ok {
		fm.food = food
		return fm.food
	}

	// Board is full.
	fm.food = fm.randomCell()
	return fm.food
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// freeCell draws uniformly among the cells the snake does not cover.
func (fm *FoodManager) freeCell(snake *entity.Snake) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		if fm.grid.Contains(part) {
			occupied[part] = struct{}{}
		}
	}

	free := fm.grid.Cells() - len(occupied)
	if free <= 0 {
		return types.Point{}, false
	}

	pick := fm.rng.Intn(free)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; taken {
				continue
			}
			if pick == 0 {
				return p, true
			}
			pick--
		}
	}

	return types.Point{}, false
}
