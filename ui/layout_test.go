package ui

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
)

func TestWindowSize(t *testing.T) {
	width, height := WindowSize(types.DefaultGrid(), types.CellSize)

	assert.Equal(t, int32(500), width)
	assert.Equal(t, int32(500+statusBarHeight), height)
}

func TestCellOrigin(t *testing.T) {
	grid := types.DefaultGrid()

	t.Run("Origin cell is bottom left", func(t *testing.T) {
		x, y := CellOrigin(grid, types.Point{X: 0, Y: 0}, types.CellSize)

		assert.Equal(t, int32(0), x)
		assert.Equal(t, int32(475), y)
	})

	t.Run("Top row is drawn first", func(t *testing.T) {
		x, y := CellOrigin(grid, types.Point{X: 19, Y: 19}, types.CellSize)

		assert.Equal(t, int32(475), x)
		assert.Equal(t, int32(0), y)
	})

	t.Run("Moving up lowers the pixel row", func(t *testing.T) {
		_, below := CellOrigin(grid, types.Point{X: 10, Y: 10}, types.CellSize)
		_, above := CellOrigin(grid, types.Point{X: 10, Y: 11}, types.CellSize)

		assert.Equal(t, below-types.CellSize, above)
	})
}
