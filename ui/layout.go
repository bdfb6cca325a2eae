package ui

import "snake-arcade/game/types"

const (
	statusBarHeight = 30
	fontSize        = 20
	lineHeight      = 24
)

// WindowSize returns the window size in pixels for grid.
func WindowSize(grid types.Grid, cellSize int32) (int32, int32) {
	return int32(grid.Width) * cellSize, int32(grid.Height)*cellSize + statusBarHeight
}

// CellOrigin returns the top-left pixel of cell p. Grid Y grows upwards and
// screen Y grows downwards, so rows are flipped.
func CellOrigin(grid types.Grid, p types.Point, cellSize int32) (int32, int32) {
	return int32(p.X) * cellSize, int32(grid.Height-1-p.Y) * cellSize
}
