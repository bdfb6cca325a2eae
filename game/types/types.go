package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell on the grid. Y grows upwards.
type Point struct {
	X, Y int
}

// Game constants
const (
	GridWidth    = 20
	GridHeight   = 20
	CellSize     = 25 // Pixels per cell in the window front-end
	TickInterval = 100 * time.Millisecond
	FoodReward   = 10
)

var (
	// StartPosition is where every new snake is placed.
	StartPosition = Point{X: 10, Y: 10}
	// InitialFood is the food cell shown before the first game starts.
	InitialFood = Point{X: 15, Y: 15}
)

// DefaultGrid returns the build-time grid.
func DefaultGrid() Grid {
	return Grid{Width: GridWidth, Height: GridHeight}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding towards the origin.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}
