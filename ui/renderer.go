package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	snakeColor = rl.Color{R: 0, G: 200, B: 0, A: 255}
	headColor  = rl.Color{R: 0, G: 255, B: 0, A: 255}
	foodColor  = rl.Color{R: 255, G: 0, B: 0, A: 255}
)

// Renderer draws snapshots into the raylib window. It keeps the last
// snapshot so every frame can be redrawn without touching the game.
type Renderer struct {
	cellSize int32
	width    int32
	height   int32
	current  game.Snapshot
}

func NewRenderer(grid types.Grid, cellSize int32) *Renderer {
	r := &Renderer{cellSize: cellSize}
	r.width, r.height = WindowSize(grid, cellSize)
	return r
}

// Update replaces the snapshot drawn by subsequent frames.
func (r *Renderer) Update(s game.Snapshot) {
	r.current = s
}

func (r *Renderer) Draw() {
	s := r.current

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch s.Phase {
	case types.Start:
		r.drawLines(rl.White, "Snake", "Press Enter to Start Game")
	case types.GameOver:
		r.drawLines(rl.White, s.GameOverLines()...)
	case types.Running:
		r.drawBoard(s)
	}

	r.drawStatusBar(s)
	rl.EndDrawing()
}

func (r *Renderer) drawBoard(s game.Snapshot) {
	r.drawCell(s.Grid, s.Food, foodColor)

	for i := len(s.Snake) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(s.Grid, s.Snake[i], color)
	}

	if len(s.Snake) > 0 {
		r.drawHeading(s.Grid, s.Head(), s.Direction)
	}
}

func (r *Renderer) drawCell(grid types.Grid, p types.Point, color rl.Color) {
	if !grid.Contains(p) {
		return
	}
	x, y := CellOrigin(grid, p, r.cellSize)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

// drawHeading marks the head with a triangle pointing where it moves.
func (r *Renderer) drawHeading(grid types.Grid, head types.Point, dir types.Direction) {
	x, y := CellOrigin(grid, head, r.cellSize)
	headX, headY := float32(x), float32(y)
	size := float32(r.cellSize)
	half := size / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Yellow)
	}
}

// drawLines centers lines over the board area.
func (r *Renderer) drawLines(color rl.Color, lines ...string) {
	boardHeight := r.height - statusBarHeight
	top := boardHeight/2 - int32(len(lines))*lineHeight/2

	for i, line := range lines {
		textWidth := rl.MeasureText(line, fontSize)
		rl.DrawText(line, (r.width-textWidth)/2, top+int32(i)*lineHeight, fontSize, color)
	}
}

func (r *Renderer) drawStatusBar(s game.Snapshot) {
	barY := r.height - statusBarHeight
	rl.DrawRectangle(0, barY, r.width, statusBarHeight, rl.DarkGray)

	rl.DrawText(s.StatusText(), 8, barY+(statusBarHeight-fontSize)/2, fontSize, rl.White)
}
