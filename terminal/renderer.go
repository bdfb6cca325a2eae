// Package terminal is the tcell front-end: it draws snapshots into a
// terminal screen and turns key events into intents.
package terminal

import (
	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so cells look square.
const cellWidth = 2

const startBanner = "Press Enter to Start Game"

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleBody    = styleDefault.Foreground(tcell.ColorGreen)
	styleHead    = styleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFood    = styleDefault.Foreground(tcell.ColorRed)
	styleTitle   = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints s. The caller shows the screen.
func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.SetStyle(styleDefault)
	r.screen.Clear()

	r.drawBorder(s.Grid)

	switch s.Phase {
	case types.Start:
		r.drawOverlay(s.Grid, "SNAKE", startBanner)
	case types.GameOver:
		r.drawOverlay(s.Grid, s.GameOverLines()...)
	case types.Running:
		r.drawBoard(s)
	}

	r.drawStatus(s)
}

// CellOrigin returns the screen column and row of the grid cell p.
// Row 0 of the screen is the top border, so Y is flipped.
func CellOrigin(grid types.Grid, p types.Point) (int, int) {
	return 1 + p.X*cellWidth, grid.Height - p.Y
}

func (r *Renderer) drawBoard(s game.Snapshot) {
	r.drawCell(s.Grid, s.Food, '●', ' ', styleFood)

	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		r.drawCell(s.Grid, s.Snake[i], '█', '█', style)
	}
}

func (r *Renderer) drawCell(grid types.Grid, p types.Point, left, right rune, style tcell.Style) {
	if !grid.Contains(p) {
		return
	}
	x, y := CellOrigin(grid, p)
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawBorder(grid types.Grid) {
	right := grid.Width*cellWidth + 1
	bottom := grid.Height + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

// drawOverlay centers lines inside the board, first line highlighted.
func (r *Renderer) drawOverlay(grid types.Grid, lines ...string) {
	boardWidth := grid.Width*cellWidth + 2
	top := (grid.Height+2)/2 - len(lines)/2

	for i, line := range lines {
		style := styleDefault
		if i == 0 {
			style = styleTitle
		}
		x := (boardWidth - len([]rune(line))) / 2
		if x < 1 {
			x = 1
		}
		r.drawText(x, top+i, line, style)
	}
}

func (r *Renderer) drawStatus(s game.Snapshot) {
	r.drawText(0, s.Grid.Height+2, s.StatusText(), styleDefault)
	r.drawText(0, s.Grid.Height+3, "WASD/arrows move  Enter start  Esc quit", styleBorder)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
