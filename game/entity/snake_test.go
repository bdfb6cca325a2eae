package entity

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, types.Right)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, types.Point{X: 10, Y: 10}, s.GetHead())
	assert.Equal(t, []types.Point{{X: 10, Y: 10}}, s.Cells())
	assert.Equal(t, types.Point{X: 11, Y: 10}, s.NextHead())
}

func TestSnake_MoveAndRemoveTail(t *testing.T) {
	// Given: a three-cell snake
	s := &Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
		Direction: types.Down,
	}

	// When: it moves without eating
	s.Move(s.NextHead())
	s.RemoveTail()

	// Then: the head advanced and the tail was dropped
	assert.Equal(t, []types.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}}, s.Body)

	// When: it moves and keeps its tail
	s.Move(s.NextHead())

	// Then: it is one cell longer
	assert.Equal(t, []types.Point{{X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}}, s.Body)
}

func TestSnake_RemoveTailKeepsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.Up)

	s.RemoveTail()

	assert.Equal(t, 1, s.Len())
}

func TestSnake_SetDirection(t *testing.T) {
	t.Run("Perpendicular turn is accepted", func(t *testing.T) {
		s := NewSnake(types.Point{}, types.Right)

		assert.True(t, s.SetDirection(types.Up))
		assert.Equal(t, types.Up, s.Direction)
	})

	t.Run("Reversal is rejected", func(t *testing.T) {
		s := NewSnake(types.Point{}, types.Right)

		assert.False(t, s.SetDirection(types.Left))
		assert.Equal(t, types.Right, s.Direction)
	})

	t.Run("Same heading is accepted", func(t *testing.T) {
		s := NewSnake(types.Point{}, types.Down)

		assert.True(t, s.SetDirection(types.Down))
		assert.Equal(t, types.Down, s.Direction)
	})

	t.Run("Invalid heading is rejected", func(t *testing.T) {
		s := NewSnake(types.Point{}, types.Down)

		assert.False(t, s.SetDirection(types.Direction(42)))
		assert.Equal(t, types.Down, s.Direction)
	})
}

func TestSnake_OccupiesAndCells(t *testing.T) {
	s := &Snake{Body: []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}}

	assert.True(t, s.Occupies(types.Point{X: 2, Y: 1}))
	assert.False(t, s.Occupies(types.Point{X: 3, Y: 1}))

	cells := s.Cells()
	cells[0] = types.Point{X: 9, Y: 9}
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetHead())
}
