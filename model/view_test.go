package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsView(t *testing.T) {
	g := newGridWith(t, 10, 10, Coord{0, 3}, Coord{9, 9})
	v := g.CellsView()

	require.True(t, v.Valid())
	assert.Equal(t, uint32(10), v.Width())
	assert.Equal(t, uint32(10), v.Height())

	words, err := v.Words()
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, uint64(1<<3), words[0])
	assert.Equal(t, uint64(1<<35), words[1])

	alive, err := v.Alive(9, 9)
	require.NoError(t, err)
	assert.True(t, alive)

	_, err = v.Alive(10, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestCellsViewInvalidatedByMutation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Grid) error
	}{
		{"advance", func(g *Grid) error { g.Advance(); return nil }},
		{"toggle", func(g *Grid) error { return g.ToggleCell(1, 1) }},
		{"set cells", func(g *Grid) error { return g.SetCells([]Coord{{2, 2}}) }},
		{"set width", func(g *Grid) error { return g.SetWidth(6) }},
		{"set height", func(g *Grid) error { return g.SetHeight(6) }},
		{"clear", func(g *Grid) error { g.Clear(); return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGridWith(t, 5, 5, Coord{0, 0})
			v := g.CellsView()
			require.NoError(t, tt.mutate(g))

			assert.False(t, v.Valid())
			_, err := v.Words()
			assert.True(t, errors.Is(err, ErrStaleView))
			_, err = v.Alive(0, 0)
			assert.True(t, errors.Is(err, ErrStaleView))

			assert.True(t, g.CellsView().Valid())
		})
	}
}

func TestCellsViewSurvivesFailedMutation(t *testing.T) {
	g := newEmptyGrid(t, 5, 5)
	v := g.CellsView()

	require.Error(t, g.ToggleCell(9, 9))
	require.Error(t, g.SetCells([]Coord{{9, 9}}))
	require.Error(t, g.SetWidth(0))

	assert.True(t, v.Valid())
}

func TestZeroView(t *testing.T) {
	var v View
	assert.False(t, v.Valid())
	assert.Zero(t, v.Width())
	_, err := v.Words()
	assert.True(t, errors.Is(err, ErrStaleView))
}

func TestCellsViewSurvivesEmptySetCells(t *testing.T) {
	g := newGridWith(t, 5, 5, Coord{1, 1})
	v := g.CellsView()

	require.NoError(t, g.SetCells(nil))
	require.NoError(t, g.SetCells([]Coord{}))
	require.NoError(t, g.Place(nil))

	assert.True(t, v.Valid())
	alive, err := v.Alive(1, 1)
	require.NoError(t, err)
	assert.True(t, alive)
}
