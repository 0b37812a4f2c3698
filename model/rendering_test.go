package model

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := newGridWith(t, 3, 2, Coord{0, 1}, Coord{1, 0}, Coord{1, 2})
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}

	require.NoError(t, r.Display(g.CellsView()))
	assert.Equal(t, "  ██  \n██  ██\n", out.String())
}

func TestTerminalRendererStaleView(t *testing.T) {
	g := newEmptyGrid(t, 3, 3)
	v := g.CellsView()
	g.Advance()

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	err := r.Display(v)
	assert.True(t, errors.Is(err, ErrStaleView))
	assert.Empty(t, out.String())
}

func TestTerminalRendererClear(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	require.NoError(t, r.Clear())
	assert.Equal(t, ansiClear, out.String())
}

func TestTerminalRendererDisplayCells(t *testing.T) {
	g := newGridWith(t, 3, 2, Coord{0, 1}, Coord{1, 0}, Coord{1, 2})
	var fromView, fromCells bytes.Buffer

	require.NoError(t, (&TerminalRenderer{Out: &fromView}).Display(g.CellsView()))
	require.NoError(t, (&TerminalRenderer{Out: &fromCells}).DisplayCells(g.Width(), g.Height(), g.GetCells()))
	assert.Equal(t, fromView.String(), fromCells.String())

	// snapshots stay drawable after the grid moves on
	snapshot := g.GetCells()
	g.Advance()
	fromCells.Reset()
	require.NoError(t, (&TerminalRenderer{Out: &fromCells}).DisplayCells(3, 2, snapshot))
	assert.Equal(t, "  ██  \n██  ██\n", fromCells.String())
}

func TestTerminalRendererDisplayCellsShort(t *testing.T) {
	var out bytes.Buffer
	err := (&TerminalRenderer{Out: &out}).DisplayCells(8, 8, []uint32{0})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Empty(t, out.String())
}
