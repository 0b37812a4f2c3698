package model

import "github.com/pkg/errors"

// View is a borrowed, read-only window onto a Grid's packed cells.
// Any mutation of the grid invalidates it; reads then fail with ErrStaleView.
type View struct {
	grid    *Grid
	version uint64
}

func (v View) check() error {
	if v.grid == nil || v.grid.version != v.version {
		return ErrStaleView
	}
	return nil
}

// Valid reports whether the grid is unchanged since the view was taken
func (v View) Valid() bool {
	return v.check() == nil
}

// Width returns the grid width at the time the view was taken
func (v View) Width() uint32 {
	if v.grid == nil {
		return 0
	}
	return v.grid.width
}

// Height returns the grid height at the time the view was taken
func (v View) Height() uint32 {
	if v.grid == nil {
		return 0
	}
	return v.grid.height
}

// Words returns the grid's backing 64-bit words without copying. Cell i is
// bit i%64 of word i/64. The slice must not be modified or kept.
func (v View) Words() ([]uint64, error) {
	if err := v.check(); err != nil {
		return nil, errors.Wrap(err, "[View.Words]")
	}
	return v.grid.cells.Bytes(), nil
}

// Alive reports whether the cell at (row, col) is alive
func (v View) Alive(row, col uint32) (bool, error) {
	if err := v.check(); err != nil {
		return false, errors.Wrap(err, "[View.Alive]")
	}
	return v.grid.Alive(row, col)
}
