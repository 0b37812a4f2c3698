package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitlife/rules"
)

const (
	DefaultWidth  uint32 = 64
	DefaultHeight uint32 = 64
)

// Coord addresses a single cell
type Coord struct {
	Row, Col uint32
}

// Grid is a toroidal Game of Life board with one bit per cell.
//
// Cells are stored row-major: cell (row, col) is bit row*width+col. A second
// buffer of the same size receives each generation and is swapped in once the
// pass completes, so neighbor counts always read the previous generation.
type Grid struct {
	width   uint32
	height  uint32
	cells   *bitset.BitSet
	scratch *bitset.BitSet

	// bumped by every mutation, checked by View reads
	version uint64
}

// NewGrid creates a width x height grid, asking seed once per cell in row-major
// order whether that cell starts alive. A nil seed gives an empty grid.
func NewGrid(width, height uint32, seed SeedFunc) (*Grid, error) {
	size, err := cellCount(width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGrid] cannot allocate %dx%d grid", width, height)
	}

	g := &Grid{
		width:   width,
		height:  height,
		cells:   bitset.New(size),
		scratch: bitset.New(size),
	}
	if seed != nil {
		for i := uint(0); i < size; i++ {
			if seed() {
				g.cells.Set(i)
			}
		}
	}
	return g, nil
}

// NewDefaultGrid creates a 64x64 grid with every cell alive with probability 0.5.
// A nil rng falls back to a time seeded source.
func NewDefaultGrid(rng *rand.Rand) *Grid {
	if rng == nil {
		rng = NewRand(0)
	}
	return mustGrid(NewGrid(DefaultWidth, DefaultHeight, RandomSeed(rng, DefaultDensity)))
}

// mustGrid panics on an error that valid constant dimensions cannot produce
func mustGrid(g *Grid, err error) *Grid {
	if err != nil {
		panic(err)
	}
	return g
}

func cellCount(width, height uint32) (uint, error) {
	if width == 0 || height == 0 {
		return 0, ErrInvalidDimensions
	}
	size := uint64(width) * uint64(height)
	if size > math.MaxUint32 {
		return 0, ErrAllocation
	}
	return uint(size), nil
}

// Width returns the number of columns
func (g *Grid) Width() uint32 {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() uint32 {
	return g.height
}

func (g *Grid) index(row, col uint32) uint {
	return uint(row*g.width + col)
}

func (g *Grid) checkBounds(row, col uint32) error {
	if row >= g.height || col >= g.width {
		return errors.Wrapf(ErrIndexOutOfRange, "(%d, %d) outside %dx%d grid", row, col, g.width, g.height)
	}
	return nil
}

// Alive reports whether the cell at (row, col) is alive
func (g *Grid) Alive(row, col uint32) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, errors.Wrap(err, "[Alive]")
	}
	return g.cells.Test(g.index(row, col)), nil
}

// ToggleCell inverts the cell at (row, col)
func (g *Grid) ToggleCell(row, col uint32) error {
	if err := g.checkBounds(row, col); err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	g.cells.Flip(g.index(row, col))
	g.version++
	return nil
}

// SetCells marks every listed cell alive and leaves all other cells as they are.
// If any coordinate is out of range the grid is left untouched.
func (g *Grid) SetCells(coords []Coord) error {
	if len(coords) == 0 {
		return nil
	}
	for _, c := range coords {
		if err := g.checkBounds(c.Row, c.Col); err != nil {
			return errors.Wrap(err, "[SetCells]")
		}
	}
	for _, c := range coords {
		g.cells.Set(g.index(c.Row, c.Col))
	}
	g.version++
	return nil
}

// Place stamps a pattern onto the grid, wrapping coordinates around the edges
func (g *Grid) Place(pattern []Coord) error {
	wrapped := make([]Coord, len(pattern))
	for i, c := range pattern {
		wrapped[i] = Coord{Row: c.Row % g.height, Col: c.Col % g.width}
	}
	return g.SetCells(wrapped)
}

// SetWidth changes the number of columns. Every cell is reset to dead; resizing
// never preserves board content.
func (g *Grid) SetWidth(width uint32) error {
	if err := g.resize(width, g.height); err != nil {
		return errors.Wrapf(err, "[SetWidth] cannot resize to width %d", width)
	}
	return nil
}

// SetHeight changes the number of rows. Every cell is reset to dead; resizing
// never preserves board content.
func (g *Grid) SetHeight(height uint32) error {
	if err := g.resize(g.width, height); err != nil {
		return errors.Wrapf(err, "[SetHeight] cannot resize to height %d", height)
	}
	return nil
}

func (g *Grid) resize(width, height uint32) error {
	size, err := cellCount(width, height)
	if err != nil {
		return err
	}
	g.width = width
	g.height = height
	g.cells = bitset.New(size)
	g.scratch = bitset.New(size)
	g.version++
	return nil
}

// Clear kills every cell, keeping the current dimensions
func (g *Grid) Clear() {
	g.cells.ClearAll()
	g.version++
}

// wrap offsets v by d modulo n. d is one of n-1, 0 or 1, so n-1 steps backwards.
func wrap(v, d, n uint32) uint32 {
	return uint32((uint64(v) + uint64(d)) % uint64(n))
}

// liveNeighborCount sums the eight toroidal neighbors of (row, col)
func (g *Grid) liveNeighborCount(row, col uint32) int {
	count := 0
	for _, dr := range [3]uint32{g.height - 1, 0, 1} {
		for _, dc := range [3]uint32{g.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells.Test(g.index(wrap(row, dr, g.height), wrap(col, dc, g.width))) {
				count++
			}
		}
	}
	return count
}

// Advance computes one generation
func (g *Grid) Advance() {
	next := g.scratch
	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			idx := g.index(row, col)
			next.SetTo(idx, rules.ApplyConwayRules(g.liveNeighborCount(row, col), g.cells.Test(idx)))
		}
	}
	g.cells, g.scratch = next, g.cells
	g.version++
}

// GetCells returns a copy of the board packed into 32-bit words, little-endian
// bit order: cell i is bit i%32 of word i/32.
func (g *Grid) GetCells() []uint32 {
	var (
		words = g.cells.Bytes()
		size  = uint(g.width) * uint(g.height)
		out   = make([]uint32, (size+31)/32)
	)
	for i := range out {
		w := words[i/2]
		if i%2 == 1 {
			w >>= 32
		}
		out[i] = uint32(w)
	}
	return out
}

// CellsView returns a zero-copy view of the board, valid until the next mutation
func (g *Grid) CellsView() View {
	return View{grid: g, version: g.version}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return int(g.cells.Count())
}

// Hash returns an MD5 digest of the dimensions and packed cells
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[:4], g.width)
	binary.LittleEndian.PutUint32(buf[4:], g.height)
	h.Write(buf)
	for _, w := range g.cells.Bytes() {
		binary.LittleEndian.PutUint64(buf, w)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
