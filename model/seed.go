package model

import (
	"math/rand"
	"time"
)

// DefaultDensity is the probability of a cell starting alive
const DefaultDensity = 0.5

// SeedFunc decides whether the next cell starts alive
type SeedFunc func() bool

// NewRand returns a deterministic source for a non-zero seed and a time seeded one otherwise
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomSeed makes each cell alive with probability density
func RandomSeed(rng *rand.Rand, density float64) SeedFunc {
	return func() bool {
		return rng.Float64() < density
	}
}

// DeadSeed starts every cell dead
func DeadSeed() SeedFunc {
	return func() bool { return false }
}

// InjectRandomLife sets count random cells alive to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) error {
	coords := make([]Coord, count)
	for i := range coords {
		coords[i] = Coord{
			Row: uint32(rng.Int63n(int64(g.height))),
			Col: uint32(rng.Int63n(int64(g.width))),
		}
	}
	return g.SetCells(coords)
}
