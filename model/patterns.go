package model

// Glider returns a south-east travelling glider anchored at its top-left corner
//
//	.#.
//	..#
//	###
func Glider(row, col uint32) []Coord {
	return []Coord{
		{row, col + 1},
		{row + 1, col + 2},
		{row + 2, col}, {row + 2, col + 1}, {row + 2, col + 2},
	}
}

// Blinker returns a horizontal period-2 oscillator starting at (row, col)
func Blinker(row, col uint32) []Coord {
	return []Coord{{row, col}, {row, col + 1}, {row, col + 2}}
}

// Block returns a 2x2 still life anchored at its top-left corner
func Block(row, col uint32) []Coord {
	return []Coord{{row, col}, {row, col + 1}, {row + 1, col}, {row + 1, col + 1}}
}

// ResetWithInterestingPatterns clears the grid, stamps a few gliders and
// blinkers when the board is big enough, then adds random life at density
func (g *Grid) ResetWithInterestingPatterns(seed SeedFunc) error {
	g.Clear()

	var patterns [][]Coord
	if g.width >= 10 && g.height >= 10 {
		patterns = append(patterns, Glider(5, 5))
		if g.width >= 20 && g.height >= 15 {
			patterns = append(patterns, Glider(5, g.width-8))
		}
		patterns = append(patterns, Blinker(g.height/4, g.width/4))
		if g.width >= 30 {
			patterns = append(patterns, Blinker(3*g.height/4, 3*g.width/4))
		}
	}
	for _, p := range patterns {
		if err := g.Place(p); err != nil {
			return err
		}
	}

	if seed == nil {
		return nil
	}
	var random []Coord
	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			if seed() {
				random = append(random, Coord{row, col})
			}
		}
	}
	return g.SetCells(random)
}
