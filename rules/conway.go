package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors < 2      -> dead (underpopulation)
	alive, neighbors 2 or 3   -> alive
	alive, neighbors > 3      -> dead (overpopulation)
	dead, neighbors == 3      -> alive (birth)
	otherwise                 -> unchanged
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
