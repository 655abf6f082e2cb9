package rules

const (
	// BirthNeighbors is the exact neighbor count that brings a dead cell to life.
	BirthNeighbors = 3

	minSurvivalNeighbors = 2
	maxSurvivalNeighbors = 3
)

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
Every other cell is dead in the next generation.
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= minSurvivalNeighbors && neighbors <= maxSurvivalNeighbors
	}
	return neighbors == BirthNeighbors
}
