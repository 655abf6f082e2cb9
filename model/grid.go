package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-stilllife/rules"
)

// Grid represents a toroidal game board. Cells are addressed as (row, column)
// and both axes wrap independently.
type Grid struct {
	columns  int
	rows     int
	cellSize int      // informational, carried from the settings
	cells    [][]bool // cells[row][column]
	next     [][]bool // scratch buffer for Advance
}

func newCells(columns, rows int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return cells
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(columns, rows, cellSize int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration,
			"[NewGrid] dimensions must be positive, got %dx%d", columns, rows)
	}
	return &Grid{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
		cells:    newCells(columns, rows),
		next:     newCells(columns, rows),
	}, nil
}

// Create creates a grid where every cell is independently alive with probability density.
// A nil rng falls back to the global source.
func Create(columns, rows, cellSize int, density float64, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(columns, rows, cellSize)
	if err != nil {
		return nil, err
	}
	g.Randomize(density, rng)
	return g, nil
}

// NewRNG returns a deterministic PCG-backed source for the given seed
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Columns returns the number of columns
func (g *Grid) Columns() int { return g.columns }

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the informational cell size
func (g *Grid) CellSize() int { return g.cellSize }

// Width returns the board width in display units
func (g *Grid) Width() int { return g.columns * g.cellSize }

// Height returns the board height in display units
func (g *Grid) Height() int { return g.rows * g.cellSize }

// SameShape reports whether both grids have identical dimensions. A nil grid
// has no shape.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.columns == other.columns && g.rows == other.rows
}

func (g *Grid) shape() string {
	if g == nil {
		return "nil grid"
	}
	return fmt.Sprintf("%dx%d", g.columns, g.rows)
}

// Clone returns a deep copy sharing no state with g
func (g *Grid) Clone() *Grid {
	c := &Grid{
		columns:  g.columns,
		rows:     g.rows,
		cellSize: g.cellSize,
		cells:    newCells(g.columns, g.rows),
		next:     newCells(g.columns, g.rows),
	}
	for r := range g.rows {
		copy(c.cells[r], g.cells[r])
	}
	return c
}

// CopyFrom overwrites every cell of g with the state of src
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return errors.Wrapf(ErrShapeMismatch, "[CopyFrom] %s into %s", src.shape(), g.shape())
	}
	for r := range g.rows {
		copy(g.cells[r], src.cells[r])
	}
	g.cellSize = src.cellSize
	return nil
}

// reset resizes the grid and clears every cell, reusing buffers when possible
func (g *Grid) reset(columns, rows, cellSize int) {
	g.columns = columns
	g.rows = rows
	g.cellSize = cellSize

	if len(g.cells) != rows || len(g.next) != rows {
		g.cells = make([][]bool, rows)
		g.next = make([][]bool, rows)
	}
	for i := range rows {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]bool, columns)
		} else {
			clear(g.cells[i])
		}
		if len(g.next[i]) != columns {
			g.next[i] = make([]bool, columns)
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

// Alive returns the state of a cell; out-of-range coordinates wrap around
func (g *Grid) Alive(row, col int) bool {
	return g.cells[wrap(row, g.rows)][wrap(col, g.columns)]
}

// Set sets a cell to alive (true) or dead (false); out-of-range coordinates wrap around
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[wrap(row, g.rows)][wrap(col, g.columns)] = alive
}

// NeighborCount counts living cells among the 8 toroidal neighbors
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// Advance moves the board one generation forward. Every next state is computed
// from the current board before the buffers are swapped.
func (g *Grid) Advance() {
	for r := range g.rows {
		for c := range g.columns {
			g.next[r][c] = rules.NextState(g.cells[r][c], g.NeighborCount(r, c))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Equals reports whether every cell matches other. Grids of different
// dimensions are never compared.
func (g *Grid) Equals(other *Grid) (bool, error) {
	if !g.SameShape(other) {
		return false, errors.Wrapf(ErrShapeMismatch, "[Equals] %s vs %s", g.shape(), other.shape())
	}
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] != other.cells[r][c] {
				return false, nil
			}
		}
	}
	return true, nil
}

// Randomize fills the grid with living cells at the given density
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}
	for r := range g.rows {
		for c := range g.columns {
			g.cells[r][c] = float() < density
		}
	}
}
