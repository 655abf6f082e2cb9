package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid buffers between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool with the requested shape
func (p *GridPool) Get(columns, rows, cellSize int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(columns, rows, cellSize)
	return g
}

// CloneOf retrieves a pooled grid holding a copy of src
func (p *GridPool) CloneOf(src *Grid) *Grid {
	g := p.Get(src.columns, src.rows, src.cellSize)
	for r := range src.rows {
		copy(g.cells[r], src.cells[r])
	}
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
