package model

import "testing"

func TestGridPool_GetReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(6, 3, 2)
	g.Set(1, 1, true)
	GridToPool(g, pool)

	again := pool.Get(4, 5, 1)
	if again.Columns() != 4 || again.Rows() != 5 || again.CellSize() != 1 {
		t.Fatalf("pooled grid shape = %dx%d/%d", again.Columns(), again.Rows(), again.CellSize())
	}
	if n := again.CountAlive(); n != 0 {
		t.Fatalf("pooled grid has %d live cells", n)
	}
	again.Set(4, 3, true)
	again.Advance()
}

func TestGridPool_CloneOf(t *testing.T) {
	pool := NewGridPool()
	src := mustGrid(t, 5, 4)
	setAll(src, [][2]int{{0, 0}, {3, 4}})

	c := pool.CloneOf(src)
	same, err := c.Equals(src)
	if err != nil || !same {
		t.Fatalf("CloneOf = %v, %v", same, err)
	}

	src.Set(2, 2, true)
	if c.Alive(2, 2) {
		t.Fatal("pooled clone shares cells with its source")
	}
	GridToPool(nil, pool)
	GridToPool(c, nil)
}
