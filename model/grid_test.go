package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, columns, rows int) *Grid {
	t.Helper()
	g, err := NewGrid(columns, rows, 1)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", columns, rows, err)
	}
	return g
}

func setAll(g *Grid, cells [][2]int) {
	for _, rc := range cells {
		g.Set(rc[0], rc[1], true)
	}
}

func aliveCells(g *Grid) map[[2]int]bool {
	alive := map[[2]int]bool{}
	for r := range g.Rows() {
		for c := range g.Columns() {
			if g.Alive(r, c) {
				alive[[2]int{r, c}] = true
			}
		}
	}
	return alive
}

func assertAlive(t *testing.T, g *Grid, want [][2]int) {
	t.Helper()
	got := aliveCells(g)
	if len(got) != len(want) {
		t.Fatalf("alive cells = %v, want %v", got, want)
	}
	for _, rc := range want {
		if !got[rc] {
			t.Fatalf("cell (%d,%d) should be alive, alive cells = %v", rc[0], rc[1], got)
		}
	}
}

func TestNewGrid_RejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewGrid(dims[0], dims[1], 1)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidConfiguration", dims[0], dims[1], err)
		}
	}
}

func TestCreate_Density(t *testing.T) {
	empty, err := Create(7, 4, 3, 0, NewRNG(1))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n := empty.CountAlive(); n != 0 {
		t.Fatalf("density 0 produced %d live cells", n)
	}

	full, err := Create(7, 4, 3, 1, NewRNG(1))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n := full.CountAlive(); n != 28 {
		t.Fatalf("density 1 produced %d live cells, want 28", n)
	}
	if full.Width() != 21 || full.Height() != 12 || full.CellSize() != 3 {
		t.Fatalf("unexpected display size %dx%d cell %d", full.Width(), full.Height(), full.CellSize())
	}

	if _, err := Create(0, 4, 1, 0.5, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Create with zero columns err = %v", err)
	}
}

func TestCreate_SameSeedSameBoard(t *testing.T) {
	a, _ := Create(30, 20, 1, 0.4, NewRNG(42))
	b, _ := Create(30, 20, 1, 0.4, NewRNG(42))
	same, err := a.Equals(b)
	if err != nil {
		t.Fatalf("Equals: %v", err)
	}
	if !same {
		t.Fatal("boards created from the same seed differ")
	}
	if a.CountAlive() == 0 || a.CountAlive() == 600 {
		t.Fatalf("density 0.4 produced a degenerate board with %d live cells", a.CountAlive())
	}
}

func TestAdvance_AllDeadIsFixedPoint(t *testing.T) {
	g := mustGrid(t, 6, 4)
	g.Advance()
	if n := g.CountAlive(); n != 0 {
		t.Fatalf("empty board grew %d cells", n)
	}
}

func TestAdvance_BlockIsFixedPoint(t *testing.T) {
	g := mustGrid(t, 6, 6)
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	setAll(g, block)

	for range 3 {
		g.Advance()
		assertAlive(t, g, block)
	}
}

func TestAdvance_BlinkerOscillates(t *testing.T) {
	g := mustGrid(t, 5, 5)
	setAll(g, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	g.Advance()
	assertAlive(t, g, [][2]int{{2, 1}, {2, 2}, {2, 3}})

	g.Advance()
	assertAlive(t, g, [][2]int{{1, 2}, {2, 2}, {3, 2}})
}

func TestAdvance_WrapsAcrossEdges(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// vertical blinker straddling the top/bottom edge
	setAll(g, [][2]int{{4, 0}, {0, 0}, {1, 0}})

	g.Advance()
	assertAlive(t, g, [][2]int{{0, 4}, {0, 0}, {0, 1}})
}

func TestAdvance_GliderCircumnavigatesTorus(t *testing.T) {
	g := mustGrid(t, 8, 8)
	glider := [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	setAll(g, glider)
	start := g.Clone()

	for range 4 {
		g.Advance()
	}
	assertAlive(t, g, [][2]int{{2, 3}, {3, 4}, {4, 2}, {4, 3}, {4, 4}})

	for range 28 {
		g.Advance()
	}
	same, err := g.Equals(start)
	if err != nil {
		t.Fatalf("Equals: %v", err)
	}
	if !same {
		t.Fatalf("glider did not return after 32 generations, alive = %v", aliveCells(g))
	}
}

func TestNeighborCount_Corner(t *testing.T) {
	g := mustGrid(t, 4, 3)
	setAll(g, [][2]int{{2, 3}, {0, 3}, {2, 0}, {1, 1}})

	if n := g.NeighborCount(0, 0); n != 4 {
		t.Fatalf("NeighborCount(0,0) = %d, want 4", n)
	}
}

func TestAliveAndSet_Wrap(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.Set(-1, -1, true)
	if !g.Alive(2, 3) {
		t.Fatal("Set(-1,-1) should address (2,3)")
	}
	if !g.Alive(5, 7) {
		t.Fatal("Alive(5,7) should address (2,3)")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(1, 1, true)

	c := g.Clone()
	c.Set(2, 2, true)
	g.Advance()

	if !c.Alive(1, 1) || !c.Alive(2, 2) {
		t.Fatal("clone lost its own cells")
	}
	if g.Alive(2, 2) {
		t.Fatal("mutating the clone changed the source")
	}
	if c.Columns() != 4 || c.Rows() != 4 || c.CellSize() != 1 {
		t.Fatal("clone changed shape")
	}
}

func TestEquals_ShapeMismatch(t *testing.T) {
	a := mustGrid(t, 4, 5)
	b := mustGrid(t, 5, 4)
	if _, err := a.Equals(b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Equals err = %v, want ErrShapeMismatch", err)
	}
	if err := a.CopyFrom(b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("CopyFrom err = %v, want ErrShapeMismatch", err)
	}
}

func TestEquals_NilGrid(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if g.SameShape(nil) {
		t.Fatal("a nil grid has no shape")
	}
	if _, err := g.Equals(nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Equals(nil) err = %v, want ErrShapeMismatch", err)
	}
	if err := g.CopyFrom(nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("CopyFrom(nil) err = %v, want ErrShapeMismatch", err)
	}
}

func TestEquals_DetectsSingleCell(t *testing.T) {
	a := mustGrid(t, 3, 3)
	b := mustGrid(t, 3, 3)
	b.Set(2, 1, true)

	same, err := a.Equals(b)
	if err != nil || same {
		t.Fatalf("Equals = %v, %v; want false, nil", same, err)
	}
	if err := a.CopyFrom(b); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if same, _ = a.Equals(b); !same {
		t.Fatal("CopyFrom did not copy cells")
	}
}
