package patterns

import (
	"slices"

	"github.com/sheikhrachel/go-stilllife/model"
)

// Anchor is the (row, column) of the live cell a figure was matched from
type Anchor struct {
	Row, Col int
}

// Recognition maps each recognized figure to its anchors in raster discovery order
type Recognition struct {
	figures []Figure // first discovery order
	anchors map[Figure][]Anchor
}

func newRecognition() *Recognition {
	return &Recognition{anchors: make(map[Figure][]Anchor)}
}

func (r *Recognition) record(f Figure, a Anchor) {
	if _, ok := r.anchors[f]; !ok {
		r.figures = append(r.figures, f)
	}
	r.anchors[f] = append(r.anchors[f], a)
}

// Anchors returns the anchors recorded for f
func (r *Recognition) Anchors(f Figure) []Anchor {
	return slices.Clone(r.anchors[f])
}

// Contains reports whether f was recognized at least once
func (r *Recognition) Contains(f Figure) bool {
	_, ok := r.anchors[f]
	return ok
}

// Figures returns recognized figures in the order they were first found
func (r *Recognition) Figures() []Figure {
	return slices.Clone(r.figures)
}

// Sorted returns recognized figures in catalog order
func (r *Recognition) Sorted(c *Catalog) []Figure {
	out := r.Figures()
	slices.SortStableFunc(out, func(a, b Figure) int {
		return c.index(a) - c.index(b)
	})
	return out
}

// Len returns the number of distinct recognized figures
func (r *Recognition) Len() int { return len(r.figures) }

// Total returns the number of anchors across all figures
func (r *Recognition) Total() (n int) {
	for _, a := range r.anchors {
		n += len(a)
	}
	return
}

// MatchesAt reports whether the template fits with its anchor at (row, col).
// Offsets wrap around both edges of the board.
func (t Template) MatchesAt(g *model.Grid, row, col int) bool {
	for _, o := range t.Alive {
		if !g.Alive(row+o.Row, col+o.Col) {
			return false
		}
	}
	for _, o := range t.Dead {
		if g.Alive(row+o.Row, col+o.Col) {
			return false
		}
	}
	return true
}

// Recognize tests every live cell of g against the catalog. When several
// templates match one anchor the one declared last in the catalog is kept.
func Recognize(g *model.Grid, c *Catalog) *Recognition {
	result := newRecognition()

	for row := range g.Rows() {
		for col := range g.Columns() {
			if !g.Alive(row, col) {
				continue
			}

			matched := false
			var winner Figure
			for _, t := range c.templates {
				if t.MatchesAt(g, row, col) {
					winner, matched = t.Figure, true
				}
			}
			if matched {
				result.record(winner, Anchor{Row: row, Col: col})
			}
		}
	}

	return result
}
