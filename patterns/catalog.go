package patterns

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrInvalidTemplate is returned when a catalog entry cannot be matched sensibly
var ErrInvalidTemplate = errors.New("invalid template")

// Offset is a (row, column) displacement from an anchor cell
type Offset struct {
	Row, Col int
}

// Template describes one recognizable figure: the cells that must be alive and
// the cells that must be dead, relative to the anchor.
type Template struct {
	Figure      Figure
	Symmetrical bool
	Alive       []Offset
	Dead        []Offset
}

// Catalog is an ordered, read-only list of templates. Order decides which
// figure wins when several templates match the same anchor.
type Catalog struct {
	templates   []Template
	symmetrical map[Figure]bool
}

var stillLifes = mustCatalog(stillLifeTemplates...)

// StillLifes returns the built-in catalog shared by the whole process
func StillLifes() *Catalog {
	return stillLifes
}

func mustCatalog(templates ...Template) *Catalog {
	c, err := NewCatalog(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog validates the templates and freezes them in the given order
func NewCatalog(templates ...Template) (*Catalog, error) {
	c := &Catalog{
		templates:   make([]Template, 0, len(templates)),
		symmetrical: make(map[Figure]bool),
	}
	seen := make(map[Figure]bool, len(templates))

	for i, t := range templates {
		if seen[t.Figure] {
			return nil, errors.Wrapf(ErrInvalidTemplate, "[NewCatalog] entry %d: duplicate figure %v", i, t.Figure)
		}
		if len(t.Alive) == 0 {
			return nil, errors.Wrapf(ErrInvalidTemplate, "[NewCatalog] entry %d: %v has no live cells", i, t.Figure)
		}
		alive := make(map[Offset]bool, len(t.Alive))
		for _, o := range t.Alive {
			alive[o] = true
		}
		for _, o := range t.Dead {
			if alive[o] {
				return nil, errors.Wrapf(ErrInvalidTemplate, "[NewCatalog] entry %d: %v offset %v is both alive and dead", i, t.Figure, o)
			}
		}

		seen[t.Figure] = true
		if t.Symmetrical {
			c.symmetrical[t.Figure] = true
		}
		c.templates = append(c.templates, Template{
			Figure:      t.Figure,
			Symmetrical: t.Symmetrical,
			Alive:       slices.Clone(t.Alive),
			Dead:        slices.Clone(t.Dead),
		})
	}

	return c, nil
}

// Len returns the number of templates
func (c *Catalog) Len() int { return len(c.templates) }

// Templates returns a copy of the templates in matching order
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	for i, t := range c.templates {
		out[i] = Template{
			Figure:      t.Figure,
			Symmetrical: t.Symmetrical,
			Alive:       slices.Clone(t.Alive),
			Dead:        slices.Clone(t.Dead),
		}
	}
	return out
}

// Figures returns every tag in catalog order
func (c *Catalog) Figures() []Figure {
	out := make([]Figure, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Figure
	}
	return out
}

// IsSymmetrical reports whether the figure is flagged symmetrical
func (c *Catalog) IsSymmetrical(f Figure) bool {
	return c.symmetrical[f]
}

// SymmetricalFigures returns the flagged tags in catalog order
func (c *Catalog) SymmetricalFigures() []Figure {
	var out []Figure
	for _, t := range c.templates {
		if t.Symmetrical {
			out = append(out, t.Figure)
		}
	}
	return out
}

// index returns the position of f in the catalog, or -1
func (c *Catalog) index(f Figure) int {
	return slices.IndexFunc(c.templates, func(t Template) bool { return t.Figure == f })
}
