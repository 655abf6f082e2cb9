package patterns

// CountSymmetrical sums the anchors of every figure the catalog flags as
// symmetrical. Orientations are counted separately.
func CountSymmetrical(r *Recognition, c *Catalog) (count int) {
	for _, f := range c.SymmetricalFigures() {
		count += len(r.anchors[f])
	}
	return
}
