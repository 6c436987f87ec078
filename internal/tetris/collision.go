package tetris

// Collides reports whether p leaves the playfield horizontally, reaches
// below the bottom row, or overlaps a locked cell. Cells above the top row
// only take part in the bounds tests.
func Collides(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return true
		}
		if c.Y >= 0 && g.cells[c.Y][c.X] {
			return true
		}
	}
	return false
}

// Commit locks the cells of p into g. Cells outside the grid are dropped.
func Commit(g *Grid, p Piece) {
	for _, c := range p.Cells() {
		g.Set(c.X, c.Y, true)
	}
}
