package tetris

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Grid is the playfield of locked cells. Row 0 is the top.
// The zero value is an empty grid. Copying a Grid copies its cells.
type Grid struct {
	cells [Height][Width]bool
}

// InBounds reports whether (x, y) lies inside the playfield.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Filled reports whether the cell at (x, y) is locked.
// Coordinates outside the playfield read as empty.
func (g Grid) Filled(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Set marks or clears the cell at (x, y). Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, filled bool) {
	if !InBounds(x, y) {
		return
	}
	g.cells[y][x] = filled
}

// RowFull reports whether every column of row y is locked.
func (g Grid) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for x := range Width {
		if !g.cells[y][x] {
			return false
		}
	}
	return true
}

// Count returns the number of locked cells.
func (g Grid) Count() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g.cells[y][x] {
				n++
			}
		}
	}
	return n
}

// Row returns a copy of row y. Out-of-range rows read as empty.
func (g Grid) Row(y int) [Width]bool {
	if y < 0 || y >= Height {
		return [Width]bool{}
	}
	return g.cells[y]
}

// Rows renders the grid top to bottom as strings of '#' and '.'.
func (g Grid) Rows() []string {
	rows := make([]string, Height)
	for y := range Height {
		b := make([]byte, Width)
		for x := range Width {
			b[x] = '.'
			if g.cells[y][x] {
				b[x] = '#'
			}
		}
		rows[y] = string(b)
	}
	return rows
}

// shiftDown removes row y and inserts an empty row at the top.
func (g *Grid) shiftDown(y int) {
	for k := y; k > 0; k-- {
		g.cells[k] = g.cells[k-1]
	}
	g.cells[0] = [Width]bool{}
}
