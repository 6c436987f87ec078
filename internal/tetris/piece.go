package tetris

// SpawnX is the anchor column that centers a 4x4 box on the grid.
const SpawnX = Width/2 - 2

// Piece is a shape placed on the grid. X, Y locate the top-left corner of
// the 4x4 box; Y may be negative while the piece is partly above the top.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece returns a piece of the given kind at the spawn anchor.
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: ShapeOf(k),
		X:     SpawnX,
		Y:     0,
	}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned clockwise about the same anchor.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the grid coordinates of the occupied cells.
func (p Piece) Cells() []Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}
