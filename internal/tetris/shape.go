// Package tetris implements the rule engine of the falling-block game:
// the shape table, the 10x20 grid, collision and placement, line clearing
// and scoring, and the tick-driven session state machine.
//
// The package has no I/O of its own. Rendering, key decoding, frame pacing
// and high-score persistence are supplied by the caller.
package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindS
	KindZ
	KindL
	KindJ
	KindO
	KindT
)

// Kinds lists every kind in table order.
var Kinds = [...]Kind{KindI, KindS, KindZ, KindL, KindJ, KindO, KindT}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindO:
		return "O"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// ShapeSize is the side of the square occupancy matrix of a piece.
const ShapeSize = 4

// Shape is a 4x4 occupancy matrix indexed by [row][col].
type Shape [ShapeSize][ShapeSize]bool

// Point is an (x, y) pair. For grid coordinates y grows downwards.
type Point struct {
	X, Y int
}

var shapes = [len(Kinds)]Shape{
	KindI: parseShape(
		"....",
		"####",
		"....",
		"....",
	),
	KindS: parseShape(
		"....",
		".##.",
		"##..",
		"....",
	),
	KindZ: parseShape(
		"....",
		"##..",
		".##.",
		"....",
	),
	KindL: parseShape(
		"....",
		"..#.",
		"###.",
		"....",
	),
	KindJ: parseShape(
		"....",
		"#...",
		"###.",
		"....",
	),
	KindO: parseShape(
		"....",
		".##.",
		".##.",
		"....",
	),
	KindT: parseShape(
		"....",
		".#..",
		"###.",
		"....",
	),
}

// parseShape builds a Shape from four rows of '#' (filled) and '.' (empty).
func parseShape(rows ...string) Shape {
	var s Shape
	for i, row := range rows {
		for j, ch := range row {
			s[i][j] = ch == '#'
		}
	}
	return s
}

// ShapeOf returns the spawn orientation of a kind.
// Unknown kinds yield an empty shape.
func ShapeOf(k Kind) Shape {
	if int(k) >= len(shapes) {
		return Shape{}
	}
	return shapes[k]
}

// Rotate returns the shape turned 90 degrees clockwise inside its 4x4 box.
func (s Shape) Rotate() Shape {
	var r Shape
	for i := range ShapeSize {
		for j := range ShapeSize {
			r[i][j] = s[ShapeSize-1-j][i]
		}
	}
	return r
}

// Cells returns the occupied cells as (col, row) points.
func (s Shape) Cells() []Point {
	cells := make([]Point, 0, 4)
	for i := range ShapeSize {
		for j := range ShapeSize {
			if s[i][j] {
				cells = append(cells, Point{X: j, Y: i})
			}
		}
	}
	return cells
}

// Rows renders the shape as four strings of '#' and '.'.
func (s Shape) Rows() []string {
	rows := make([]string, ShapeSize)
	for i := range ShapeSize {
		b := make([]byte, ShapeSize)
		for j := range ShapeSize {
			b[j] = '.'
			if s[i][j] {
				b[j] = '#'
			}
		}
		rows[i] = string(b)
	}
	return rows
}
