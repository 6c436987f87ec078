// Package core holds the small value types shared by the rule engine and the
// terminal layer: the screen buffer, colors, rectangles and input frames.
// Nothing here imports Bubble Tea.
package core

// Rect is an area of the screen in cells. X and Y locate the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the W×H rectangle whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side. The result never has a
// negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Fits reports whether a rectangle of r's size fits inside outer.
func (r Rect) Fits(outer Rect) bool {
	return r.W <= outer.W && r.H <= outer.H
}

// CenterIn moves r so it sits in the middle of outer, keeping its size.
func (r Rect) CenterIn(outer Rect) Rect {
	r.X = outer.X + (outer.W-r.W)/2
	r.Y = outer.Y + (outer.H-r.H)/2
	return r
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
