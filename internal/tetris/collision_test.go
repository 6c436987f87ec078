package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gridFrom builds a grid whose bottom rows are given by rows, top to bottom.
func gridFrom(rows ...string) Grid {
	var g Grid
	offset := Height - len(rows)
	for i, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, offset+i, true)
			}
		}
	}
	return g
}

func TestCollides(t *testing.T) {
	// T spawn cells: (4,1) (3,2) (4,2) (5,2)
	g := gridFrom(
		"......#...",
		"..........",
	)
	// locked cell at (6, 18)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{name: "spawn position"},
		{name: "left wall", dx: -4, want: true},
		{name: "flush with left wall", dx: -3},
		{name: "right wall", dx: 5, want: true},
		{name: "flush with right wall", dx: 4},
		{name: "floor", dy: 18, want: true},
		{name: "resting on floor", dy: 17},
		{name: "locked cell", dx: 1, dy: 16, want: true},
		{name: "beside locked cell", dx: -1, dy: 16},
		{name: "above the top", dy: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiece(KindT).Moved(tt.dx, tt.dy)
			if got := Collides(&g, p); got != tt.want {
				t.Errorf("Collides(T at %d,%d) = %v, want %v", p.X, p.Y, got, tt.want)
			}
		})
	}
}

func TestCollidesAboveTopStillChecksWalls(t *testing.T) {
	var g Grid
	p := NewPiece(KindI).Moved(-4, -1) // row of four at y=0, x from -1
	if !Collides(&g, p) {
		t.Error("piece left of the wall should collide even near the top")
	}

	// Cells above the grid never touch locked content
	for x := range Width {
		g.Set(x, 0, true)
	}
	if Collides(&g, NewPiece(KindI).Moved(0, -2)) {
		t.Error("cells above the top row should not collide with locked cells")
	}
}

func TestCommit(t *testing.T) {
	var g Grid
	Commit(&g, NewPiece(KindO).Moved(0, 17))

	want := gridFrom(
		"....##....",
		"....##....",
	)
	if diff := cmp.Diff(want.Rows(), g.Rows()); diff != "" {
		t.Errorf("grid after commit (-want +got):\n%s", diff)
	}
}

func TestCommitDropsCellsOutsideGrid(t *testing.T) {
	var g Grid
	Commit(&g, NewPiece(KindO).Moved(0, -2)) // rows -1 and 0

	if g.Count() != 2 {
		t.Errorf("expected only the 2 visible cells to lock, got %d", g.Count())
	}
	if !g.Filled(4, 0) || !g.Filled(5, 0) {
		t.Errorf("row 0 = %q", g.Rows()[0])
	}
}

func TestGridBoundsChecked(t *testing.T) {
	var g Grid
	g.Set(-1, 0, true)
	g.Set(Width, 0, true)
	g.Set(0, Height, true)

	if g.Count() != 0 {
		t.Error("out-of-range Set should be dropped")
	}
	if g.Filled(-1, -1) || g.Filled(Width, Height) {
		t.Error("out-of-range cells should read as empty")
	}
}

func TestGridRow(t *testing.T) {
	g := gridFrom("#........#")

	want := [Width]bool{0: true, 9: true}
	if diff := cmp.Diff(want, g.Row(Height-1)); diff != "" {
		t.Errorf("Row(%d) (-want +got):\n%s", Height-1, diff)
	}
	if g.Row(-1) != ([Width]bool{}) || g.Row(Height) != ([Width]bool{}) {
		t.Error("out-of-range rows should be empty")
	}
}
