package core

import (
	"slices"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectLayout(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 25/25", r.Right(), r.Bottom())
	}

	if got, want := r.Inset(1), NewRect(6, 11, 18, 13); got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}
	if got := NewRect(0, 0, 3, 1).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past the middle = %+v, expected zero size", got)
	}

	outer := NewRect(0, 0, 80, 24)
	board := NewRect(0, 0, 40, 22)
	if !board.Fits(outer) {
		t.Error("40x22 should fit in 80x24")
	}
	if NewRect(0, 0, 40, 30).Fits(outer) {
		t.Error("40x30 should not fit in 80x24")
	}
	if got, want := board.CenterIn(outer), NewRect(20, 1, 40, 22); got != want {
		t.Errorf("CenterIn = %+v, expected %+v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Fatal("new frame should be empty")
	}

	f.Add(ActionRotate)
	f.Add(ActionLeft)
	f.Add(ActionLeft)
	want := []Action{ActionRotate, ActionLeft, ActionLeft}
	if !slices.Equal(f.Actions, want) {
		t.Errorf("frame actions = %v, expected %v in arrival order", f.Actions, want)
	}
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("Has reports wrong membership for %v", f.Actions)
	}

	f.Clear()
	if len(f.Actions) != 0 || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionStart) {
		t.Error("zero frame should report no actions")
	}
	zero.Add(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("zero frame should accept actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionHardDrop.String() != "HardDrop" {
		t.Errorf("ActionHardDrop.String() = %q", ActionHardDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
