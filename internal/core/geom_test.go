package core

import (
	"testing"

	"github.com/vovakirdan/vecgeom/vector"
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

func TestViewportToCell(t *testing.T) {
	vp := NewViewport(100, 50, 101, 51)

	tests := []struct {
		name   string
		p      vector.Vector
		cx, cy int
	}{
		{"origin is bottom-left", vector.New2(0, 0), 0, 50},
		{"top-right", vector.New2(100, 50), 100, 0},
		{"center", vector.New2(50, 25), 50, 25},
		{"z ignored", vector.New3(10, 10, 99), 10, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := vp.ToCell(tc.p)
			if x != tc.cx || y != tc.cy {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportEmpty(t *testing.T) {
	vp := NewViewport(0, 10, 20, 20)
	if w, h := vp.CellSize(); w != 0 || h != 0 {
		t.Errorf("CellSize() = (%g, %g) for an empty world, expected zeros", w, h)
	}
	if x, _ := vp.ToCell(vector.New2(5, 5)); x != 0 {
		t.Errorf("ToCell x = %d for an empty world, expected 0", x)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 1) = %g, expected 0", got)
	}
	if got := Clamp(7.5, 0.25, 4); got != 4 {
		t.Errorf("Clamp(7.5, 0.25, 4) = %g, expected 4", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	if !f.Has(ActionPause) || f.Has(ActionUp) {
		t.Errorf("frame actions = %v", f.Actions)
	}
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear() should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set() on a zero frame should allocate")
	}
}
