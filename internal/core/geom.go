// Package core provides the screen buffer, input and runtime types shared by
// the simulations and the terminal platform. It has no Bubble Tea dependency
// so simulation logic stays pure and testable.
package core

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/vovakirdan/vecgeom/vector"
)

// Rect is an axis-aligned cell rectangle, used for HUD boxes.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps world coordinates onto screen cells. World y grows upwards,
// screen rows grow downwards, so the y axis is flipped.
type Viewport struct {
	Min, Max vector.Vector // World-space bounds (xy only)
	W, H     int           // Screen size in cells
}

// NewViewport creates a viewport showing the world rectangle [0,worldW]x[0,worldH]
// on a screen of w by h cells.
func NewViewport(worldW, worldH float64, w, h int) Viewport {
	return Viewport{
		Min: vector.Zero(),
		Max: vector.New2(worldW, worldH),
		W:   w,
		H:   h,
	}
}

// scale returns world units per cell along x and y. Empty viewports map
// everything to cell 0.
func (vp Viewport) scale() (sx, sy float64) {
	size := vector.Sub(vp.Max, vp.Min)
	if vp.W <= 1 || vp.H <= 1 || size.X == 0 || size.Y == 0 {
		return 0, 0
	}
	return float64(vp.W-1) / size.X, float64(vp.H-1) / size.Y
}

// ToCell converts a world point to the nearest screen cell.
func (vp Viewport) ToCell(p vector.Vector) (x, y int) {
	sx, sy := vp.scale()
	rel := vector.Sub(p, vp.Min)
	x = int(math.Round(rel.X * sx))
	y = vp.H - 1 - int(math.Round(rel.Y*sy))
	return x, y
}

// CellSize returns the size of one cell in world units along x and y.
func (vp Viewport) CellSize() (w, h float64) {
	sx, sy := vp.scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return 1 / sx, 1 / sy
}

// Scalar is the set of numeric types Clamp accepts.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T Scalar](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
