// Package intersect provides stateless collision queries between segments,
// points and circles built on package vector. No function here modifies its
// arguments, so all of them are safe to call concurrently.
package intersect

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/vecgeom/vector"
)

// Tolerance is the absolute slack, in world units, used when deciding whether
// a point lies on a segment.
const Tolerance = 0.1

// ErrDegenerateSegment is returned when a query needs the direction of a
// segment whose endpoints coincide.
var ErrDegenerateSegment = fmt.Errorf("zero-length segment: %w", vector.ErrDivideByZero)

// LinePointCollision reports whether p lies on the segment from l1 to l2.
//
// The point must satisfy the triangle equality |p-l1| + |p-l2| ≈ |l2-l1| to
// within Tolerance, which rejects points beyond either endpoint, and must be
// no further than Tolerance from the line itself.
func LinePointCollision(l1, l2, p vector.Vector) bool {
	d1 := distance(p, l1)
	d2 := distance(p, l2)
	l := distance(l2, l1)
	if d1+d2 <= l-Tolerance || d1+d2 >= l+Tolerance {
		return false
	}

	closest, err := LineClosestPoint(l1, l2, p)
	if err != nil {
		// Zero-length segment: the triangle test already put p within
		// Tolerance/2 of the single point. Any other failure is a miss.
		return errors.Is(err, ErrDegenerateSegment)
	}
	return distance(p, closest) <= Tolerance
}

// LineClosestPoint projects p onto the infinite line through l1 and l2.
// The result is not clamped to the segment and may lie beyond either end.
// Coordinates whose differences overflow float64 return an error wrapping
// vector.ErrNonFinite.
func LineClosestPoint(l1, l2, p vector.Vector) (vector.Vector, error) {
	dif := vector.Sub(l2, l1)
	if dif.IsZero() {
		return vector.Vector{}, fmt.Errorf("intersect: closest point to %v on %v %v: %w", p, l1, l2, ErrDegenerateSegment)
	}
	// Project onto the unit direction; |dif|² would overflow near 1e154.
	dir, err := vector.Normalize(dif)
	if err != nil {
		return vector.Vector{}, fmt.Errorf("intersect: closest point to %v on %v %v: %w", p, l1, l2, err)
	}
	t := vector.Dot(vector.Sub(p, l1), dir)
	closest := vector.Add(l1, vector.Mult(dir, t))
	if !closest.IsFinite() {
		return vector.Vector{}, fmt.Errorf("intersect: closest point to %v on %v %v: %w", p, l1, l2, vector.ErrNonFinite)
	}
	return closest, nil
}

// LineCircleCollision reports whether the segment from l1 to l2 touches the circle
// with center c and radius r. Touching the boundary counts as a collision.
func LineCircleCollision(l1, l2, c vector.Vector, r float64) (bool, error) {
	if l1.Equal(l2) {
		return false, fmt.Errorf("intersect: circle at %v against %v %v: %w", c, l1, l2, ErrDegenerateSegment)
	}

	if distance(l1, c) <= r || distance(l2, c) <= r {
		return true, nil
	}

	closest, err := LineClosestPoint(l1, l2, c)
	if err != nil {
		return false, err
	}
	if !LinePointCollision(l1, l2, closest) {
		return false, nil
	}
	return distance(closest, c) <= r, nil
}

func distance(a, b vector.Vector) float64 {
	return vector.Sub(a, b).Magnitude()
}
