// Package vector provides a 3-component vector used for both 2D and 3D
// algebra. A 2D vector is simply one whose Z component is 0; it stays 0 under
// every operation that does not write to Z.
//
// Methods with pointer receivers mutate the receiver and return it so calls
// can be chained. Methods with value receivers and the package-level
// functions never modify their operands and return new values.
//
// Nothing in this package logs or panics. Invalid input (bad arity, division
// by zero, normalizing a zero vector) is reported through returned errors and
// leaves the receiver untouched.
package vector

import (
	"fmt"
	"math"
	"strconv"
)

// Vector is a point or direction in 2D or 3D space.
// The zero value is the origin (0, 0, 0).
type Vector struct {
	X, Y, Z float64
}

// New2 creates a 2D vector (Z is 0).
func New2(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// New3 creates a 3D vector.
func New3(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// New creates a vector from 2 or 3 components.
// Any other number of components returns an error wrapping ErrArity and the
// zero Vector, which must not be used.
func New(components ...float64) (Vector, error) {
	switch len(components) {
	case 2:
		return New2(components[0], components[1]), nil
	case 3:
		return New3(components[0], components[1], components[2]), nil
	default:
		return Vector{}, fmt.Errorf("vector: got %d components: %w", len(components), ErrArity)
	}
}

// MagnitudeSquared returns x²+y²+z². It overflows to +Inf for components
// beyond about 1e154; use Magnitude when the length itself is needed.
func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the Euclidean length of v. It does not overflow or
// underflow unless the length itself is out of float64 range.
func (v Vector) Magnitude() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Heading returns the angle of v in the xy plane, atan2(y, x), in radians.
// Z is ignored.
func (v Vector) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	return v
}

// Abs returns v with every component made non-negative.
func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Normalized returns a unit-length copy of v.
func (v Vector) Normalized() (Vector, error) {
	c := v
	if _, err := c.Normalize(); err != nil {
		return Vector{}, err
	}
	return c, nil
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Lerp returns the point a fraction t of the way from v to o.
// t is not clamped, so values outside [0, 1] extrapolate.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Min returns the component-wise minimum of v and o.
func (v Vector) Min(o Vector) Vector {
	return Vector{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector) Max(o Vector) Vector {
	return Vector{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Equal reports whether all components are exactly equal. No epsilon.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}

// IsZero reports whether v is the origin.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component of v is infinite or NaN.
func (v Vector) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// String formats v as "(x, y)" when Z is 0 and "(x, y, z)" otherwise.
func (v Vector) String() string {
	if v.Z == 0 {
		return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
	}
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + ")"
}

// Float64 is the numeric form of v: its magnitude.
func (v Vector) Float64() float64 {
	return v.Magnitude()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
