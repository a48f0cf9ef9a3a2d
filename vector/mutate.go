package vector

import (
	"fmt"
	"math"
)

// Add adds o to v component-wise.
func (v *Vector) Add(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

// AddScalar adds s to every component of v.
func (v *Vector) AddScalar(s float64) *Vector {
	return v.Add(Vector{s, s, s})
}

// AddXYZ adds the given components to v.
func (v *Vector) AddXYZ(x, y, z float64) *Vector {
	return v.Add(Vector{x, y, z})
}

// Sub subtracts o from v component-wise.
func (v *Vector) Sub(o Vector) *Vector {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// SubScalar subtracts s from every component of v.
func (v *Vector) SubScalar(s float64) *Vector {
	return v.Sub(Vector{s, s, s})
}

// SubXYZ subtracts the given components from v.
func (v *Vector) SubXYZ(x, y, z float64) *Vector {
	return v.Sub(Vector{x, y, z})
}

// Mult multiplies v by o component-wise.
func (v *Vector) Mult(o Vector) *Vector {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	return v
}

// Scale multiplies every component of v by s.
func (v *Vector) Scale(s float64) *Vector {
	return v.Mult(Vector{s, s, s})
}

// Div divides v by o component-wise. If any component of o is zero, v is
// left unchanged and an error wrapping ErrDivideByZero is returned. Note that
// a 2D divisor always has Z == 0 and is therefore rejected.
func (v *Vector) Div(o Vector) (*Vector, error) {
	if o.X == 0 || o.Y == 0 || o.Z == 0 {
		return v, fmt.Errorf("vector: divide %v by %v: %w", *v, o, ErrDivideByZero)
	}
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
	return v, nil
}

// DivScalar divides every component of v by s. Dividing by zero leaves v
// unchanged and returns an error wrapping ErrDivideByZero.
func (v *Vector) DivScalar(s float64) (*Vector, error) {
	if s == 0 {
		return v, fmt.Errorf("vector: divide %v by 0: %w", *v, ErrDivideByZero)
	}
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v, nil
}

// Set overwrites v with o.
func (v *Vector) Set(o Vector) *Vector {
	*v = o
	return v
}

// SetScalar sets every component of v to s.
func (v *Vector) SetScalar(s float64) *Vector {
	return v.Set(Vector{s, s, s})
}

// SetXYZ sets the three components of v.
func (v *Vector) SetXYZ(x, y, z float64) *Vector {
	return v.Set(Vector{x, y, z})
}

// Normalize scales v to unit length. The zero vector has no direction: it is
// left unchanged and an error wrapping ErrZeroVector is returned. A vector
// with an infinite or NaN component is left unchanged and the error wraps
// ErrNonFinite.
func (v *Vector) Normalize() (*Vector, error) {
	u, err := unit(*v)
	if err != nil {
		return v, fmt.Errorf("vector: normalize: %w", err)
	}
	return v.Set(u), nil
}

// SetMagnitude scales v so that its length becomes n, keeping its direction.
// The zero vector cannot be rescaled and returns ErrZeroVector.
func (v *Vector) SetMagnitude(n float64) (*Vector, error) {
	u, err := unit(*v)
	if err != nil {
		return v, fmt.Errorf("vector: set magnitude to %g: %w", n, err)
	}
	return v.Set(u).Scale(n), nil
}

// unit divides by the largest component before measuring, so lengths near
// the ends of the float64 range keep their direction.
func unit(v Vector) (Vector, error) {
	s := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	switch {
	case math.IsNaN(s) || math.IsInf(s, 0):
		return v, ErrNonFinite
	case s == 0:
		return v, ErrZeroVector
	}
	u := Vector{v.X / s, v.Y / s, v.Z / s}
	m := u.Magnitude()
	return Vector{u.X / m, u.Y / m, u.Z / m}, nil
}

// SetHeading rotates v in the xy plane so that its heading becomes angle
// (radians). Magnitude in the plane and Z are preserved.
func (v *Vector) SetHeading(angle float64) *Vector {
	return v.Rotate(angle - v.Heading())
}

// Reflect reflects v across the direction r:
//
//	p = r * (v·r)
//	v = p - (v - p)
//
// which equals 2*proj_r(v) - v when r has unit length.
func (v *Vector) Reflect(r Vector) *Vector {
	p := Mult(r, v.Dot(r))
	v.Sub(p)
	v.Scale(-1)
	v.Add(p)
	return v
}

// XY returns the (x, y) swizzle as a new 2D vector.
func (v Vector) XY() Vector {
	return New2(v.X, v.Y)
}

// XZ returns the (x, z) swizzle as a new 2D vector: its X is v.X and its Y is
// v.Z.
func (v Vector) XZ() Vector {
	return New2(v.X, v.Z)
}

// YZ returns the (y, z) swizzle as a new 2D vector: its X is v.Y and its Y is
// v.Z.
func (v Vector) YZ() Vector {
	return New2(v.Y, v.Z)
}

// SetXY is a partial update: it sets v.X and v.Y from s.X and s.Y.
// v.Z is left untouched.
func (v *Vector) SetXY(s Vector) *Vector {
	v.X, v.Y = s.X, s.Y
	return v
}

// SetXZ is a partial update: it sets v.X from s.X and v.Z from s.Y.
// v.Y is left untouched.
func (v *Vector) SetXZ(s Vector) *Vector {
	v.X, v.Z = s.X, s.Y
	return v
}

// SetYZ is a partial update: it sets v.Y from s.X and v.Z from s.Y.
// v.X is left untouched.
func (v *Vector) SetYZ(s Vector) *Vector {
	v.Y, v.Z = s.X, s.Y
	return v
}

// remainder applies math.Mod component-wise. Callers check for zero divisors.
func remainder(a, b Vector) Vector {
	return Vector{math.Mod(a.X, b.X), math.Mod(a.Y, b.Y), math.Mod(a.Z, b.Z)}
}
