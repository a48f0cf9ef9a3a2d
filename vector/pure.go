package vector

import "fmt"

// Zero returns the origin (0, 0, 0).
func Zero() Vector {
	return Vector{}
}

// Add returns a + b.
func Add(a, b Vector) Vector {
	return *a.Add(b)
}

// Sub returns a - b.
func Sub(a, b Vector) Vector {
	return *a.Sub(b)
}

// Mult returns v scaled by s.
func Mult(v Vector, s float64) Vector {
	return *v.Scale(s)
}

// MultVec returns the component-wise product of a and b.
func MultVec(a, b Vector) Vector {
	return *a.Mult(b)
}

// Div returns v divided by s, or an error wrapping ErrDivideByZero.
func Div(v Vector, s float64) (Vector, error) {
	if _, err := v.DivScalar(s); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// DivVec returns a divided by b component-wise, or an error wrapping
// ErrDivideByZero if any component of b is zero.
func DivVec(a, b Vector) (Vector, error) {
	if _, err := a.Div(b); err != nil {
		return Vector{}, err
	}
	return a, nil
}

// Mod returns the component-wise floating remainder of v by s.
func Mod(v Vector, s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, fmt.Errorf("vector: %v %% 0: %w", v, ErrDivideByZero)
	}
	return remainder(v, Vector{s, s, s}), nil
}

// ModVec returns the component-wise floating remainder of a by b.
func ModVec(a, b Vector) (Vector, error) {
	if b.X == 0 || b.Y == 0 || b.Z == 0 {
		return Vector{}, fmt.Errorf("vector: %v %% %v: %w", a, b, ErrDivideByZero)
	}
	return remainder(a, b), nil
}

// Rotate returns v turned by angle radians about axis.
func Rotate(v Vector, angle float64, axis Axis) (Vector, error) {
	if _, err := v.RotateAbout(angle, axis); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.Dot(b)
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vector, t float64) Vector {
	return a.Lerp(b, t)
}

// Normalize returns a unit-length copy of v, or an error wrapping
// ErrZeroVector when v is the origin.
func Normalize(v Vector) (Vector, error) {
	return v.Normalized()
}
