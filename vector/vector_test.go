package vector

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		expected   Vector
		wantErr    bool
	}{
		{"two components", []float64{1, 2}, Vector{1, 2, 0}, false},
		{"three components", []float64{1, 2, 3}, Vector{1, 2, 3}, false},
		{"no components", nil, Vector{}, true},
		{"one component", []float64{1}, Vector{}, true},
		{"four components", []float64{1, 2, 3, 4}, Vector{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.components...)
			if tc.wantErr {
				if !errors.Is(err, ErrArity) {
					t.Fatalf("New(%v) error = %v, expected ErrArity", tc.components, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v) failed: %v", tc.components, err)
			}
			if v != tc.expected {
				t.Errorf("New(%v) = %v, expected %v", tc.components, v, tc.expected)
			}
		})
	}
}

func TestTwoDimensionalZStaysZero(t *testing.T) {
	v := New2(3, 4)
	v.Add(New2(1, 1)).Scale(2).Rotate(math.Pi / 3)
	v.Reflect(New2(1, 0))
	if v.Z != 0 {
		t.Errorf("Z = %g after 2D operations, expected 0", v.Z)
	}
}

func TestMagnitudeAndHeading(t *testing.T) {
	v := New3(2, 3, 6)
	if v.MagnitudeSquared() != 49 {
		t.Errorf("MagnitudeSquared() = %g, expected 49", v.MagnitudeSquared())
	}
	if math.Abs(v.Magnitude()-7) > eps {
		t.Errorf("Magnitude() = %g, expected 7", v.Magnitude())
	}
	if math.Abs(v.Float64()-7) > eps {
		t.Errorf("Float64() = %g, expected 7", v.Float64())
	}

	h := New3(0, 1, 99).Heading()
	if math.Abs(h-math.Pi/2) > eps {
		t.Errorf("Heading() = %g, expected pi/2 (z ignored)", h)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	v := New3(1, 2, 3)
	c := v.Copy()
	c.Add(New3(1, 1, 1))
	if v != New3(1, 2, 3) {
		t.Errorf("original changed to %v after mutating copy", v)
	}
}

func TestAbsMinMax(t *testing.T) {
	a := New3(-1, 5, -3)
	b := New3(2, -4, -3)

	if got := a.Abs(); got != New3(1, 5, 3) {
		t.Errorf("Abs() = %v", got)
	}
	if got := a.Min(b); got != New3(-1, -4, -3) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != New3(2, 5, -3) {
		t.Errorf("Max() = %v", got)
	}
	if a != New3(-1, 5, -3) {
		t.Errorf("Abs/Min/Max modified receiver: %v", a)
	}
}

func TestNormalize(t *testing.T) {
	tests := []Vector{
		New2(3, 4),
		New3(1, 1, 1),
		New3(-1e-6, 2e-6, 0),
		New3(1e6, -3e6, 2e6),
	}

	for _, v := range tests {
		n, err := Normalize(v)
		if err != nil {
			t.Fatalf("Normalize(%v) failed: %v", v, err)
		}
		if math.Abs(n.Magnitude()-1) > eps {
			t.Errorf("Normalize(%v) magnitude = %.12f, expected 1", v, n.Magnitude())
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	v := Zero()
	if _, err := v.Normalize(); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Normalize() error = %v, expected ErrZeroVector", err)
	}
	if !v.IsZero() {
		t.Errorf("failed Normalize() modified receiver: %v", v)
	}
	if _, err := Zero().Normalized(); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Normalized() error = %v, expected ErrZeroVector", err)
	}
}

func TestSetMagnitude(t *testing.T) {
	v := New2(3, 4)
	if _, err := v.SetMagnitude(10); err != nil {
		t.Fatalf("SetMagnitude() failed: %v", err)
	}
	if !v.ApproxEqual(New2(6, 8), eps) {
		t.Errorf("SetMagnitude(10) = %v, expected (6, 8)", v)
	}

	z := Zero()
	if _, err := z.SetMagnitude(1); !errors.Is(err, ErrZeroVector) {
		t.Errorf("SetMagnitude() on zero error = %v, expected ErrZeroVector", err)
	}
}

func TestNormalizeExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected Vector
	}{
		{"huge 3D", New3(1e200, 0, 0), New3(1, 0, 0)},
		{"huge 2D", New2(3e160, 4e160), New2(0.6, 0.8)},
		{"huge mixed", New3(-2e300, 3e300, 6e300), New3(-2.0/7, 3.0/7, 6.0/7)},
		{"tiny", New3(1e-170, 0, 0), New3(1, 0, 0)},
		{"tiny 2D", New2(3e-170, -4e-170), New2(0.6, -0.8)},
		{"subnormal", New2(0, 5e-324), New2(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.v
			if _, err := v.Normalize(); err != nil {
				t.Fatalf("Normalize(%v) failed: %v", tc.v, err)
			}
			if !v.ApproxEqual(tc.expected, eps) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.v, v, tc.expected)
			}
		})
	}
}

func TestMagnitudeExtremes(t *testing.T) {
	if m := New2(3e200, 4e200).Magnitude(); math.Abs(m/5e200-1) > eps {
		t.Errorf("Magnitude() = %g, expected 5e200", m)
	}
	if m := New3(0, 3e-170, 4e-170).Magnitude(); math.Abs(m/5e-170-1) > eps {
		t.Errorf("Magnitude() = %g, expected 5e-170", m)
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	tests := []Vector{
		New2(math.Inf(1), 0),
		New3(1, math.Inf(-1), 2),
		New2(math.NaN(), 1),
	}
	for _, in := range tests {
		v := in
		if _, err := v.Normalize(); !errors.Is(err, ErrNonFinite) {
			t.Errorf("Normalize(%v) error = %v, expected ErrNonFinite", in, err)
		}
		if !sameBits(v, in) {
			t.Errorf("failed Normalize() modified receiver: %v", v)
		}
	}
}

// sameBits compares component bit patterns so NaN equals itself.
func sameBits(a, b Vector) bool {
	return math.Float64bits(a.X) == math.Float64bits(b.X) &&
		math.Float64bits(a.Y) == math.Float64bits(b.Y) &&
		math.Float64bits(a.Z) == math.Float64bits(b.Z)
}

func TestSetMagnitudeExtremes(t *testing.T) {
	v := New2(1e200, 0)
	if _, err := v.SetMagnitude(5); err != nil {
		t.Fatalf("SetMagnitude() failed: %v", err)
	}
	if !v.ApproxEqual(New2(5, 0), eps) {
		t.Errorf("SetMagnitude(5) on (1e200, 0) = %v, expected (5, 0)", v)
	}

	w := New2(3e-170, 4e-170)
	if _, err := w.SetMagnitude(10); err != nil {
		t.Fatalf("SetMagnitude() failed: %v", err)
	}
	if !w.ApproxEqual(New2(6, 8), eps) {
		t.Errorf("SetMagnitude(10) on (3e-170, 4e-170) = %v, expected (6, 8)", w)
	}

	inf := New2(math.Inf(1), 1)
	if _, err := inf.SetMagnitude(1); !errors.Is(err, ErrNonFinite) {
		t.Errorf("SetMagnitude() on %v error = %v, expected ErrNonFinite", inf, err)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v        Vector
		expected bool
	}{
		{New2(1, 2), true},
		{New3(1e308, -1e308, 0), true},
		{New2(math.Inf(1), 0), false},
		{New3(0, 0, math.NaN()), false},
	}
	for _, tc := range tests {
		if got := tc.v.IsFinite(); got != tc.expected {
			t.Errorf("IsFinite(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v        Vector
		expected string
	}{
		{New2(1, 2), "(1, 2)"},
		{New3(1, 2, 0), "(1, 2)"},
		{New3(1.5, -2, 3), "(1.5, -2, 3)"},
		{New2(0.1, 0), "(0.1, 0)"},
	}

	for _, tc := range tests {
		if got := tc.v.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestEqual(t *testing.T) {
	if !New2(1, 2).Equal(New3(1, 2, 0)) {
		t.Error("(1, 2) should equal (1, 2, 0)")
	}
	// Runtime values: the constant expression 0.1+0.2 folds to exactly 0.3.
	a, b := 0.1, 0.2
	if New2(a+b, 0).Equal(New2(0.3, 0)) {
		t.Error("Equal should be exact, without epsilon")
	}
	if !New2(a+b, 0).ApproxEqual(New2(0.3, 0), eps) {
		t.Error("ApproxEqual should tolerate rounding")
	}
}

func TestLerp(t *testing.T) {
	a := New2(0, 0)
	b := New2(10, 20)

	tests := []struct {
		t        float64
		expected Vector
	}{
		{0, New2(0, 0)},
		{0.5, New2(5, 10)},
		{1, New2(10, 20)},
		{2, New2(20, 40)},
	}

	for _, tc := range tests {
		if got := Lerp(a, b, tc.t); !got.ApproxEqual(tc.expected, eps) {
			t.Errorf("Lerp(%v, %v, %g) = %v, expected %v", a, b, tc.t, got, tc.expected)
		}
	}
}
