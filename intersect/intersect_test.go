package intersect

import (
	"errors"
	"testing"

	"github.com/vovakirdan/vecgeom/vector"
)

func TestLinePointCollision(t *testing.T) {
	l1 := vector.New2(0, 0)
	l2 := vector.New2(10, 0)

	tests := []struct {
		name     string
		p        vector.Vector
		expected bool
	}{
		{"midpoint", vector.New2(5, 0), true},
		{"start endpoint", vector.New2(0, 0), true},
		{"end endpoint", vector.New2(10, 0), true},
		{"beyond end", vector.New2(15, 0), false},
		{"before start", vector.New2(-3, 0), false},
		{"just past end within tolerance", vector.New2(10.04, 0), true},
		{"offset inside tolerance", vector.New2(5, 0.05), true},
		{"offset outside tolerance", vector.New2(5, 0.2), false},
		{"far off line", vector.New2(5, 5), false},
		{"3D offset", vector.New3(5, 0, 0.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LinePointCollision(l1, l2, tc.p); got != tc.expected {
				t.Errorf("LinePointCollision(%v, %v, %v) = %v, expected %v", l1, l2, tc.p, got, tc.expected)
			}
			// Segment direction must not matter
			if got := LinePointCollision(l2, l1, tc.p); got != tc.expected {
				t.Errorf("LinePointCollision (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLinePointCollisionDegenerate(t *testing.T) {
	p := vector.New2(3, 3)
	if !LinePointCollision(p, p, p) {
		t.Error("point should lie on a zero-length segment at the same place")
	}
	if LinePointCollision(p, p, vector.New2(4, 3)) {
		t.Error("distant point should not lie on a zero-length segment")
	}
}

func TestLineClosestPoint(t *testing.T) {
	tests := []struct {
		name     string
		l1, l2   vector.Vector
		p        vector.Vector
		expected vector.Vector
	}{
		{"above middle", vector.New2(0, 0), vector.New2(10, 0), vector.New2(5, 5), vector.New2(5, 0)},
		{"beyond end (unclamped)", vector.New2(0, 0), vector.New2(10, 0), vector.New2(20, -3), vector.New2(20, 0)},
		{"diagonal", vector.New2(0, 0), vector.New2(4, 4), vector.New2(0, 4), vector.New2(2, 2)},
		{"3D", vector.New3(0, 0, 0), vector.New3(0, 0, 10), vector.New3(1, 1, 4), vector.New3(0, 0, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LineClosestPoint(tc.l1, tc.l2, tc.p)
			if err != nil {
				t.Fatalf("LineClosestPoint() failed: %v", err)
			}
			if !got.ApproxEqual(tc.expected, 1e-9) {
				t.Errorf("LineClosestPoint(%v, %v, %v) = %v, expected %v", tc.l1, tc.l2, tc.p, got, tc.expected)
			}
		})
	}
}

func TestLineClosestPointDegenerate(t *testing.T) {
	p := vector.New2(1, 1)
	_, err := LineClosestPoint(p, p, vector.New2(5, 5))
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("error = %v, expected ErrDegenerateSegment", err)
	}
	if !errors.Is(err, vector.ErrDivideByZero) {
		t.Errorf("error = %v, expected it to wrap vector.ErrDivideByZero", err)
	}
}

func TestLineClosestPointLargeCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		l1, l2   vector.Vector
		p        vector.Vector
		expected vector.Vector
	}{
		{"huge segment", vector.New2(0, 0), vector.New2(1e200, 0), vector.New2(5e199, 5), vector.New2(5e199, 0)},
		{"huge diagonal", vector.New2(0, 0), vector.New2(1e200, 1e200), vector.New2(0, 2e200), vector.New2(1e200, 1e200)},
		{"tiny segment", vector.New2(0, 0), vector.New2(1e-170, 0), vector.New2(5e-171, 1), vector.New2(5e-171, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LineClosestPoint(tc.l1, tc.l2, tc.p)
			if err != nil {
				t.Fatalf("LineClosestPoint() failed: %v", err)
			}
			if !got.IsFinite() {
				t.Fatalf("LineClosestPoint(%v, %v, %v) = %v, expected a finite point", tc.l1, tc.l2, tc.p, got)
			}
			scale := tc.expected.Magnitude()
			if d := vector.Sub(got, tc.expected).Magnitude(); d > scale*1e-12 {
				t.Errorf("LineClosestPoint(%v, %v, %v) = %v, expected %v", tc.l1, tc.l2, tc.p, got, tc.expected)
			}
		})
	}
}

func TestLineClosestPointOverflow(t *testing.T) {
	l1 := vector.New2(-1e308, 0)
	l2 := vector.New2(1e308, 0)

	_, err := LineClosestPoint(l1, l2, vector.New2(0, 1))
	if !errors.Is(err, vector.ErrNonFinite) {
		t.Errorf("error = %v, expected vector.ErrNonFinite", err)
	}
	if errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("error = %v, should not report a degenerate segment", err)
	}

	if LinePointCollision(l1, l2, vector.New2(0, 0)) {
		t.Error("LinePointCollision should not report a hit when the segment length overflows")
	}

	hit, err := LineCircleCollision(l1, l2, vector.New2(0, 0), 1)
	if !errors.Is(err, vector.ErrNonFinite) {
		t.Errorf("LineCircleCollision() error = %v, expected vector.ErrNonFinite", err)
	}
	if hit {
		t.Error("LineCircleCollision should not report a hit on error")
	}
}

func TestLineCircleCollision(t *testing.T) {
	l1 := vector.New2(0, 0)
	l2 := vector.New2(10, 0)

	tests := []struct {
		name     string
		c        vector.Vector
		r        float64
		expected bool
	}{
		{"segment passes through circle", vector.New2(5, 1), 1, true},
		{"circle crosses middle", vector.New2(5, 0.5), 1, true},
		{"circle far from segment", vector.New2(5, 5), 1, false},
		{"endpoint inside circle", vector.New2(-1, 0), 2, true},
		{"circle beyond end on the line", vector.New2(14, 0), 2, false},
		{"circle near line but past end", vector.New2(14, 0.5), 1, false},
		{"zero radius on segment", vector.New2(3, 0), 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LineCircleCollision(l1, l2, tc.c, tc.r)
			if err != nil {
				t.Fatalf("LineCircleCollision() failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("LineCircleCollision(%v, %v, %v, %g) = %v, expected %v", l1, l2, tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestLineCircleCollisionDegenerate(t *testing.T) {
	p := vector.New2(0, 0)
	hit, err := LineCircleCollision(p, p, vector.New2(0, 0), 5)
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("error = %v, expected ErrDegenerateSegment", err)
	}
	if hit {
		t.Error("degenerate segment should not report a collision")
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	l1 := vector.New3(1, 2, 3)
	l2 := vector.New3(4, 5, 6)
	c := vector.New3(2, 2, 2)

	LinePointCollision(l1, l2, c)
	_, _ = LineClosestPoint(l1, l2, c)
	_, _ = LineCircleCollision(l1, l2, c, 1)

	if l1 != vector.New3(1, 2, 3) || l2 != vector.New3(4, 5, 6) || c != vector.New3(2, 2, 2) {
		t.Errorf("arguments modified: %v %v %v", l1, l2, c)
	}
}
