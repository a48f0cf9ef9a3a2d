package vector

import (
	"fmt"
	"math"
	"strings"
)

// Axis names the axis a rotation turns about. The zero value is AxisZ.
type Axis int

const (
	AxisZ Axis = iota // rotate in the xy plane
	AxisX             // rotate in the yz plane
	AxisY             // rotate in the xz plane
)

// ParseAxis converts "x", "y" or "z" (any case) to an Axis.
// The empty string selects the default, AxisZ.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "z", "":
		return AxisZ, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisZ, fmt.Errorf("vector: axis %q: %w", s, ErrUnknownAxis)
	}
}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotate turns v by angle radians about the z axis. X and Y change, Z does
// not.
func (v *Vector) Rotate(angle float64) *Vector {
	rotatePlane(&v.X, &v.Y, angle)
	return v
}

// RotateAbout turns v by angle radians about axis. The rotation happens in
// the swizzle plane orthogonal to the axis (yz for x, xz for y, xy for z):
// the heading of that swizzle advances by angle and its magnitude is
// preserved. The component along the axis is untouched.
func (v *Vector) RotateAbout(angle float64, axis Axis) (*Vector, error) {
	switch axis {
	case AxisX:
		rotatePlane(&v.Y, &v.Z, angle)
	case AxisY:
		rotatePlane(&v.X, &v.Z, angle)
	case AxisZ:
		rotatePlane(&v.X, &v.Y, angle)
	default:
		return v, fmt.Errorf("vector: rotate about %v: %w", axis, ErrUnknownAxis)
	}
	return v, nil
}

// rotatePlane rotates the 2D point (a, b) counter-clockwise by angle.
func rotatePlane(a, b *float64, angle float64) {
	sin, cos := math.Sincos(angle)
	*a, *b = *a*cos-*b*sin, *a*sin+*b*cos
}
