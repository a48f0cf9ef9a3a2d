package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/vecgeom/vector"
)

// ErrType is returned when a value of the wrong kind is used, such as a
// number on the left of an operator.
var ErrType = errors.New("type mismatch")

// Kind is the type of an evaluated value.
type Kind int

const (
	KindVector Kind = iota
	KindNumber
	KindBool
	KindAxis
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindAxis:
		return "axis"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the result of evaluating an expression or one of its terms.
type Value struct {
	Kind Kind
	Vec  vector.Vector
	Num  float64
	Bool bool
	Axis vector.Axis

	// literal holds the raw components of a "(a, b[, c])" literal. Its
	// arity is checked only when the literal is used.
	literal []float64
}

func numberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }

func vectorValue(v vector.Vector) Value { return Value{Kind: KindVector, Vec: v} }

// String prints vectors as "(x, y[, z])", numbers in shortest form and
// booleans as true or false.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindAxis:
		return v.Axis.String()
	default:
		return v.Vec.String()
	}
}

// vector returns the value as a vector, checking literal arity.
func (v Value) vector() (vector.Vector, error) {
	if v.Kind != KindVector {
		return vector.Vector{}, fmt.Errorf("expr: expected vector, got %s: %w", v.Kind, ErrType)
	}
	if v.literal != nil {
		return vector.New(v.literal...)
	}
	return v.Vec, nil
}

// operand converts a right-hand value to an operator operand.
func (v Value) operand() (vector.Operand, error) {
	switch {
	case v.Kind == KindNumber:
		return vector.Scalar(v.Num), nil
	case v.Kind == KindVector && v.literal != nil:
		return vector.Components(v.literal...), nil
	case v.Kind == KindVector:
		return vector.Vec(v.Vec), nil
	default:
		return vector.Operand{}, fmt.Errorf("expr: %s cannot be an operand: %w", v.Kind, ErrType)
	}
}

func (v Value) number() (float64, error) {
	if v.Kind != KindNumber {
		return 0, fmt.Errorf("expr: expected number, got %s: %w", v.Kind, ErrType)
	}
	return v.Num, nil
}
