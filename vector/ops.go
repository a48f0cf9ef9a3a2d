package vector

import (
	"fmt"
	"slices"
	"strconv"
)

// Op is a symbolic vector operator. Mutating operators (+=, -=, *=, /=, =)
// alias the pointer-receiver methods and modify the receiver; pure operators
// (+, -, *, /, %, ==) alias the package functions and leave it untouched.
type Op string

const (
	OpAddAssign Op = "+="
	OpSubAssign Op = "-="
	OpMulAssign Op = "*="
	OpDivAssign Op = "/="
	OpAssign    Op = "="

	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpEq  Op = "=="
)

// Ops lists every operator, mutating forms first.
var Ops = []Op{
	OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpAssign,
	OpAdd, OpSub, OpMul, OpDiv, OpMod, OpEq,
}

// ParseOp converts an operator symbol to an Op.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	if !slices.Contains(Ops, op) {
		return "", fmt.Errorf("vector: operator %q: %w", s, ErrUnknownOp)
	}
	return op, nil
}

// Mutating reports whether op modifies its receiver.
func (op Op) Mutating() bool {
	switch op {
	case OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpAssign:
		return true
	}
	return false
}

type operandKind int

const (
	operandVector operandKind = iota
	operandScalar
	operandComponents
)

// Operand is the right-hand side of an operator: a vector, a scalar, or a
// raw component list whose arity is checked when the operator is applied.
type Operand struct {
	kind       operandKind
	vec        Vector
	scalar     float64
	components []float64
}

// Vec wraps a vector operand.
func Vec(v Vector) Operand {
	return Operand{kind: operandVector, vec: v}
}

// Scalar wraps a scalar operand, applied to all three components.
func Scalar(s float64) Operand {
	return Operand{kind: operandScalar, scalar: s}
}

// Components wraps a component list. It must hold 2 or 3 values (Z is 0 when
// only 2 are given); Apply reports ErrArity otherwise.
func Components(cs ...float64) Operand {
	return Operand{kind: operandComponents, components: slices.Clone(cs)}
}

// resolve returns the operand as a vector, or reports that it is a scalar.
func (o Operand) resolve() (v Vector, s float64, isScalar bool, err error) {
	switch o.kind {
	case operandScalar:
		return Vector{}, o.scalar, true, nil
	case operandComponents:
		v, err = New(o.components...)
		return v, 0, false, err
	default:
		return o.vec, 0, false, nil
	}
}

// Result is the outcome of Apply. Comparisons set IsBool and Bool; every
// other operator sets Vector.
type Result struct {
	Vector Vector
	Bool   bool
	IsBool bool
}

// String formats the result as a vector or as "true"/"false".
func (r Result) String() string {
	if r.IsBool {
		return strconv.FormatBool(r.Bool)
	}
	return r.Vector.String()
}

// Apply evaluates "v op arg". For mutating operators v is modified and the
// result holds its new value; pure operators leave v untouched. On error v is
// never modified.
func (v *Vector) Apply(op Op, arg Operand) (Result, error) {
	o, s, isScalar, err := arg.resolve()
	if err != nil {
		return Result{}, fmt.Errorf("vector: %s operand: %w", op, err)
	}

	switch op {
	case OpAddAssign:
		if isScalar {
			return vectorResult(v.AddScalar(s))
		}
		return vectorResult(v.Add(o))
	case OpSubAssign:
		if isScalar {
			return vectorResult(v.SubScalar(s))
		}
		return vectorResult(v.Sub(o))
	case OpMulAssign:
		if isScalar {
			return vectorResult(v.Scale(s))
		}
		return vectorResult(v.Mult(o))
	case OpDivAssign:
		if isScalar {
			return fallibleResult(v.DivScalar(s))
		}
		return fallibleResult(v.Div(o))
	case OpAssign:
		if isScalar {
			return vectorResult(v.SetScalar(s))
		}
		return vectorResult(v.Set(o))
	}

	c := *v
	switch op {
	case OpAdd:
		if isScalar {
			return vectorResult(c.AddScalar(s))
		}
		return Result{Vector: Add(c, o)}, nil
	case OpSub:
		if isScalar {
			return vectorResult(c.SubScalar(s))
		}
		return Result{Vector: Sub(c, o)}, nil
	case OpMul:
		if isScalar {
			return Result{Vector: Mult(c, s)}, nil
		}
		return Result{Vector: MultVec(c, o)}, nil
	case OpDiv:
		if isScalar {
			return pureResult(Div(c, s))
		}
		return pureResult(DivVec(c, o))
	case OpMod:
		if isScalar {
			return pureResult(Mod(c, s))
		}
		return pureResult(ModVec(c, o))
	case OpEq:
		if isScalar {
			return Result{}, fmt.Errorf("vector: compare %v with scalar %g: %w", c, s, ErrOperand)
		}
		return Result{Bool: c.Equal(o), IsBool: true}, nil
	}

	return Result{}, fmt.Errorf("vector: operator %q: %w", string(op), ErrUnknownOp)
}

func vectorResult(v *Vector) (Result, error) {
	return Result{Vector: *v}, nil
}

func fallibleResult(v *Vector, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Vector: *v}, nil
}

func pureResult(v Vector, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Vector: v}, nil
}
