package vector

import "errors"

// Sentinel errors returned (wrapped) by vector operations.
// Use errors.Is to test for them.
var (
	// ErrArity is returned when a vector is built from anything other than
	// 2 or 3 components.
	ErrArity = errors.New("expected 2 or 3 components")

	// ErrDivideByZero is returned when dividing by a zero scalar or by a
	// vector with any zero component.
	ErrDivideByZero = errors.New("division by zero")

	// ErrZeroVector is returned when an operation needs a direction but the
	// vector has zero magnitude.
	ErrZeroVector = errors.New("zero-length vector has no direction")

	// ErrNonFinite is returned when a result or input has an infinite or NaN
	// component, such as a segment whose length overflows float64.
	ErrNonFinite = errors.New("non-finite component")

	// ErrUnknownAxis is returned for rotation axes other than x, y or z.
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrUnknownOp is returned by ParseOp for unrecognised operator symbols.
	ErrUnknownOp = errors.New("unknown operator")

	// ErrOperand is returned when an operator is given an operand of the
	// wrong shape (e.g. comparing a vector with a scalar).
	ErrOperand = errors.New("unsupported operand")
)
