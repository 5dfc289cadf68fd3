package core

import "errors"

// Sentinel errors for the numeric core. Callers wrap these with context and
// match them with errors.Is.
var (
	// ErrSingularMatrix is returned when a matrix cannot be inverted,
	// typically because a transform contains a degenerate (zero) scale.
	ErrSingularMatrix = errors.New("matrix is not invertible")

	// ErrDivideByZero is returned when a scalar division would divide by a
	// near-zero value.
	ErrDivideByZero = errors.New("division by near-zero scalar")
)
