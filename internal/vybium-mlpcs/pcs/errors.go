// Package pcs implements the Batch Polynomial Commitment Scheme adapter:
// merging a batch of multilinear polynomials into one and delegating
// commit/open/verify to an abstract inner PCS (spec.md §4.3, §6).
package pcs

import "fmt"

// ErrorCode identifies the Batch-PCS adapter's error kinds, mirroring the
// teacher's VMError.Code pattern and polynomial.ErrorCode's shape.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota

	// ErrNumPolys: a batch's polynomial count was not 2^m.
	ErrNumPolys

	// ErrNumVars: a polynomial in the batch did not have n variables.
	ErrNumVars

	// ErrNumVarsInnerOuter: the inner PCS's variable count did not equal n+m.
	ErrNumVarsInnerOuter

	// ErrIncorrectQuerySize: the query did not have exactly n variables.
	ErrIncorrectQuerySize

	// ErrInnerPCS: the inner PCS returned an error, wrapped opaquely.
	ErrInnerPCS
)

// Error is the Batch-PCS adapter's structured error type.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pcs error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("pcs error [%d]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func errNumPolys(got, want int) error {
	return &Error{Code: ErrNumPolys, Message: fmt.Sprintf("batch has %d polynomials, want %d", got, want)}
}

func errNumVars(expected, got int) error {
	return &Error{Code: ErrNumVars, Message: fmt.Sprintf("expected %d variables, got %d", expected, got)}
}

func errNumVarsInnerOuter(nInner, nVars, logNumPolys int) error {
	return &Error{
		Code: ErrNumVarsInnerOuter,
		Message: fmt.Sprintf(
			"inner PCS has %d variables, want n_vars(%d)+log_num_polys(%d)=%d",
			nInner, nVars, logNumPolys, nVars+logNumPolys,
		),
	}
}

func errIncorrectQuerySize(expected, got int) error {
	return &Error{Code: ErrIncorrectQuerySize, Message: fmt.Sprintf("expected query of size %d, got %d", expected, got)}
}

func wrapInner(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrInnerPCS, Message: "inner PCS failure", Cause: err}
}
