// Package polynomial implements the tensor-expansion kernel and the
// multilinear-extension algebra built on top of it.
package polynomial

import "fmt"

// ErrorCode identifies the shape/range error kinds of the multilinear
// extension algebra, mirroring the teacher's VMError.Code pattern
// (pkg/vybium-starks-vm/errors.go) so callers can branch on Is(target).
type ErrorCode int

const (
	// ErrUnknown is reserved for completeness, never returned directly.
	ErrUnknown ErrorCode = iota

	// ErrPowerOfTwoLengthRequired: a values slice length was not a power of two.
	ErrPowerOfTwoLengthRequired

	// ErrArgumentRangeError: an integer argument fell outside its legal range.
	ErrArgumentRangeError

	// ErrHypercubeIndexOutOfRange: a hypercube index exceeded the polynomial's size.
	ErrHypercubeIndexOutOfRange

	// ErrTooManyVariables: the requested variable count would overflow 2^k indexing.
	ErrTooManyVariables

	// ErrIncorrectQuerySize: a query's length did not match the expected variable count.
	ErrIncorrectQuerySize

	// ErrIncorrectOutputPolynomialSize: an in-place output MLE had the wrong variable count.
	ErrIncorrectOutputPolynomialSize

	// ErrNumPolys: a batch's polynomial count was zero or not a power of two.
	ErrNumPolys

	// ErrNumVars: polynomials in a batch disagreed on their variable count.
	ErrNumVars
)

// Error is this package's structured error type, carrying a code, a
// human-readable message, and an optional wrapped cause — the same shape as
// the teacher's VMError (pkg/vybium-starks-vm/errors.go), generalized from
// VM-specific error kinds to the MLE shape/range taxonomy of spec.md §7.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("polynomial error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("polynomial error [%d]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func errPowerOfTwoLengthRequired(got int) error {
	return &Error{Code: ErrPowerOfTwoLengthRequired, Message: fmt.Sprintf("length %d is not a power of two", got)}
}

func errArgumentRange(arg string, got, lo, hi int) error {
	return &Error{Code: ErrArgumentRangeError, Message: fmt.Sprintf("%s=%d out of range [%d, %d]", arg, got, lo, hi)}
}

func errHypercubeIndexOutOfRange(index int) error {
	return &Error{Code: ErrHypercubeIndexOutOfRange, Message: fmt.Sprintf("hypercube index %d out of range", index)}
}

func errTooManyVariables(k int) error {
	return &Error{Code: ErrTooManyVariables, Message: fmt.Sprintf("variable count %d overflows index range", k)}
}

func errIncorrectQuerySize(expected, got int) error {
	return &Error{Code: ErrIncorrectQuerySize, Message: fmt.Sprintf("expected query of size %d, got %d", expected, got)}
}

func errIncorrectOutputPolynomialSize(expected, got int) error {
	return &Error{Code: ErrIncorrectOutputPolynomialSize, Message: fmt.Sprintf("expected output of %d variables, got %d", expected, got)}
}

func errNumPolys(got int) error {
	return &Error{Code: ErrNumPolys, Message: fmt.Sprintf("batch size %d is not a nonzero power of two", got)}
}

func errNumVars(expected, got int) error {
	return &Error{Code: ErrNumVars, Message: fmt.Sprintf("expected %d variables, got %d", expected, got)}
}
