// Package backend implements the computation-backend contract the
// Batch-PCS adapter threads through to its inner PCS (spec.md §6): an
// opaque capability to materialize a pre-expanded query tensor and run
// accelerated inner-product primitives over it.
package backend

import (
	"fmt"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
)

// MultilinearQuery is a pre-expanded tensor of a query: the length-2^k
// evaluations produced by the tensor-expansion kernel, cached so repeated
// inner-product primitives over the same query avoid re-expanding it.
type MultilinearQuery struct {
	expansion []field.Quartic
}

// NewMultilinearQuery expands q once and wraps the result.
func NewMultilinearQuery(q []field.Quartic) (*MultilinearQuery, error) {
	expansion, err := polynomial.Expand(q)
	if err != nil {
		return nil, err
	}
	return &MultilinearQuery{expansion: expansion}, nil
}

// Expansion exposes the underlying tensor.
func (m *MultilinearQuery) Expansion() []field.Quartic { return m.expansion }

// NVars reports the number of variables the query was built from.
func (m *MultilinearQuery) NVars() int {
	n := 0
	for (1 << n) < len(m.expansion) {
		n++
	}
	return n
}

// Backend is the computation backend contract consumed by the Batch-PCS
// adapter and its inner PCS. The adapter itself never inspects a Backend's
// internals: it is threaded through ProveEvaluation/VerifyEvaluation calls
// opaquely, exactly as spec.md §6 requires ("the adapter treats backend as
// opaque and simply threads it through"). It is generic in the base scalar
// S an inner PCS's packed evaluations are stored in, matching InnerPCS[S].
type Backend[S field.Scalar[S]] interface {
	// Query materializes the pre-expanded tensor for q.
	Query(q []field.Quartic) (*MultilinearQuery, error)

	// InnerProduct computes the inner product of a query's expansion
	// against a packed-scalar view of evaluations, the accelerated
	// primitive inner PCS implementations build on.
	InnerProduct(query *MultilinearQuery, evals []field.Packed[S], lift func(S) field.Quartic) (field.Quartic, error)
}

// Portable is a straightforward, allocation-light Backend implementation
// with no SIMD or multi-threaded acceleration — the "portable" reference
// backend every inner PCS in this module's tests runs against, named after
// the teacher's convention of keeping a simple reference path alongside any
// accelerated one (e.g. core's plain field arithmetic vs. its parallel
// batch-operation variants in field_batch.go).
type Portable[S field.Scalar[S]] struct{}

func (Portable[S]) Query(q []field.Quartic) (*MultilinearQuery, error) {
	return NewMultilinearQuery(q)
}

func (Portable[S]) InnerProduct(query *MultilinearQuery, evals []field.Packed[S], lift func(S) field.Quartic) (field.Quartic, error) {
	basis := query.Expansion()
	width := 1
	if len(evals) > 0 {
		width = evals[0].Width()
	}
	if len(basis) != len(evals)*width {
		return field.Quartic{}, fmt.Errorf("backend: query expansion length %d does not match evaluation buffer length %d", len(basis), len(evals)*width)
	}
	sum := field.Quartic{}.Zero()
	for i, b := range basis {
		cellIdx, lane := i/width, i%width
		sum = sum.Add(b.Mul(lift(evals[cellIdx].Get(lane))))
	}
	return sum, nil
}
