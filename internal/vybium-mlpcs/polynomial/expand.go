package polynomial

import "github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"

// Ring is the arithmetic surface Expand needs beyond field.Scalar[T]: a
// multiplicative identity, used to seed the tensor expansion at index 0.
// field.Base and field.Quartic both satisfy it.
type Ring[T any] interface {
	field.Scalar[T]
	Zero() T
	One() T
}

// maxExpandVars bounds k so that 2^k never overflows a platform int,
// realizing spec.md §4.1's "fails with TooManyVariables if k exceeds the
// platform's index range (2^k overflows usize)."
const maxExpandVars = 62

// Expand computes the length-2^k tensor expansion of q: the evaluations on
// {0,1}^k of the Lagrange basis polynomial at q (spec.md §4.1). Uses the
// required O(2^k)-time, O(2^k)-space iterative doubling algorithm rather
// than the O(k * 2^k) naive product definition.
func Expand[T Ring[T]](q []T) ([]T, error) {
	k := len(q)
	if k > maxExpandVars {
		return nil, errTooManyVariables(k)
	}

	size := 1 << k
	out := make([]T, size)
	var zero T
	out[0] = zero.One()

	for j := 0; j < k; j++ {
		mid := 1 << j
		for t := 0; t < mid; t++ {
			out[mid+t] = out[t]
		}
		qj := q[j]
		for t := 0; t < mid; t++ {
			prod := out[t].Mul(qj)
			out[t] = out[t].Sub(prod)
			out[mid+t] = prod
		}
	}

	return out, nil
}
