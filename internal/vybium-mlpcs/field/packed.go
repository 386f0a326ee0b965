package field

import "fmt"

// Packed is a SIMD-style container of Width scalars of S, the Go rendering
// of spec.md's packed field P: "P behaves as a vector of W scalars of F."
// This is a documented simplification of true bit-packed SIMD lanes (placed
// out of scope by spec.md §1, which excludes "packed-field SIMD
// implementations" as an external field-layer concern): Packed stores its
// lanes as an ordinary slice rather than sub-word bit fields, but exposes
// exactly the get/set/iterate/arithmetic contract spec.md §3 requires, so
// every caller above this package is agnostic to the memory layout choice.
type Packed[S Scalar[S]] struct {
	lanes []S
}

// NewPacked builds a packed cell from exactly width lanes of zero.
func NewPacked[S Scalar[S]](width int, zero S) Packed[S] {
	lanes := make([]S, width)
	for i := range lanes {
		lanes[i] = zero
	}
	return Packed[S]{lanes: lanes}
}

// FromLanes wraps an existing slice of scalars as a packed cell. len(lanes)
// must be a power of two per spec.md's packed-width contract; callers in
// this module only ever build Packed values with widths fixed at
// construction of the owning MultilinearExtension, so the check lives there.
func FromLanes[S Scalar[S]](lanes []S) Packed[S] {
	return Packed[S]{lanes: lanes}
}

// Width is spec.md's W.
func (p Packed[S]) Width() int { return len(p.lanes) }

// Get returns the scalar at lane j.
func (p Packed[S]) Get(j int) S {
	return p.lanes[j]
}

// Set returns a copy of p with lane j replaced by v (Packed values are
// treated as immutable value types elsewhere in this module, matching the
// MLE's "immutable after construction except via explicit in-place writes
// into a caller-provided output" discipline from spec.md §3).
func (p Packed[S]) Set(j int, v S) Packed[S] {
	out := make([]S, len(p.lanes))
	copy(out, p.lanes)
	out[j] = v
	return Packed[S]{lanes: out}
}

// Lanes exposes the underlying scalar slice for iteration.
func (p Packed[S]) Lanes() []S {
	return p.lanes
}

// Add performs the componentwise extension of scalar addition, per
// spec.md's "arithmetic as the componentwise extension."
func (p Packed[S]) Add(o Packed[S]) Packed[S] {
	if len(p.lanes) != len(o.lanes) {
		panic(fmt.Sprintf("field: packed width mismatch %d != %d", len(p.lanes), len(o.lanes)))
	}
	out := make([]S, len(p.lanes))
	for i := range out {
		out[i] = p.lanes[i].Add(o.lanes[i])
	}
	return Packed[S]{lanes: out}
}

func (p Packed[S]) Sub(o Packed[S]) Packed[S] {
	if len(p.lanes) != len(o.lanes) {
		panic(fmt.Sprintf("field: packed width mismatch %d != %d", len(p.lanes), len(o.lanes)))
	}
	out := make([]S, len(p.lanes))
	for i := range out {
		out[i] = p.lanes[i].Sub(o.lanes[i])
	}
	return Packed[S]{lanes: out}
}
