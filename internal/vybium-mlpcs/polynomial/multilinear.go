package polynomial

import (
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/utils"
)

// MultilinearExtension represents a mu-variate multilinear polynomial by
// its 2^mu hypercube evaluations, packed W-wide into scalars of S, per
// spec.md §3. Evaluation queries and results live in the extension type E;
// lift embeds a base scalar of S into E, realizing "every F embeds into
// FE" without requiring E to carry a method keyed on S (a Go method cannot
// be overloaded for multiple S types on the same E receiver, so the
// embedding is supplied as a constructor-time function instead).
type MultilinearExtension[S field.Scalar[S], E Ring[E]] struct {
	mu    int
	width int
	evals []field.Packed[S]
	lift  func(S) E
}

// IdentityLift is the trivial embedding used when S and E coincide (the
// extension-typed MLEs produced by partial evaluation, and scenario S1's
// trivial F=FE case).
func IdentityLift[E Ring[E]](e E) E { return e }

// NewFromValues builds an MLE from owned packed cells. len(values) must be
// a power of two and every cell must have the given width; mu is derived as
// log2(len(values) * width). Go slices already alias their backing array,
// so this also serves spec.md's "from_values_slice" borrowed variant:
// whether values is freshly allocated or shared is the caller's choice.
func NewFromValues[S field.Scalar[S], E Ring[E]](width int, values []field.Packed[S], lift func(S) E) (*MultilinearExtension[S, E], error) {
	if !utils.IsPowerOfTwo(len(values)) {
		return nil, errPowerOfTwoLengthRequired(len(values))
	}
	if !utils.IsPowerOfTwo(width) {
		return nil, errPowerOfTwoLengthRequired(width)
	}
	for _, cell := range values {
		if cell.Width() != width {
			return nil, errArgumentRange("packed width", cell.Width(), width, width)
		}
	}
	mu := utils.Log2(len(values)) + utils.Log2(width)
	return &MultilinearExtension[S, E]{mu: mu, width: width, evals: values, lift: lift}, nil
}

// Zeros allocates a zero polynomial of mu variables. Requires
// mu >= log2(width) (spec.md §4.2: "there is at least one packed cell").
func Zeros[S field.Scalar[S], E Ring[E]](mu, width int, zero S, lift func(S) E) (*MultilinearExtension[S, E], error) {
	logWidth := utils.Log2(width)
	if mu < logWidth {
		return nil, errArgumentRange("mu", mu, logWidth, mu)
	}
	cells := make([]field.Packed[S], 1<<(mu-logWidth))
	for i := range cells {
		cells[i] = field.NewPacked(width, zero)
	}
	return &MultilinearExtension[S, E]{mu: mu, width: width, evals: cells, lift: lift}, nil
}

// NVars returns mu.
func (m *MultilinearExtension[S, E]) NVars() int { return m.mu }

// Size returns 2^mu.
func (m *MultilinearExtension[S, E]) Size() int { return 1 << m.mu }

// Width returns the packed width W of this MLE's coefficient buffer.
func (m *MultilinearExtension[S, E]) Width() int { return m.width }

// PackedEvaluateOnHypercube returns the packed cell at cell index i.
func (m *MultilinearExtension[S, E]) PackedEvaluateOnHypercube(i int) (field.Packed[S], error) {
	if i < 0 || i >= len(m.evals) {
		return field.Packed[S]{}, errHypercubeIndexOutOfRange(i)
	}
	return m.evals[i], nil
}

// EvaluateOnHypercube returns the scalar at hypercube index i, lifted to E.
func (m *MultilinearExtension[S, E]) EvaluateOnHypercube(i int) (E, error) {
	var zero E
	if i < 0 || i >= (1<<m.mu) {
		return zero, errHypercubeIndexOutOfRange(i)
	}
	cellIdx, lane := i/m.width, i%m.width
	return m.lift(m.evals[cellIdx].Get(lane)), nil
}

func (m *MultilinearExtension[S, E]) scalarAt(i int) S {
	cellIdx, lane := i/m.width, i%m.width
	return m.evals[cellIdx].Get(lane)
}

// Evaluate computes the full evaluation p(q) for |q| = mu, via the inner
// product of expand(q) with the lifted scalar view of evals.
func (m *MultilinearExtension[S, E]) Evaluate(q []E) (E, error) {
	var zero E
	if len(q) != m.mu {
		return zero, errIncorrectQuerySize(m.mu, len(q))
	}
	basis, err := Expand(q)
	if err != nil {
		return zero, err
	}
	return m.evaluateWithBasis(basis), nil
}

func (m *MultilinearExtension[S, E]) evaluateWithBasis(basis []E) E {
	var zero E
	sum := zero.Zero()
	for i, b := range basis {
		sum = sum.Add(b.Mul(m.lift(m.scalarAt(i))))
	}
	return sum
}

// BatchEvaluate lazily evaluates q against every poly in polys, computing
// the tensor expansion of q once and sharing it across the batch (spec.md
// §4.2). Each item is evaluated independently: a poly whose mu disagrees
// with |q| yields IncorrectQuerySize for that item alone, and iteration
// continues over the remaining items.
func BatchEvaluate[S field.Scalar[S], E Ring[E]](polys []*MultilinearExtension[S, E], q []E) func(yield func(E, error) bool) {
	return func(yield func(E, error) bool) {
		var zero E
		basis, err := Expand(q)
		if err != nil {
			for range polys {
				if !yield(zero, err) {
					return
				}
			}
			return
		}
		for _, p := range polys {
			if p.mu != len(q) {
				if !yield(zero, errIncorrectQuerySize(p.mu, len(q))) {
					return
				}
				continue
			}
			if !yield(p.evaluateWithBasis(basis), nil) {
				return
			}
		}
	}
}

// EvaluatePartialLow returns the MLE in mu-k variables representing
// p(q_0,...,q_{k-1}, X_k,...,X_{mu-1}), per spec.md §4.2. The result lives
// entirely over E (evaluating against FE-valued query coordinates mixes
// every remaining coefficient into an extension-field value), packed at
// width 1 since this module's packed extension cells are unpacked scalars.
func (m *MultilinearExtension[S, E]) EvaluatePartialLow(q []E) (*MultilinearExtension[E, E], error) {
	k := len(q)
	if k > m.mu {
		return nil, errArgumentRange("k", k, 0, m.mu)
	}
	basis, err := Expand(q)
	if err != nil {
		return nil, err
	}
	outVars := m.mu - k
	chunk := 1 << k
	outSize := 1 << outVars
	out, err := Zeros[E, E](outVars, 1, fieldZero[E](), IdentityLift[E])
	if err != nil {
		return nil, err
	}
	for i := 0; i < outSize; i++ {
		var zero E
		sum := zero.Zero()
		base := i * chunk
		for t := 0; t < chunk; t++ {
			sum = sum.Add(basis[t].Mul(m.lift(m.scalarAt(base + t))))
		}
		out.evals[i] = field.FromLanes([]E{sum})
	}
	return out, nil
}

// EvaluatePartialLowInto is the in-place variant of EvaluatePartialLow,
// requiring out.NVars() == mu-k.
func (m *MultilinearExtension[S, E]) EvaluatePartialLowInto(q []E, out *MultilinearExtension[E, E]) error {
	k := len(q)
	if k > m.mu {
		return errArgumentRange("k", k, 0, m.mu)
	}
	if out.mu != m.mu-k {
		return errIncorrectOutputPolynomialSize(m.mu-k, out.mu)
	}
	basis, err := Expand(q)
	if err != nil {
		return err
	}
	chunk := 1 << k
	for i := 0; i < out.Size(); i++ {
		var zero E
		sum := zero.Zero()
		base := i * chunk
		for t := 0; t < chunk; t++ {
			sum = sum.Add(basis[t].Mul(m.lift(m.scalarAt(base + t))))
		}
		out.evals[i] = field.FromLanes([]E{sum})
	}
	return nil
}

// EvaluatePartialHigh returns the MLE in mu-k variables representing
// p(X_0,...,X_{mu-k-1}, q_0,...,q_{k-1}), by splitting evals into 2^k
// contiguous chunks (iter_subpolynomials_high(mu-k)) and combining them with
// the tensor expansion of q.
func (m *MultilinearExtension[S, E]) EvaluatePartialHigh(q []E) (*MultilinearExtension[E, E], error) {
	k := len(q)
	if k > m.mu {
		return nil, errArgumentRange("k", k, 0, m.mu)
	}
	basis, err := Expand(q)
	if err != nil {
		return nil, err
	}
	outVars := m.mu - k
	chunkSize := 1 << outVars
	numChunks := 1 << k
	out, err := Zeros[E, E](outVars, 1, fieldZero[E](), IdentityLift[E])
	if err != nil {
		return nil, err
	}
	for i := 0; i < chunkSize; i++ {
		var zero E
		sum := zero.Zero()
		for t := 0; t < numChunks; t++ {
			idx := t*chunkSize + i
			sum = sum.Add(basis[t].Mul(m.lift(m.scalarAt(idx))))
		}
		out.evals[i] = field.FromLanes([]E{sum})
	}
	return out, nil
}

// IterSubpolynomialsHigh splits evals into 2^(mu-nVars) equal contiguous
// chunks of nVars variables each, returning one MLE per chunk sharing this
// MLE's scalar type, width, and lift. Requires log2(width) <= nVars <= mu.
func (m *MultilinearExtension[S, E]) IterSubpolynomialsHigh(nVars int) ([]*MultilinearExtension[S, E], error) {
	logWidth := utils.Log2(m.width)
	if nVars < logWidth || nVars > m.mu {
		return nil, errArgumentRange("nVars", nVars, logWidth, m.mu)
	}
	cellsPerChunk := (1 << nVars) / m.width
	numChunks := len(m.evals) / cellsPerChunk
	subs := make([]*MultilinearExtension[S, E], numChunks)
	for c := 0; c < numChunks; c++ {
		start := c * cellsPerChunk
		subs[c] = &MultilinearExtension[S, E]{
			mu:    nVars,
			width: m.width,
			evals: m.evals[start : start+cellsPerChunk],
			lift:  m.lift,
		}
	}
	return subs, nil
}

// InnerProdSubcube returns the inner product of expandedQuery with the
// subcube scalars at position index, within a partition of the hypercube
// into 2^(mu - qVars) subcubes of size 2^qVars, where
// qVars = log2(len(expandedQuery)).
func (m *MultilinearExtension[S, E]) InnerProdSubcube(index int, expandedQuery []E) (E, error) {
	var zero E
	if !utils.IsPowerOfTwo(len(expandedQuery)) {
		return zero, errPowerOfTwoLengthRequired(len(expandedQuery))
	}
	qVars := utils.Log2(len(expandedQuery))
	if qVars > m.mu {
		return zero, errArgumentRange("qVars", qVars, 0, m.mu)
	}
	numSubcubes := 1 << (m.mu - qVars)
	if index < 0 || index >= numSubcubes {
		return zero, errHypercubeIndexOutOfRange(index)
	}
	subcubeSize := 1 << qVars
	base := index * subcubeSize
	sum := zero.Zero()
	for t, b := range expandedQuery {
		sum = sum.Add(b.Mul(m.lift(m.scalarAt(base + t))))
	}
	return sum, nil
}

// SubcubeEvals writes the 2^vars scalars of the subcube at position index
// into dst, requiring len(dst)*width == 2^vars, vars <= mu, and
// index < 2^(mu-vars).
func (m *MultilinearExtension[S, E]) SubcubeEvals(vars, index int, dst []field.Packed[S]) error {
	logWidth := utils.Log2(m.width)
	if vars < logWidth || vars > m.mu {
		return errArgumentRange("vars", vars, logWidth, m.mu)
	}
	cellsPerSubcube := (1 << vars) / m.width
	if len(dst) != cellsPerSubcube {
		return errIncorrectOutputPolynomialSize(cellsPerSubcube, len(dst))
	}
	numSubcubes := 1 << (m.mu - vars)
	if index < 0 || index >= numSubcubes {
		return errHypercubeIndexOutOfRange(index)
	}
	start := index * cellsPerSubcube
	copy(dst, m.evals[start:start+cellsPerSubcube])
	return nil
}

// Merge combines 2^m n-variate polynomials into one (n+m)-variate MLE T
// with T(v||u) = t_u(v), by concatenating the underlying packed buffers in
// order of u (spec.md §4.2). Fails NumPolys if the count is zero or not a
// power of two, NumVars if any polynomial's mu disagrees.
func Merge[S field.Scalar[S], E Ring[E]](polys []*MultilinearExtension[S, E]) (*MultilinearExtension[S, E], error) {
	count := len(polys)
	if count == 0 || !utils.IsPowerOfTwo(count) {
		return nil, errNumPolys(count)
	}
	n := polys[0].mu
	width := polys[0].width
	lift := polys[0].lift
	total := 0
	for _, p := range polys {
		if p.mu != n {
			return nil, errNumVars(n, p.mu)
		}
		total += len(p.evals)
	}
	merged := make([]field.Packed[S], 0, total)
	for _, p := range polys {
		merged = append(merged, p.evals...)
	}
	mVars := utils.Log2(count)
	out, err := NewFromValues(width, merged, lift)
	if err != nil {
		return nil, err
	}
	if out.mu != n+mVars {
		return nil, errNumVars(n+mVars, out.mu)
	}
	return out, nil
}

// EvaluateValues interprets values as the evaluations on {0,1}^m of a
// multilinear polynomial and evaluates it at r via the tensor-expansion
// kernel directly, without constructing an MLE. Used by the Batch-PCS
// adapter to compute S(r') from the verifier's claimed per-polynomial
// values (spec.md §4.3).
func EvaluateValues[E Ring[E]](values []E, r []E) (E, error) {
	var zero E
	if len(values) != 1<<len(r) {
		return zero, errArgumentRange("len(values)", len(values), 1<<len(r), 1<<len(r))
	}
	basis, err := Expand(r)
	if err != nil {
		return zero, err
	}
	sum := zero.Zero()
	for i, b := range basis {
		sum = sum.Add(b.Mul(values[i]))
	}
	return sum, nil
}

func fieldZero[E Ring[E]]() E {
	var zero E
	return zero.Zero()
}
