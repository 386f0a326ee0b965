package pcs

import (
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/backend"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/transcript"
)

// Proof is the Batch-PCS adapter's own proof object: an opaque wrapper
// around whatever the inner PCS produced, plus nothing else — the mixing
// challenges r' are always re-derived from the challenger rather than
// carried in the proof, so the adapter adds no bytes of its own
// (spec.md §4.3).
type Proof struct {
	inner InnerProof
}

// BatchPCS merges a batch of 2^m n-variate polynomials into a single
// (n+m)-variate polynomial and delegates commitment and evaluation proofs
// to an inner PCS fixed at construction time (spec.md §4.3). S is the base
// scalar type the committed polynomials are packed over; the adapter's
// extension field FE is fixed to field.Quartic throughout, matching the
// module's Challenger and Backend contracts.
type BatchPCS[S field.Scalar[S]] struct {
	inner       InnerPCS[S]
	nVars       int
	logNumPolys int
}

// New builds an adapter over an inner PCS already configured for
// nVars+logNumPolys variables. Fails NumVarsInnerOuter if inner's own
// variable count disagrees.
func New[S field.Scalar[S]](inner InnerPCS[S], nVars, logNumPolys int) (*BatchPCS[S], error) {
	if inner.NVars() != nVars+logNumPolys {
		return nil, errNumVarsInnerOuter(inner.NVars(), nVars, logNumPolys)
	}
	return &BatchPCS[S]{inner: inner, nVars: nVars, logNumPolys: logNumPolys}, nil
}

// NVars returns n, the number of variables each committed polynomial has.
func (b *BatchPCS[S]) NVars() int { return b.nVars }

// LogNumPolys returns m, log2 of the batch size this instance accepts.
func (b *BatchPCS[S]) LogNumPolys() int { return b.logNumPolys }

// Commit validates the batch's shape, merges it into one (n+m)-variate
// polynomial T, and delegates to the inner PCS.
func (b *BatchPCS[S]) Commit(polys []*polynomial.MultilinearExtension[S, field.Quartic]) (Commitment, Committed, error) {
	want := 1 << b.logNumPolys
	if len(polys) != want {
		return nil, nil, errNumPolys(len(polys), want)
	}
	for _, p := range polys {
		if p.NVars() != b.nVars {
			return nil, nil, errNumVars(b.nVars, p.NVars())
		}
	}
	merged, err := polynomial.Merge(polys)
	if err != nil {
		return nil, nil, err
	}
	commitment, committed, err := b.inner.Commit([]*polynomial.MultilinearExtension[S, field.Quartic]{merged})
	if err != nil {
		return nil, nil, wrapInner(err)
	}
	return commitment, committed, nil
}

// ProveEvaluation proves that every polynomial in polys evaluates to the
// claimed value at query (spec.md §4.3): it draws m mixing challenges r'
// from ch, merges polys into T, and delegates a single-polynomial proof
// for T at query||r' to the inner PCS.
func (b *BatchPCS[S]) ProveEvaluation(
	ch transcript.Challenger,
	committed Committed,
	polys []*polynomial.MultilinearExtension[S, field.Quartic],
	query []field.Quartic,
	be backend.Backend[S],
) (*Proof, error) {
	if len(query) != b.nVars {
		return nil, errIncorrectQuerySize(b.nVars, len(query))
	}
	merged, err := polynomial.Merge(polys)
	if err != nil {
		return nil, err
	}

	rPrime := ch.SampleVec(b.logNumPolys)
	augmented := make([]field.Quartic, 0, len(query)+len(rPrime))
	augmented = append(augmented, query...)
	augmented = append(augmented, rPrime...)

	innerProof, err := b.inner.ProveEvaluation(ch, committed, []*polynomial.MultilinearExtension[S, field.Quartic]{merged}, augmented, be)
	if err != nil {
		return nil, wrapInner(err)
	}
	return &Proof{inner: innerProof}, nil
}

// VerifyEvaluation checks proof against commitment and the claimed
// per-polynomial values: it draws the same m mixing challenges r' from ch,
// mixes values into a single claim S(r') via the tensor-expansion kernel,
// and delegates verification of T(query||r') = S(r') to the inner PCS
// (spec.md §4.3).
func (b *BatchPCS[S]) VerifyEvaluation(
	ch transcript.Challenger,
	commitment Commitment,
	query []field.Quartic,
	proof *Proof,
	values []field.Quartic,
	be backend.Backend[S],
) error {
	if len(query) != b.nVars {
		return errIncorrectQuerySize(b.nVars, len(query))
	}

	rPrime := ch.SampleVec(b.logNumPolys)
	mixed, err := polynomial.EvaluateValues(values, rPrime)
	if err != nil {
		return err
	}

	augmented := make([]field.Quartic, 0, len(query)+len(rPrime))
	augmented = append(augmented, query...)
	augmented = append(augmented, rPrime...)

	if err := b.inner.VerifyEvaluation(ch, commitment, augmented, proof.inner, []field.Quartic{mixed}, be); err != nil {
		return wrapInner(err)
	}
	return nil
}

// ProofSize reports the inner scheme's serialized proof size for a
// single-polynomial batch, since ProveEvaluation always delegates exactly
// one merged polynomial regardless of the outer batch size (spec.md
// §4.3's Open Question resolution, see SPEC_FULL.md §13).
func (b *BatchPCS[S]) ProofSize(nPolys int) int {
	return b.inner.ProofSize(1)
}
