package pcs

import (
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/backend"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/transcript"
)

// Commitment is an opaque binding to a committed polynomial, produced by
// Commit and consumed only by VerifyEvaluation. The Batch-PCS adapter never
// inspects its contents (spec.md §6: "the adapter treats Commitment,
// Committed and Proof as opaque").
type Commitment = any

// Committed is the opaque prover-side state produced by Commit (e.g. the
// Merkle tree behind a Commitment digest), threaded back into
// ProveEvaluation.
type Committed = any

// InnerProof is the opaque proof object an inner PCS produces; the
// Batch-PCS adapter wraps it in its own Proof type rather than inspecting
// it.
type InnerProof = any

// InnerPCS is the abstract single-polynomial-batch commitment scheme the
// Batch-PCS adapter delegates to (spec.md §4.3, §6). A conforming
// implementation must support exactly the shapes the adapter drives it
// with: single-polynomial batches over NVars() variables.
type InnerPCS[S field.Scalar[S]] interface {
	// NVars reports the fixed number of variables this instance commits
	// polynomials over.
	NVars() int

	// Commit binds a batch of equal-shape polynomials, returning a public
	// Commitment and prover-side Committed state.
	Commit(polys []*polynomial.MultilinearExtension[S, field.Quartic]) (Commitment, Committed, error)

	// ProveEvaluation proves that the merged batch polynomial evaluates to
	// the claimed values at query, drawing any inner-scheme randomness from
	// ch and running accelerated primitives through be.
	ProveEvaluation(
		ch transcript.Challenger,
		committed Committed,
		polys []*polynomial.MultilinearExtension[S, field.Quartic],
		query []field.Quartic,
		be backend.Backend[S],
	) (InnerProof, error)

	// VerifyEvaluation checks proof against commitment, query and the
	// claimed values, replaying the same challenger sequence the prover
	// used.
	VerifyEvaluation(
		ch transcript.Challenger,
		commitment Commitment,
		query []field.Quartic,
		proof InnerProof,
		values []field.Quartic,
		be backend.Backend[S],
	) error

	// ProofSize reports the serialized proof size in bytes this scheme
	// would produce for a batch of nPolys polynomials, without performing a
	// commitment. The Batch-PCS adapter always calls this with nPolys=1,
	// since it always delegates a single merged polynomial to the inner
	// scheme (spec.md §4.3's Open Question: "ProofSize ignores its argument
	// and forwards 1").
	ProofSize(nPolys int) int
}
