// Package vybiummlpcs provides a Batch Polynomial Commitment Scheme adapter
// over multilinear extensions.
//
// The library has two layers: a generic multilinear-extension algebra
// (tensor-expansion kernel, hypercube evaluation, partial evaluation,
// subcube access, and the merge identity that glues a batch of n-variate
// polynomials into one (n+m)-variate polynomial), and a Batch-PCS adapter
// that uses that algebra to turn any single-polynomial commitment scheme
// into one that commits and opens a whole batch at once.
//
// # Quick Start
//
// Building and evaluating a multilinear extension:
//
//	cells := []field.Packed[field.Base]{ /* ... */ }
//	mle, err := polynomial.NewFromValues(1, cells, liftBase)
//	if err != nil {
//		log.Fatal(err)
//	}
//	value, err := mle.Evaluate(query)
//
// Committing and opening a batch through the adapter:
//
//	adapter, err := pcs.New[field.Base](innerScheme, nVars, logNumPolys)
//	commitment, committed, err := adapter.Commit(polys)
//	proof, err := adapter.ProveEvaluation(challenger, committed, polys, query, backend)
//	err = adapter.VerifyEvaluation(challenger, commitment, query, proof, values, backend)
//
// # Architecture
//
//   - pkg/vybium-mlpcs/: public API (this package)
//   - internal/vybium-mlpcs/field/: scalar, extension, and packed-field arithmetic
//   - internal/vybium-mlpcs/polynomial/: the tensor-expansion kernel and multilinear extension
//   - internal/vybium-mlpcs/transcript/: the Fiat-Shamir challenger
//   - internal/vybium-mlpcs/backend/: the computation-backend contract
//   - internal/vybium-mlpcs/pcs/: the Batch-PCS adapter and its InnerPCS contract
//   - internal/vybium-mlpcs/refpcs/: a Merkle-based reference InnerPCS for testing
//
// Implementation details in internal/ can change without breaking the
// public API.
package vybiummlpcs
