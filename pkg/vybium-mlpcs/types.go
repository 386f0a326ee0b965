package vybiummlpcs

import (
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/backend"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/pcs"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/transcript"
)

// Base is the module's concrete base scalar field F.
type Base = field.Base

// Quartic is the module's concrete extension field FE, used for every
// evaluation query, challenge, and claimed value.
type Quartic = field.Quartic

// Scalar is the field-element contract every base scalar type must satisfy.
type Scalar[T any] = field.Scalar[T]

// Packed is a packed, width-W view of W scalars of S.
type Packed[S field.Scalar[S]] = field.Packed[S]

// Ring is the field-element contract every evaluation/query type must
// satisfy: a Scalar with identity elements.
type Ring[T any] = polynomial.Ring[T]

// MultilinearExtension is a mu-variate multilinear polynomial represented
// by its hypercube evaluations, packed over S and evaluated into E.
type MultilinearExtension[S field.Scalar[S], E Ring[E]] = polynomial.MultilinearExtension[S, E]

// IdentityLift is the trivial S=E embedding.
func IdentityLift[E Ring[E]](e E) E { return polynomial.IdentityLift(e) }

// NewMultilinearExtension builds an MLE from owned packed cells, matching
// polynomial.NewFromValues.
func NewMultilinearExtension[S field.Scalar[S], E Ring[E]](width int, values []field.Packed[S], lift func(S) E) (*MultilinearExtension[S, E], error) {
	return polynomial.NewFromValues(width, values, lift)
}

// Challenger is the Fiat-Shamir transcript contract.
type Challenger = transcript.Challenger

// NewShakeChallenger builds a Challenger backed by a Shake256 duplex.
func NewShakeChallenger() *transcript.ShakeChallenger { return transcript.NewShakeChallenger() }

// Backend is the computation-backend contract threaded through the
// Batch-PCS adapter to its inner PCS.
type Backend[S field.Scalar[S]] = backend.Backend[S]

// Portable is the reference Backend implementation with no acceleration.
type Portable[S field.Scalar[S]] = backend.Portable[S]

// InnerPCS is the abstract single-batch commitment scheme the Batch-PCS
// adapter delegates to.
type InnerPCS[S field.Scalar[S]] = pcs.InnerPCS[S]

// BatchPCS merges a batch of 2^m n-variate polynomials into one
// (n+m)-variate polynomial and delegates commitment and evaluation proofs
// to an inner PCS.
type BatchPCS[S field.Scalar[S]] = pcs.BatchPCS[S]

// NewBatchPCS builds a BatchPCS over an inner PCS already configured for
// nVars+logNumPolys variables.
func NewBatchPCS[S field.Scalar[S]](inner pcs.InnerPCS[S], nVars, logNumPolys int) (*pcs.BatchPCS[S], error) {
	return pcs.New(inner, nVars, logNumPolys)
}

// Proof is the Batch-PCS adapter's opaque proof object.
type Proof = pcs.Proof

// Error is the Batch-PCS adapter's structured error type.
type Error = pcs.Error

// PolynomialError is the multilinear-extension algebra's structured error
// type, returned directly by operations (Merge, Evaluate, ...) that never
// reach the Batch-PCS adapter's own validation.
type PolynomialError = polynomial.Error
