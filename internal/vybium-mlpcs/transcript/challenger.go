// Package transcript implements the Fiat-Shamir challenger abstraction the
// Batch-PCS adapter consumes (spec.md §3, §6): an object that absorbs
// observations and squeezes deterministic challenges, with the guarantee
// that a prover and verifier performing identical observe/sample sequences
// against equal initial states obtain identical samples.
package transcript

import "github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"

// Challenger is the abstract transcript contract consumed by the Batch-PCS
// adapter and its inner PCS. Concrete implementations (ShakeChallenger)
// mutate their internal state in place on every call.
type Challenger interface {
	// Observe absorbs x (a commitment digest or an encoded FE value) into
	// the transcript state.
	Observe(x []byte)

	// Sample squeezes a single FE challenge.
	Sample() field.Quartic

	// SampleVec squeezes k independent FE challenges.
	SampleVec(k int) []field.Quartic

	// SampleBits squeezes an n-bit unsigned integer, n <= 64.
	SampleBits(n int) uint64
}
