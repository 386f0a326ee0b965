package pcs

import (
	"math/rand"
	"testing"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/backend"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/refpcs"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/transcript"
)

const batchTestSeed = 31337

func liftBase(s field.Base) field.Quartic { return field.FromBase(s) }

func randomBaseScalar(r *rand.Rand) field.Base { return field.NewBase(r.Uint64()) }

func randomQuarticScalar(r *rand.Rand) field.Quartic {
	return field.Quartic{
		C0: field.NewBase(r.Uint64()),
		C1: field.NewBase(r.Uint64()),
		C2: field.NewBase(r.Uint64()),
		C3: field.NewBase(r.Uint64()),
	}
}

func randomMLE[S field.Scalar[S]](
	r *rand.Rand, mu, width int,
	randomScalar func(*rand.Rand) S,
	lift func(S) field.Quartic,
) *polynomial.MultilinearExtension[S, field.Quartic] {
	numCells := (1 << mu) / width
	cells := make([]field.Packed[S], numCells)
	for i := range cells {
		lanes := make([]S, width)
		for j := range lanes {
			lanes[j] = randomScalar(r)
		}
		cells[i] = field.FromLanes(lanes)
	}
	mle, err := polynomial.NewFromValues(width, cells, lift)
	if err != nil {
		panic(err)
	}
	return mle
}

// TestBatchPCSScenarioS1 covers spec.md's S1: F = FE, a trivial identity
// embedding, batch of 2^3 7-variate polynomials.
func TestBatchPCSScenarioS1(t *testing.T) {
	r := rand.New(rand.NewSource(batchTestSeed))
	const n, m = 7, 3

	polys := make([]*polynomial.MultilinearExtension[field.Quartic, field.Quartic], 1<<m)
	for i := range polys {
		polys[i] = randomMLE[field.Quartic](r, n, 1, randomQuarticScalar, polynomial.IdentityLift[field.Quartic])
	}

	inner := refpcs.New[field.Quartic](n+m, 1, field.Quartic{}, polynomial.IdentityLift[field.Quartic])
	adapter, err := New[field.Quartic](inner, n, m)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	commitment, committed, err := adapter.Commit(polys)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	query := make([]field.Quartic, n)
	for i := range query {
		query[i] = randomQuarticScalar(r)
	}
	values := make([]field.Quartic, len(polys))
	for i, p := range polys {
		v, err := p.Evaluate(query)
		if err != nil {
			t.Fatalf("poly %d direct evaluate: %v", i, err)
		}
		values[i] = v
	}

	ch := transcript.NewShakeChallenger()
	ch.Observe(commitment.([]byte))
	be := backend.Portable[field.Quartic]{}
	proof, err := adapter.ProveEvaluation(ch, committed, polys, query, be)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	ch2 := transcript.NewShakeChallenger()
	ch2.Observe(commitment.([]byte))
	if err := adapter.VerifyEvaluation(ch2, commitment, query, proof, values, be); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

// TestBatchPCSScenarioS2 covers spec.md's S2: F a ~2^32 base field, FE its
// ~2^128 extension, packed width 4.
func TestBatchPCSScenarioS2(t *testing.T) {
	r := rand.New(rand.NewSource(batchTestSeed + 1))
	const n, m, width = 3, 3, 4

	polys := make([]*polynomial.MultilinearExtension[field.Base, field.Quartic], 1<<m)
	for i := range polys {
		polys[i] = randomMLE[field.Base](r, n, width, randomBaseScalar, liftBase)
	}

	inner := refpcs.New[field.Base](n+m, width, field.Base{}, liftBase)
	adapter, err := New[field.Base](inner, n, m)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	commitment, committed, err := adapter.Commit(polys)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	query := make([]field.Quartic, n)
	for i := range query {
		query[i] = randomQuarticScalar(r)
	}
	values := make([]field.Quartic, len(polys))
	for i, p := range polys {
		v, err := p.Evaluate(query)
		if err != nil {
			t.Fatalf("poly %d direct evaluate: %v", i, err)
		}
		values[i] = v
	}

	ch := transcript.NewShakeChallenger()
	ch.Observe(commitment.([]byte))
	be := backend.Portable[field.Base]{}
	proof, err := adapter.ProveEvaluation(ch, committed, polys, query, be)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	ch2 := transcript.NewShakeChallenger()
	ch2.Observe(commitment.([]byte))
	if err := adapter.VerifyEvaluation(ch2, commitment, query, proof, values, be); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

// Invariant 6: verification rejects a tampered claimed value.
func TestBatchPCSRejectsTamperedValue(t *testing.T) {
	r := rand.New(rand.NewSource(batchTestSeed + 2))
	const n, m, width = 3, 2, 4

	polys := make([]*polynomial.MultilinearExtension[field.Base, field.Quartic], 1<<m)
	for i := range polys {
		polys[i] = randomMLE[field.Base](r, n, width, randomBaseScalar, liftBase)
	}

	inner := refpcs.New[field.Base](n+m, width, field.Base{}, liftBase)
	adapter, err := New[field.Base](inner, n, m)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	commitment, committed, err := adapter.Commit(polys)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	query := make([]field.Quartic, n)
	for i := range query {
		query[i] = randomQuarticScalar(r)
	}
	values := make([]field.Quartic, len(polys))
	for i, p := range polys {
		v, err := p.Evaluate(query)
		if err != nil {
			t.Fatalf("poly %d direct evaluate: %v", i, err)
		}
		values[i] = v
	}

	ch := transcript.NewShakeChallenger()
	ch.Observe(commitment.([]byte))
	be := backend.Portable[field.Base]{}
	proof, err := adapter.ProveEvaluation(ch, committed, polys, query, be)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	values[0] = values[0].Add(field.Quartic{}.One())
	ch2 := transcript.NewShakeChallenger()
	ch2.Observe(commitment.([]byte))
	if err := adapter.VerifyEvaluation(ch2, commitment, query, proof, values, be); err == nil {
		t.Fatal("expected verification failure for a tampered claimed value")
	}
}

// Invariant 7: shape validation errors surface before any inner-PCS call.
func TestBatchPCSShapeErrors(t *testing.T) {
	r := rand.New(rand.NewSource(batchTestSeed + 3))
	const n, m, width = 3, 2, 4

	inner := refpcs.New[field.Base](n+m, width, field.Base{}, liftBase)
	adapter, err := New[field.Base](inner, n, m)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	t.Run("NewRejectsMismatchedInnerVars", func(t *testing.T) {
		badInner := refpcs.New[field.Base](n+m+1, width, field.Base{}, liftBase)
		if _, err := New[field.Base](badInner, n, m); err == nil {
			t.Fatal("expected NumVarsInnerOuter error")
		}
	})

	t.Run("CommitRejectsWrongBatchSize", func(t *testing.T) {
		polys := make([]*polynomial.MultilinearExtension[field.Base, field.Quartic], (1<<m)-1)
		for i := range polys {
			polys[i] = randomMLE[field.Base](r, n, width, randomBaseScalar, liftBase)
		}
		if _, _, err := adapter.Commit(polys); err == nil {
			t.Fatal("expected NumPolys error")
		}
	})

	t.Run("CommitRejectsWrongNVars", func(t *testing.T) {
		polys := make([]*polynomial.MultilinearExtension[field.Base, field.Quartic], 1<<m)
		for i := range polys {
			polys[i] = randomMLE[field.Base](r, n+1, width, randomBaseScalar, liftBase)
		}
		if _, _, err := adapter.Commit(polys); err == nil {
			t.Fatal("expected NumVars error")
		}
	})

	t.Run("ProveRejectsWrongQuerySize", func(t *testing.T) {
		polys := make([]*polynomial.MultilinearExtension[field.Base, field.Quartic], 1<<m)
		for i := range polys {
			polys[i] = randomMLE[field.Base](r, n, width, randomBaseScalar, liftBase)
		}
		_, committed, err := adapter.Commit(polys)
		if err != nil {
			t.Fatalf("commit: %v", err)
		}
		ch := transcript.NewShakeChallenger()
		be := backend.Portable[field.Base]{}
		if _, err := adapter.ProveEvaluation(ch, committed, polys, make([]field.Quartic, n+1), be); err == nil {
			t.Fatal("expected IncorrectQuerySize error")
		}
	})
}
