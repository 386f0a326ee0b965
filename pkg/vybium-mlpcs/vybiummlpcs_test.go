package vybiummlpcs_test

import (
	"math/rand"
	"testing"

	vybiummlpcs "github.com/vybium/vybium-mlpcs/pkg/vybium-mlpcs"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/refpcs"
)

// TestPublicFacadeRoundTrip exercises the full commit/prove/verify path
// through the exported pkg/vybium-mlpcs surface, confirming the facade's
// type aliases and wrapper functions compose correctly. Scalars, packed
// cells and the reference inner scheme, which the facade does not export,
// come from the internal field and refpcs packages.
func TestPublicFacadeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(555))
	const n, m, width = 3, 2, 2

	lift := func(s vybiummlpcs.Base) vybiummlpcs.Quartic { return field.FromBase(s) }

	numCells := (1 << n) / width
	polys := make([]*vybiummlpcs.MultilinearExtension[vybiummlpcs.Base, vybiummlpcs.Quartic], 1<<m)
	for u := range polys {
		cells := make([]vybiummlpcs.Packed[vybiummlpcs.Base], numCells)
		for i := range cells {
			lanes := make([]vybiummlpcs.Base, width)
			for j := range lanes {
				lanes[j] = field.NewBase(r.Uint64())
			}
			cells[i] = field.FromLanes(lanes)
		}
		poly, err := vybiummlpcs.NewMultilinearExtension(width, cells, lift)
		if err != nil {
			t.Fatalf("poly %d: %v", u, err)
		}
		polys[u] = poly
	}

	inner := refpcs.New[vybiummlpcs.Base](n+m, width, vybiummlpcs.Base{}, lift)
	adapter, err := vybiummlpcs.NewBatchPCS[vybiummlpcs.Base](inner, n, m)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	commitment, committed, err := adapter.Commit(polys)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	query := make([]vybiummlpcs.Quartic, n)
	for i := range query {
		query[i] = field.RandomQuartic()
	}
	values := make([]vybiummlpcs.Quartic, len(polys))
	for i, p := range polys {
		v, err := p.Evaluate(query)
		if err != nil {
			t.Fatalf("poly %d evaluate: %v", i, err)
		}
		values[i] = v
	}

	ch := vybiummlpcs.NewShakeChallenger()
	ch.Observe(commitment.([]byte))
	be := vybiummlpcs.Portable[vybiummlpcs.Base]{}
	proof, err := adapter.ProveEvaluation(ch, committed, polys, query, be)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	ch2 := vybiummlpcs.NewShakeChallenger()
	ch2.Observe(commitment.([]byte))
	if err := adapter.VerifyEvaluation(ch2, commitment, query, proof, values, be); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
