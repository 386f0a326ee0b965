package polynomial

import (
	"math/rand"
	"testing"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
)

const expandTestSeed = 777

func TestExpandConsistency(t *testing.T) {
	// Invariant 1 (spec §8): the iterative expansion equals the naive
	// per-index product definition, for every i in [0, 2^k).
	r := rand.New(rand.NewSource(expandTestSeed))

	for _, k := range []int{0, 1, 2, 3, 5, 8} {
		q := make([]field.Quartic, k)
		for i := range q {
			q[i] = field.Quartic{C0: field.NewBase(r.Uint64()), C1: field.NewBase(r.Uint64()), C2: field.NewBase(r.Uint64()), C3: field.NewBase(r.Uint64())}
		}

		got, err := Expand(q)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(got) != 1<<k {
			t.Fatalf("k=%d: expected length %d, got %d", k, 1<<k, len(got))
		}

		one := field.Quartic{}.One()
		for i := 0; i < 1<<k; i++ {
			want := one
			for j := 0; j < k; j++ {
				bit := (i >> j) & 1
				var term field.Quartic
				if bit == 1 {
					term = q[j]
				} else {
					term = one.Sub(q[j])
				}
				want = want.Mul(term)
			}
			if !got[i].Equal(want) {
				t.Fatalf("k=%d i=%d: got %v want %v", k, i, got[i], want)
			}
		}
	}
}

func TestExpandTooManyVariables(t *testing.T) {
	q := make([]field.Quartic, maxExpandVars+1)
	if _, err := Expand(q); err == nil {
		t.Fatal("expected TooManyVariables error")
	}
}
