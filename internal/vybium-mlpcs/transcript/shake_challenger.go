package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
)

// ShakeChallenger is a Challenger backed by a Shake256 duplex: Observe
// writes into the sponge's absorbing phase, and every Sample call finalizes
// the absorbed state, squeezes the requested number of bytes, then reseeds
// a fresh sponge with the squeezed output so later observations continue to
// perturb future samples. This generalizes the teacher's
// utils.Channel (state + proof log, rehashed via sha3 on every send/receive
// in channel.go) to a real streaming sponge from the same dependency,
// rather than repeatedly re-hashing a fixed-size digest.
type ShakeChallenger struct {
	sponge sha3.ShakeHash
}

// NewShakeChallenger creates a challenger with an empty initial transcript.
func NewShakeChallenger() *ShakeChallenger {
	return &ShakeChallenger{sponge: sha3.NewShake256()}
}

// Observe absorbs x, length-prefixed so that Observe([]byte{1,2}) followed
// by Observe([]byte{3}) is distinguishable from Observe([]byte{1,2,3}).
func (c *ShakeChallenger) Observe(x []byte) {
	var lenPrefix [8]byte
	binary.LittleEndian.PutUint64(lenPrefix[:], uint64(len(x)))
	c.sponge.Write(lenPrefix[:])
	c.sponge.Write(x)
}

// squeeze reads n bytes from the sponge, then replaces it with a fresh
// sponge that absorbs them (a SHAKE sponge cannot absorb once it has been
// read), so the sponge's future output depends on every challenge already
// drawn (without this, two back-to-back Sample calls with no intervening
// Observe would be indistinguishable draws from an unchanged state).
func (c *ShakeChallenger) squeeze(n int) []byte {
	out := make([]byte, n)
	c.sponge.Read(out)
	c.sponge = sha3.NewShake256()
	c.sponge.Write(out)
	return out
}

// Sample squeezes 16 bytes (matching field.Quartic's 4x32-bit layout) and
// reduces each 32-bit limb modulo the base field's characteristic.
func (c *ShakeChallenger) Sample() field.Quartic {
	raw := c.squeeze(16)
	return field.Quartic{
		C0: field.NewBase(uint64(binary.LittleEndian.Uint32(raw[0:4]))),
		C1: field.NewBase(uint64(binary.LittleEndian.Uint32(raw[4:8]))),
		C2: field.NewBase(uint64(binary.LittleEndian.Uint32(raw[8:12]))),
		C3: field.NewBase(uint64(binary.LittleEndian.Uint32(raw[12:16]))),
	}
}

// SampleVec draws k independent challenges in sequence.
func (c *ShakeChallenger) SampleVec(k int) []field.Quartic {
	out := make([]field.Quartic, k)
	for i := range out {
		out[i] = c.Sample()
	}
	return out
}

// SampleBits squeezes an n-bit unsigned integer, n <= 64.
func (c *ShakeChallenger) SampleBits(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n > 64 {
		n = 64
	}
	raw := c.squeeze(8)
	v := binary.LittleEndian.Uint64(raw)
	if n == 64 {
		return v
	}
	return v & ((uint64(1) << uint(n)) - 1)
}
