// Package field implements the scalar, extension, and packed-field
// arithmetic the polynomial and pcs packages build on.
package field

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
)

// Scalar is the Go rendering of the spec's field trait bounds: every
// concrete scalar type embeds its own arithmetic so MultilinearExtension and
// friends can stay generic over which field they operate on. T is always the
// implementing type itself (a self-referential type parameter), since Go
// methods cannot introduce type parameters beyond those on the receiver.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	IsZero() bool
	Equal(T) bool
	Bytes() []byte
}

// Base is the module's concrete base field F: a prime field modulo a
// 32-bit prime. It stands in for the binary tower base field that spec.md
// treats as an out-of-scope external collaborator (§1): any field satisfying
// the Scalar contract is a legal implementation of F.
type Base struct {
	v uint32
}

// baseModulus is the largest prime below 2^32, giving Base a field of
// size ~2^32 as required by scenario S2.
const baseModulus uint64 = 4294967291

// NewBase reduces x modulo the field characteristic.
func NewBase(x uint64) Base {
	return Base{v: uint32(x % baseModulus)}
}

func (Base) Zero() Base { return Base{0} }
func (Base) One() Base  { return Base{1} }

func (a Base) Add(b Base) Base {
	return NewBase(uint64(a.v) + uint64(b.v))
}

func (a Base) Sub(b Base) Base {
	return NewBase(uint64(a.v) + baseModulus - uint64(b.v))
}

func (a Base) Neg() Base {
	if a.v == 0 {
		return a
	}
	return NewBase(baseModulus - uint64(a.v))
}

func (a Base) Mul(b Base) Base {
	return NewBase(uint64(a.v) * uint64(b.v))
}

func (a Base) IsZero() bool { return a.v == 0 }

func (a Base) Equal(b Base) bool { return a.v == b.v }

func (a Base) Bytes() []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], a.v)
	return buf[:]
}

func (a Base) Uint64() uint64 { return uint64(a.v) }

func (a Base) String() string { return fmt.Sprintf("%d", a.v) }

// RandomBase draws a uniform element of Base using a cryptographic RNG,
// matching the teacher's core.Field.RandomElement convention.
func RandomBase() Base {
	max := big.NewInt(int64(baseModulus))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(fmt.Errorf("field: random base: %w", err))
	}
	return NewBase(n.Uint64())
}
