package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces uniformly distributed integers in [min, max] (inclusive).
// Implementations are not required to be safe for concurrent use; a Pool
// only ever calls its Source from the goroutine running it.
type Source interface {
	IntInRange(min, max int) int
}

// RandSource adapts a math/rand/v2 generator to Source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource wraps an explicit generator. Tests use this with a fixed
// PCG state to get reproducible runs.
func NewRandSource(rng *rand.Rand) *RandSource {
	return &RandSource{rng: rng}
}

// NewSource returns a RandSource seeded from operating system entropy.
// Every call yields an independent stream.
func NewSource() *RandSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read never fails on supported platforms.
		panic(err)
	}
	return NewRandSource(rand.New(rand.NewChaCha8(seed)))
}

// IntInRange returns a uniform integer in [min, max]. min > max panics.
func (s *RandSource) IntInRange(min, max int) int {
	if min == max {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// SecureSource draws every value straight from crypto/rand. It is markedly
// slower than RandSource and exists for users who do not trust a PRNG.
type SecureSource struct{}

// NewSecureSource creates a SecureSource.
func NewSecureSource() *SecureSource {
	return &SecureSource{}
}

// IntInRange returns a uniform integer in [min, max] using rejection
// sampling over 64-bit words so the result carries no modulo bias.
func (s *SecureSource) IntInRange(min, max int) int {
	if min == max {
		return min
	}
	span := uint64(max-min) + 1
	limit := ^uint64(0) - (^uint64(0) % span)
	var buf [8]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			panic(err)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return min + int(v%span)
		}
	}
}
