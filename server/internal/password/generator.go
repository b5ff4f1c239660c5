package password

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// MinLength is the shortest password Generate emits. Anything shorter could
// not hold one character of each class, so smaller requests are raised to it.
const MinLength = len(Classes)

// Rand is the source of uniform randomness used by Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle pseudo-randomly permutes n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// cryptoSource is a math/rand/v2 Source reading from crypto/rand.
// It holds no state, so a *rand.Rand built on it is safe for concurrent use.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:]) // never fails on supported platforms
	return binary.LittleEndian.Uint64(b[:])
}

// SecureRand returns a Rand backed by the operating system CSPRNG.
func SecureRand() Rand {
	return rand.New(cryptoSource{})
}

// Generator produces passwords containing every character class.
type Generator struct {
	rnd Rand
}

// NewGenerator returns a Generator drawing from rnd.
// A nil rnd selects SecureRand.
func NewGenerator(rnd Rand) *Generator {
	if rnd == nil {
		rnd = SecureRand()
	}
	return &Generator{rnd: rnd}
}

// Generate returns a random password of the given length, raised to
// MinLength if smaller. The result holds at least one lowercase, uppercase,
// digit and symbol character; the remaining characters are drawn uniformly
// from Alphabet and the whole sequence is shuffled.
func (g *Generator) Generate(length int) string {
	if length < MinLength {
		length = MinLength
	}

	buf := make([]byte, 0, length)
	for _, c := range Classes {
		buf = append(buf, g.pick(c.Chars()))
	}
	for len(buf) < length {
		buf = append(buf, g.pick(Alphabet))
	}

	g.rnd.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })

	return string(buf[:length])
}

// pick returns one byte of pool chosen uniformly. Pools are ASCII only.
func (g *Generator) pick(pool string) byte {
	return pool[g.rnd.IntN(len(pool))]
}
