package fischer

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"github.com/joakim/fischer960/internal/errors"
)

// Source produces uniform integers. IntN returns a value in [0, n) and may
// panic if n <= 0. *math/rand/v2.Rand satisfies Source.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from operating-system entropy. The zero value reads
// crypto/rand.Reader and is safe for concurrent use. If the reader fails,
// IntN panics with an error wrapping errors.ErrEntropy.
type CryptoSource struct {
	// Reader overrides the entropy reader; nil means crypto/rand.Reader.
	Reader io.Reader
}

// IntN returns a uniform integer in [0, n).
func (s CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("fischer: invalid argument to IntN")
	}
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("%w: %v", errors.ErrEntropy, err))
	}
	return int(v.Int64())
}

// FloatSource adapts a function returning uniform values in [0, 1) to a Source.
type FloatSource func() float64

// IntN returns floor(f() * n), clamped to [0, n).
func (f FloatSource) IntN(n int) int {
	if n <= 0 {
		panic("fischer: invalid argument to IntN")
	}
	v := int(f() * float64(n))
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// NewSeededSource returns a deterministic PCG stream. It is not safe for
// concurrent use; wrap it with NewLockedSource when sharing.
func NewSeededSource(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, 0))
}

// LockedSource serialises draws from a Source so that concurrent callers
// each get their own value.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src with a mutex.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// IntN returns the next value of the wrapped source.
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}

// DefaultSource is used when a nil Source is passed.
var DefaultSource Source = CryptoSource{}

func sourceOrDefault(src Source) Source {
	if src == nil {
		return DefaultSource
	}
	return src
}

// draw asks src for a value in [0, n) and checks that it kept its contract.
func draw(src Source, n int) int {
	v := src.IntN(n)
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fischer: source returned %d for IntN(%d)", v, n))
	}
	return v
}
