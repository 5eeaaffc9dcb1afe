package testutil

import (
	"fmt"
	"sync"
)

// SequenceSource replays scripted draws. Each call to IntN consumes the next
// value; running out of values, or a value outside [0, n), is a test bug and
// panics with the call number.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	calls  int
	bounds []int
}

// NewSequenceSource returns a source that yields values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN returns the next scripted value and records n.
func (s *SequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.values) {
		panic(fmt.Sprintf("testutil: SequenceSource exhausted after %d draws", s.calls))
	}
	v := s.values[s.calls]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: draw %d is %d, outside [0, %d)", s.calls, v, n))
	}
	s.calls++
	s.bounds = append(s.bounds, n)
	return v
}

// Bounds returns the n of every IntN call so far.
func (s *SequenceSource) Bounds() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.bounds...)
}

// Calls returns the number of draws made.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// ZeroSource always returns 0.
type ZeroSource struct{}

// IntN returns 0.
func (ZeroSource) IntN(int) int { return 0 }

// MaxSource always returns n-1.
type MaxSource struct{}

// IntN returns n-1.
func (MaxSource) IntN(n int) int { return n - 1 }
