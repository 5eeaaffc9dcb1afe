// Package tally counts how often each starting position has been seen.
package tally

import "github.com/joakim/fischer960/internal/fischer"

// Tally keeps one counter per position ID.
type Tally struct {
	counts         [fischer.NumPositions]int
	uniqueCount    int
	duplicateCount int
}

// New creates an empty tally.
func New() *Tally {
	return &Tally{}
}

// CheckAndAdd records id and returns true if it had been seen before.
// IDs outside [0, 959] are ignored and reported as not seen.
func (t *Tally) CheckAndAdd(id int) bool {
	if !fischer.IsValidID(id) {
		return false
	}
	t.counts[id]++
	if t.counts[id] > 1 {
		t.duplicateCount++
		return true
	}
	t.uniqueCount++
	return false
}

// Count returns how many times id has been recorded.
func (t *Tally) Count(id int) int {
	if !fischer.IsValidID(id) {
		return 0
	}
	return t.counts[id]
}

// Counts returns a copy of every counter, indexed by ID.
func (t *Tally) Counts() []int {
	out := make([]int, fischer.NumPositions)
	copy(out, t.counts[:])
	return out
}

// Total returns the number of recorded IDs, repeats included.
func (t *Tally) Total() int {
	return t.uniqueCount + t.duplicateCount
}

// DuplicateCount returns the number of repeats recorded.
func (t *Tally) DuplicateCount() int {
	return t.duplicateCount
}

// UniqueCount returns the number of distinct IDs recorded.
func (t *Tally) UniqueCount() int {
	return t.uniqueCount
}

// IsFull returns true once every position has been seen.
func (t *Tally) IsFull() bool {
	return t.uniqueCount == fischer.NumPositions
}

// Reset clears all counters.
func (t *Tally) Reset() {
	*t = Tally{}
}
