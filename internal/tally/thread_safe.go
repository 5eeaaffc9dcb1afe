package tally

import "sync"

// ThreadSafeTally wraps Tally with mutex protection for concurrent access.
type ThreadSafeTally struct {
	tally *Tally
	mu    sync.RWMutex
}

// NewThreadSafe creates a new thread-safe tally.
func NewThreadSafe() *ThreadSafeTally {
	return &ThreadSafeTally{tally: New()}
}

// CheckAndAdd atomically checks whether id was seen and records it.
func (t *ThreadSafeTally) CheckAndAdd(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tally.CheckAndAdd(id)
}

// Count returns how many times id has been recorded.
func (t *ThreadSafeTally) Count(id int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.Count(id)
}

// Counts returns a snapshot of every counter.
func (t *ThreadSafeTally) Counts() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.Counts()
}

// Total returns the number of recorded IDs, repeats included.
func (t *ThreadSafeTally) Total() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.Total()
}

// DuplicateCount returns the number of repeats recorded.
func (t *ThreadSafeTally) DuplicateCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.DuplicateCount()
}

// UniqueCount returns the number of distinct IDs recorded.
func (t *ThreadSafeTally) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.UniqueCount()
}

// IsFull returns true once every position has been seen.
func (t *ThreadSafeTally) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.IsFull()
}
