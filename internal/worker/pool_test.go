package worker

import (
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joakim/fischer960/internal/chess"
)

// noopProcessFunc returns a process function that echoes the item.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Input: item.Input}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i, Input: strconv.Itoa(i)})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(noopProcessFunc())
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers() = %d; want 1", pool.NumWorkers())
	}
	if cap(pool.workChan) != 10 {
		t.Errorf("buffer = %d; want 10", cap(pool.workChan))
	}

	ignored := NewPool(noopProcessFunc(), WithWorkers(0), WithBufferSize(-3))
	if ignored.NumWorkers() != 1 || cap(ignored.workChan) != 10 {
		t.Error("invalid options should be ignored")
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	release := make(chan struct{})
	pool := NewPool(func(item WorkItem) ProcessResult {
		<-release
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}, WithWorkers(1), WithBufferSize(5))
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	pool.Stop()
	close(release)

	go pool.Close()
	collectResults(pool)

	// The item already taken by the worker may finish; the rest are drained.
	if got := atomic.LoadInt32(&processed); got > 1 {
		t.Errorf("processed = %d after Stop; want at most 1", got)
	}
}

func TestPoolTrySubmit(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(2))

	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}
	if pool.TrySubmit(WorkItem{Index: 2}) {
		t.Error("TrySubmit on a full buffer should fail")
	}

	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	if pool.TrySubmit(WorkItem{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}
}

func TestRunPreservesOrder(t *testing.T) {
	const numItems = 200
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Index: i, Line: i + 1, Input: strconv.Itoa(i)}
	}

	results := Run(items, func(item WorkItem) ProcessResult {
		// Later items finish first.
		time.Sleep(time.Duration(numItems-item.Index) * time.Microsecond)
		return ProcessResult{Index: item.Index, Line: item.Line, Input: item.Input}
	}, WithWorkers(8), WithBufferSize(4))

	if len(results) != numItems {
		t.Fatalf("len(results) = %d; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i || r.Input != strconv.Itoa(i) || r.Line != i+1 {
			t.Fatalf("results[%d] = %+v", i, r)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	if got := Run(nil, noopProcessFunc(), WithWorkers(3)); len(got) != 0 {
		t.Errorf("Run(nil) = %v", got)
	}
}

func TestRunCarriesArrangements(t *testing.T) {
	want := chess.Arrangement{chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook}

	results := Run([]WorkItem{{Index: 0}}, func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, ID: 518, Arrangement: want}
	})
	if len(results) != 1 || results[0].ID != 518 || results[0].Arrangement != want {
		t.Errorf("Run() = %+v", results)
	}
}
