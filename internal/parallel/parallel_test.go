package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForRangeSequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var calls int
	ForRange(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("Expected single range [0,10), got [%d,%d)", start, end)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestForRangeCoversAll(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	hits := make([]int32, n)
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("Index %d visited %d times, expected 1", i, h)
		}
	}
}

func TestForRangeEmpty(t *testing.T) {
	ForRange(0, func(start, end int) {
		t.Error("Callback should not run for n=0")
	}, DefaultConfig())
}
