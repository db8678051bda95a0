package services

import (
	"sync/atomic"
	"testing"
)

func TestImmediateSchedulerRunsInline(t *testing.T) {
	var ran atomic.Bool
	ImmediateScheduler{}.Schedule(func() { ran.Store(true) })
	if !ran.Load() {
		t.Fatal("job did not run inline")
	}
}

func TestSerialQueuePreservesOrder(t *testing.T) {
	q := NewSerialQueue(16)
	defer q.Close()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Schedule(func() { got = append(got, i) })
	}
	q.Drain()

	if len(got) != 5 {
		t.Fatalf("ran %d jobs, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v", got)
		}
	}
}

func TestSerialQueueCloseIsIdempotent(t *testing.T) {
	q := NewSerialQueue(1)
	q.Close()
	q.Close()
}
