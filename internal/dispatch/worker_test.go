package dispatch

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestJobsRunInOrder(t *testing.T) {
	w := NewWorker(16, zerolog.Nop())

	var mu sync.Mutex
	var order []int
	for i := 0; i < 8; i++ {
		i := i
		err := w.Put(func() (any, error) {
			return i, nil
		}, func(result any, err error) {
			mu.Lock()
			order = append(order, result.(int))
			mu.Unlock()
		})
		if err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}
	w.Stop()

	if len(order) != 8 {
		t.Fatalf("ran %d jobs, want 8", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v", order)
		}
	}
}

func TestCallbackSeesJobError(t *testing.T) {
	w := NewWorker(1, zerolog.Nop())
	boom := errors.New("boom")

	var got error
	if err := w.Put(func() (any, error) {
		return nil, boom
	}, func(result any, err error) {
		got = err
	}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	w.Stop()

	if !errors.Is(got, boom) {
		t.Fatalf("callback error = %v, want boom", got)
	}
}

func TestStopDrainsPending(t *testing.T) {
	w := NewWorker(4, zerolog.Nop())

	gate := make(chan struct{})
	var ran int
	cb := func(any, error) { ran++ }

	if err := w.Put(func() (any, error) { <-gate; return nil, nil }, cb); err != nil {
		t.Fatalf("Put: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := w.Put(func() (any, error) { return nil, nil }, cb); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	close(gate)
	w.Stop()

	if ran != 4 {
		t.Fatalf("ran %d jobs, want 4", ran)
	}
	if err := w.Put(func() (any, error) { return nil, nil }, nil); !errors.Is(err, ErrStopped) {
		t.Fatalf("Put after Stop: %v, want ErrStopped", err)
	}
}

func TestPutFullQueue(t *testing.T) {
	w := NewWorker(1, zerolog.Nop())
	defer w.Stop()

	gate := make(chan struct{})
	defer close(gate)

	// First job occupies the worker; second fills the queue slot.
	if err := w.Put(func() (any, error) { <-gate; return nil, nil }, nil); err != nil {
		t.Fatalf("Put: %v", err)
	}
	err := w.Put(func() (any, error) { return nil, nil }, nil)
	for err == nil {
		err = w.Put(func() (any, error) { return nil, nil }, nil)
	}
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Put on full queue: %v, want ErrQueueFull", err)
	}
}
