// Package dispatch serializes command traffic: one worker goroutine per
// connection executes queued jobs strictly in order, so a shared link never
// sees interleaved request/reply pairs.
package dispatch

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrStopped   = errors.New("dispatch: worker is stopped")
	ErrQueueFull = errors.New("dispatch: queue is full")
)

// Job performs one exchange and returns its decoded result.
type Job func() (any, error)

// Callback receives a finished job's result. Callbacks run on the worker
// goroutine, one at a time.
type Callback func(result any, err error)

type task struct {
	run Job
	cb  Callback
}

// Worker owns a FIFO of pending jobs and a single goroutine draining it.
type Worker struct {
	mu      sync.Mutex
	stopped bool

	jobs chan task
	done chan struct{}
	log  zerolog.Logger
}

// NewWorker starts a worker whose queue holds up to depth pending jobs.
func NewWorker(depth int, logger zerolog.Logger) *Worker {
	w := &Worker{
		jobs: make(chan task, depth),
		done: make(chan struct{}),
		log:  logger.With().Str("component", "dispatch").Logger(),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer close(w.done)
	for t := range w.jobs {
		start := time.Now()
		result, err := t.run()
		w.log.Debug().Dur("took", time.Since(start)).Err(err).Msg("job finished")
		if t.cb != nil {
			t.cb(result, err)
		}
	}
}

// Put queues a job. cb may be nil for fire-and-forget jobs. Put never
// blocks: a full queue returns ErrQueueFull.
func (w *Worker) Put(run Job, cb Callback) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	select {
	case w.jobs <- task{run: run, cb: cb}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new jobs, drains the ones already queued, and returns once
// the worker goroutine has exited. Idempotent.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}
