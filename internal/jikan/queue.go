package jikan

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// DefaultMinSpacing is the minimum gap between upstream dispatches. Jikan
// enforces 3 req/s and 60 req/min; one request per second keeps us clear of
// both limits without reactive backoff doing all the work.
const DefaultMinSpacing = time.Second

type callResult struct {
	body json.RawMessage
	err  error
}

type queuedCall struct {
	run  func() (json.RawMessage, error)
	done chan callResult
}

// RequestQueue serializes all outbound upstream calls so that no two
// dispatches start closer together than the configured spacing, no matter
// how many callers enqueue concurrently. Calls run in strict FIFO order on
// a single drain goroutine; a failing call rejects its own caller and never
// stops the drain.
type RequestQueue struct {
	mu           sync.Mutex
	pending      []*queuedCall
	draining     bool
	lastDispatch time.Time
	spacing      time.Duration
}

// NewRequestQueue creates a queue with the given minimum spacing between
// dispatches. Non-positive spacing falls back to DefaultMinSpacing.
func NewRequestQueue(spacing time.Duration) *RequestQueue {
	if spacing <= 0 {
		spacing = DefaultMinSpacing
	}
	return &RequestQueue{spacing: spacing}
}

// Do enqueues fn and blocks until it has run or ctx is done. An expired ctx
// abandons the result only: the queued call still executes in its turn.
func (q *RequestQueue) Do(ctx context.Context, fn func() (json.RawMessage, error)) (json.RawMessage, error) {
	call := &queuedCall{run: fn, done: make(chan callResult, 1)}

	q.mu.Lock()
	q.pending = append(q.pending, call)
	start := !q.draining
	if start {
		q.draining = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}

	select {
	case r := <-call.done:
		return r.body, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len reports the current backlog, not counting any in-flight call.
func (q *RequestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *RequestQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		call := q.pending[0]
		q.pending = q.pending[1:]
		wait := q.spacing - time.Since(q.lastDispatch)
		q.mu.Unlock()

		if wait > 0 {
			time.Sleep(wait)
		}

		q.mu.Lock()
		q.lastDispatch = time.Now()
		q.mu.Unlock()

		body, err := call.run()
		call.done <- callResult{body: body, err: err}
	}
}
