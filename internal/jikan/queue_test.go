package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueue_SpacingBetweenDispatches(t *testing.T) {
	const spacing = 50 * time.Millisecond
	q := NewRequestQueue(spacing)

	var mu sync.Mutex
	var starts []time.Time
	fn := func() (json.RawMessage, error) {
		mu.Lock()
		starts = append(starts, time.Now())
		mu.Unlock()
		return json.RawMessage(`{}`), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := q.Do(context.Background(), fn); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(starts) != 3 {
		t.Fatalf("expected 3 dispatches, got %d", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		// Allow a little scheduler slack below the configured spacing.
		if gap < spacing-10*time.Millisecond {
			t.Fatalf("dispatch %d only %s after previous, want >= %s", i, gap, spacing)
		}
	}
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewRequestQueue(time.Millisecond)

	var mu sync.Mutex
	var order []int

	// Hold the drain on a first slow call so the rest queue up in a known
	// order before anything runs.
	started := make(chan struct{})
	gate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = q.Do(context.Background(), func() (json.RawMessage, error) {
			close(started)
			<-gate
			return nil, nil
		})
	}()
	<-started

	for i := 1; i <= 3; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = q.Do(context.Background(), func() (json.RawMessage, error) {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil, nil
			})
		}()
		// Give each enqueue time to land before the next.
		time.Sleep(5 * time.Millisecond)
	}

	close(gate)
	wg.Wait()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected FIFO order [1 2 3], got %v", order)
	}
}

func TestQueue_ErrorDoesNotStopDrain(t *testing.T) {
	q := NewRequestQueue(time.Millisecond)
	boom := errors.New("boom")

	if _, err := q.Do(context.Background(), func() (json.RawMessage, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	body, err := q.Do(context.Background(), func() (json.RawMessage, error) {
		return json.RawMessage(`"ok"`), nil
	})
	if err != nil {
		t.Fatalf("queue stopped after a failed call: %v", err)
	}
	if string(body) != `"ok"` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestQueue_ContextCancelAbandonsResult(t *testing.T) {
	q := NewRequestQueue(time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	ran := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
		close(release)
	}()

	_, err := q.Do(ctx, func() (json.RawMessage, error) {
		close(started)
		<-release
		close(ran)
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// The call itself still completes in its turn.
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("queued call never finished after caller gave up")
	}
}

func TestQueue_LenReportsBacklog(t *testing.T) {
	q := NewRequestQueue(time.Millisecond)
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}
