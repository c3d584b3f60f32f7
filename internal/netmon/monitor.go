// Package netmon tracks upstream connectivity with a periodic liveness
// probe. A Monitor is an explicitly constructed service: build one at
// startup, run its probe loop, and hand it by reference to whoever needs
// connectivity state.
package netmon

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Status is a point-in-time connectivity readout.
type Status struct {
	IsOnline         bool      `json:"is_online"`
	IsSlowConnection bool      `json:"is_slow_connection"`
	LastCheck        time.Time `json:"last_check"`
}

// DefaultProbeURL is a tiny external endpoint used to tell "we are
// offline" apart from "the upstream API is down".
const DefaultProbeURL = "https://httpbin.org/bytes/1"

const (
	defaultInterval = 30 * time.Second
	probeTimeout    = 5 * time.Second
	slowThreshold   = 3 * time.Second
)

type Options struct {
	ProbeURL   string
	Interval   time.Duration // default 30s
	HTTPClient *http.Client
}

// Monitor polls a probe URL and fans status changes out to subscribers.
// Safe for concurrent use.
type Monitor struct {
	mu      sync.Mutex
	status  Status
	subs    map[int]func(Status)
	nextSub int

	probeURL string
	interval time.Duration
	client   *http.Client
}

// New creates a Monitor that assumes it is online until a probe says
// otherwise. Call Run to start the probe loop.
func New(opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: probeTimeout}
	}
	return &Monitor{
		status:   Status{IsOnline: true, LastCheck: time.Now()},
		subs:     make(map[int]func(Status)),
		probeURL: opts.ProbeURL,
		interval: opts.Interval,
		client:   opts.HTTPClient,
	}
}

// Run probes on a fixed interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Probe(ctx)
		}
	}
}

// Probe performs a single liveness check against the probe URL.
// A response slower than the slow threshold marks the connection slow.
func (m *Monitor) Probe(ctx context.Context) {
	if m.probeURL == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(c, http.MethodHead, m.probeURL, nil)
	if err != nil {
		m.update(Status{IsOnline: false, LastCheck: time.Now()})
		return
	}
	resp, err := m.client.Do(req)
	if err != nil {
		m.update(Status{IsOnline: false, LastCheck: time.Now()})
		return
	}
	_ = resp.Body.Close()

	elapsed := time.Since(start)
	m.update(Status{
		IsOnline:         resp.StatusCode < http.StatusInternalServerError,
		IsSlowConnection: elapsed > slowThreshold,
		LastCheck:        time.Now(),
	})
}

// ProbeAPI reports whether a single endpoint answers within the probe timeout.
func (m *Monitor) ProbeAPI(ctx context.Context, rawURL string) bool {
	c, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(c, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// Status returns a copy of the current connectivity state.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Subscribe registers a listener for status updates and returns its
// unsubscribe func. Listeners run synchronously on the probing goroutine.
func (m *Monitor) Subscribe(fn func(Status)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Monitor) update(s Status) {
	m.mu.Lock()
	m.status = s
	listeners := make([]func(Status), 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
