package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kamdevo/AniKam/internal/netmon"
)

const (
	defaultRetries    = 3
	attemptTimeout    = 10 * time.Second
	maxResponseBytes  = 4 << 20
	maxRateLimitDelay = 15 * time.Second
)

// Fetcher executes one logical GET with a bounded attempt budget. It is the
// only place retries and backoff happen: 429 gets exponential backoff,
// connectivity failures a long linear backoff, other non-2xx a short linear
// backoff, and a malformed body is terminal immediately. Once the budget is
// spent it returns a single *Error carrying the user-facing message.
type Fetcher struct {
	HTTPClient *http.Client
	Retries    int
	Timeout    time.Duration
	Monitor    *netmon.Monitor
	Log        *zap.Logger

	sleep func(time.Duration)
}

func NewFetcher(mon *netmon.Monitor, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		HTTPClient: &http.Client{},
		Retries:    defaultRetries,
		Timeout:    attemptTimeout,
		Monitor:    mon,
		Log:        log,
		sleep:      time.Sleep,
	}
}

// Fetch GETs rawURL and returns the validated JSON body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (json.RawMessage, error) {
	retries := f.Retries
	if retries <= 0 {
		retries = defaultRetries
	}

	var lastErr *Error
	for attempt := 1; attempt <= retries; attempt++ {
		body, failure := f.attempt(ctx, rawURL)
		if failure == nil {
			return body, nil
		}
		if failure.Kind == KindParse {
			return nil, failure
		}
		lastErr = failure

		f.Log.Warn("upstream request failed",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt),
			zap.Int("retries", retries),
			zap.Int("status", failure.Status),
			zap.Error(failure.Err))

		switch failure.Kind {
		case KindRateLimited:
			// Rate limiting backs off even on the final attempt so a burst
			// of queued callers does not hammer a throttled upstream.
			f.sleep(rateLimitDelay(attempt))
		case KindNetwork, KindTimeout:
			if attempt < retries {
				f.sleep(3 * time.Second * time.Duration(attempt))
			}
		default:
			if attempt < retries {
				f.sleep(time.Second * time.Duration(attempt))
			}
		}
	}

	return nil, f.terminal(lastErr)
}

// attempt performs one GET. A nil *Error means success.
func (f *Fetcher) attempt(ctx context.Context, rawURL string) (json.RawMessage, *Error) {
	c, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(c, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "AniKam/1.0")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: classifyTransport(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &Error{Kind: KindRateLimited, Status: resp.StatusCode, Message: msgLimited}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("JIKAN API Error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Err:     fmt.Errorf("jikan: status %d body=%q", resp.StatusCode, string(b)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: classifyTransport(err), Err: err}
	}
	if !json.Valid(body) {
		return nil, &Error{Kind: KindParse, Message: "Received a malformed response from the anime database.", Err: errors.New("jikan: response body is not valid JSON")}
	}
	return body, nil
}

// terminal translates the last attempt's failure into the single error the
// caller sees. Connectivity failures get a human message (offline-aware via
// the monitor); everything else keeps its own message.
func (f *Fetcher) terminal(last *Error) error {
	if last == nil {
		return &Error{Kind: KindUnknown, Message: msgNetwork}
	}
	if last.Kind == KindNetwork || last.Kind == KindTimeout {
		if f.Monitor != nil && !f.Monitor.Status().IsOnline {
			last.Message = msgOffline
		} else {
			last.Message = msgNetwork
		}
	}
	return last
}

func rateLimitDelay(attempt int) time.Duration {
	d := 2 * time.Second << attempt // 2s * 2^attempt
	return min(d, maxRateLimitDelay)
}

func classifyTransport(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
