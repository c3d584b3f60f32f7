package jikan

import (
	"errors"
	"fmt"
)

// ErrorKind is a closed set of failure classes. Downstream policy (retry
// spacing, fallback selection, HTTP status mapping) switches on the kind
// instead of inspecting message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindRateLimited is an upstream HTTP 429.
	KindRateLimited
	// KindNetwork covers connection refused/reset and DNS failures.
	KindNetwork
	// KindTimeout is a per-attempt deadline expiry or abort.
	KindTimeout
	// KindHTTP is any other non-2xx upstream status.
	KindHTTP
	// KindParse is a malformed or unexpectedly shaped response body.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	}
	return "unknown"
}

// Error is the terminal error surfaced by the fetcher once its attempt
// budget is spent. Message is the user-facing translation; Err keeps the
// underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Status  int // set for KindRateLimited and KindHTTP
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("jikan: request failed (kind=%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNetwork reports whether err is a connectivity-class failure
// (connection trouble or a timed-out attempt).
func IsNetwork(err error) bool {
	k := KindOf(err)
	return k == KindNetwork || k == KindTimeout
}

// IsRateLimited reports whether err is an upstream 429.
func IsRateLimited(err error) bool {
	return KindOf(err) == KindRateLimited
}

// User-facing messages for terminal errors. Non-network failures keep
// their original message.
const (
	msgOffline = "You appear to be offline. Please check your internet connection."
	msgNetwork = "Unable to connect to the anime database. This might be due to a slow connection or server issues. Please try again."
	msgLimited = "The anime database is receiving too many requests. Please try again in a moment."
)
