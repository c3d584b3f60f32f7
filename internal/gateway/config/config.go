// Package config loads gateway-specific settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kamdevo/AniKam/internal/jikan"
	"github.com/kamdevo/AniKam/internal/netmon"
)

type Config struct {
	// Jikan client knobs.
	JikanBaseURL    string
	CacheTTL        time.Duration
	MinSpacing      time.Duration
	FetchRetries    int
	RequestTimeout  time.Duration

	// NATS is optional; empty URL disables the connection and with it
	// cross-instance cache invalidation.
	NATSURL           string
	InvalidateSubject string

	// Connectivity probe.
	ProbeURL      string
	ProbeInterval time.Duration
}

func Load() Config {
	return Config{
		JikanBaseURL:      envStr("JIKAN_BASE_URL", jikan.DefaultBaseURL),
		CacheTTL:          envDuration("JIKAN_CACHE_TTL", jikan.DefaultCacheTTL),
		MinSpacing:        envDuration("JIKAN_MIN_SPACING", jikan.DefaultMinSpacing),
		FetchRetries:      envInt("JIKAN_RETRIES", 0),
		RequestTimeout:    envDuration("JIKAN_TIMEOUT", 0),
		NATSURL:           envStr("NATS_URL", ""),
		InvalidateSubject: envStr("CACHE_INVALIDATE_SUBJECT", "anikam.cache.invalidate"),
		ProbeURL:          envStr("NETWORK_PROBE_URL", netmon.DefaultProbeURL),
		ProbeInterval:     envDuration("NETWORK_PROBE_INTERVAL", 0),
	}
}

func envStr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
