package jikan

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// Cache is the read/write interface for the response cache. Implementations
// must be safe for concurrent use. Values are raw response bodies keyed by
// the fully qualified endpoint+query string.
type Cache interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, body json.RawMessage)
	Clear()
}

// DefaultCacheTTL bounds how long a cached upstream response stays valid.
const DefaultCacheTTL = 5 * time.Minute

type cacheItem struct {
	body      json.RawMessage
	expiresAt time.Time
}

// TTLCache is an in-memory Cache with per-entry expiry and optional NATS
// key-level invalidation. Expired entries are evicted lazily on lookup;
// there is no background sweep and no size bound.
type TTLCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	ttl   time.Duration
	now   func() time.Time
}

// NewTTLCache creates a TTLCache and wires up NATS invalidation when nc is
// non-nil. Publishing a key on subj drops that entry; an empty payload or
// "ALL" drops everything.
func NewTTLCache(ttl time.Duration, nc *nats.Conn, subj string) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &TTLCache{
		items: make(map[string]cacheItem),
		ttl:   ttl,
		now:   time.Now,
	}
	if nc != nil && subj != "" {
		_, _ = nc.Subscribe(subj, func(m *nats.Msg) {
			key := string(m.Data)
			if key == "" || strings.EqualFold(key, "ALL") {
				c.Clear()
				return
			}
			c.mu.Lock()
			delete(c.items, key)
			c.mu.Unlock()
		})
	}
	return c
}

func (c *TTLCache) Get(key string) (json.RawMessage, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !c.now().Before(it.expiresAt) {
		c.mu.Lock()
		if cur, ok2 := c.items[key]; ok2 && !c.now().Before(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return it.body, true
}

// Set unconditionally overwrites any previous entry for key.
func (c *TTLCache) Set(key string, body json.RawMessage) {
	c.mu.Lock()
	c.items[key] = cacheItem{body: body, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]cacheItem)
	c.mu.Unlock()
}
