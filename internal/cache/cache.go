// Package cache provides the bounded memo that sits between the navigation
// layer and the calendar arithmetic. It is strictly an optimization: a
// disabled memo computes every call and produces identical results.
package cache

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tartampluch/go-shamsi/internal/config"
)

// Key identifies one memoized computation: the operation tag plus the date
// fields and an optional integer parameter (step size, direction).
type Key struct {
	Op    string
	Year  int
	Month int
	Day   int
	Arg   int
}

// Memo is a least-recently-used memo over calendar computations. Access is
// expected from a single event loop; the hit counters are not synchronized.
type Memo struct {
	entries *lru.Cache[Key, any]
	hits    uint64
	misses  uint64
}

// New builds a memo bounded to capacity entries. A capacity of zero or less
// disables storage entirely and every Get falls through to compute.
func New(capacity int) *Memo {
	if capacity <= 0 {
		slog.Debug(config.MsgCacheBypass,
			config.LogKeyComponent, config.CompCache,
			config.LogKeyCapacity, capacity)
		return &Memo{}
	}

	entries, err := lru.New[Key, any](capacity)
	if err != nil {
		// lru.New only rejects non-positive sizes, which are handled above.
		slog.Warn(config.MsgCacheBypass,
			config.LogKeyComponent, config.CompCache,
			config.LogKeyError, err)
		return &Memo{}
	}

	slog.Debug(config.MsgCacheReady,
		config.LogKeyComponent, config.CompCache,
		config.LogKeyCapacity, capacity)
	return &Memo{entries: entries}
}

// Get returns the cached value for key, computing and storing it on a miss.
// A hit marks the entry most recently used; insertion beyond capacity evicts
// the least recently used entry.
func (m *Memo) Get(key Key, compute func() any) any {
	if m.entries == nil {
		return compute()
	}

	if value, found := m.entries.Get(key); found {
		m.hits++
		return value
	}

	m.misses++
	value := compute()
	m.entries.Add(key, value)
	return value
}

// Enabled reports whether the memo actually stores entries.
func (m *Memo) Enabled() bool {
	return m.entries != nil
}

// Len returns the number of stored entries.
func (m *Memo) Len() int {
	if m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Purge drops every entry. Correctness never depends on cache contents, so
// purging mid-session is always safe.
func (m *Memo) Purge() {
	if m.entries == nil {
		return
	}
	slog.Debug(config.MsgCachePurged,
		config.LogKeyComponent, config.CompCache,
		config.LogKeyHits, m.hits,
		config.LogKeyMisses, m.misses)
	m.entries.Purge()
}

// Stats returns the hit and miss counts since construction.
func (m *Memo) Stats() (hits, misses uint64) {
	return m.hits, m.misses
}
