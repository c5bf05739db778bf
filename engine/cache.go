// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// cacheKey identifies one derived structure of one relation.
type cacheKey struct {
	kind     string
	relation int
	param    int
}

type cacheEntry struct {
	version uint64
	value   interface{}
}

// CacheStats is a point-in-time view of the version cache.
type CacheStats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
	// Rejoins counts waves restarted after another caller's cancellation.
	Rejoins int64
}

// versionCache stores one entry per key, tagged with the graph version it
// was computed from.
//
// Thread Safety:
//
//	Safe for concurrent use. mu guards entries; misses for the same key and
//	version are collapsed by flight.
type versionCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	flight  singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	rejoins   atomic.Int64
}

func newVersionCache() *versionCache {
	return &versionCache{entries: make(map[cacheKey]cacheEntry)}
}

// lookup returns the entry for k if it was computed at version.
func (c *versionCache) lookup(k cacheKey, version uint64) (interface{}, bool) {
	c.mu.Lock()
	e, ok := c.entries[k]
	c.mu.Unlock()
	if !ok || e.version != version {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)

	return e.value, true
}

// do returns the value for (k, version), computing it at most once per
// concurrent wave of callers. compute reports the version its result
// actually belongs to, which may be newer than the requested one.
//
// A wave runs under the context of the caller that started it. When that
// caller is cancelled the others receive its context error; a caller whose
// own ctx is still live then starts a new wave instead of returning it.
func (c *versionCache) do(ctx context.Context, k cacheKey, version uint64,
	compute func() (interface{}, uint64, error),
) (interface{}, bool, error) {
	flightKey := fmt.Sprintf("%s/%d/%d@%d", k.kind, k.relation, k.param, version)
	for {
		if v, ok := c.lookup(k, version); ok {
			return v, true, nil
		}
		v, err, _ := c.flight.Do(flightKey, func() (interface{}, error) {
			value, ver, err := compute()
			if err != nil {
				return nil, err
			}
			c.store(k, ver, value)

			return value, nil
		})
		if err != nil && ctx.Err() == nil && isContextErr(err) {
			c.rejoins.Add(1)
			continue
		}

		return v, false, err
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// store replaces the entry for k unless the cached one is newer.
func (c *versionCache) store(k cacheKey, version uint64, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[k]; ok && old.version > version {
		return
	}
	c.entries[k] = cacheEntry{version: version, value: value}
}

// evictBefore drops every entry computed before version and returns how
// many were dropped.
func (c *versionCache) evictBefore(version uint64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if e.version < version {
			delete(c.entries, k)
			n++
		}
	}
	c.evictions.Add(int64(n))

	return n
}

func (c *versionCache) stats() CacheStats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()

	return CacheStats{
		Entries:   n,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Rejoins:   c.rejoins.Load(),
	}
}
