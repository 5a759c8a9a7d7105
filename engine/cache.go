// Package engine drives animations, timelines, stagger computation, and
// batched dispatch. All motion is pull-based: the caller supplies elapsed-time
// deltas; nothing here spawns background work or blocks.
package engine

import (
	"math"
	"strconv"
)

// DefaultCacheSize bounds the interpolation cache when no size is configured
const DefaultCacheSize = 1024

// cacheQuantum quantizes progress to 3 decimal places for cache keys
// Coarser keys raise hit rate at the cost of sub-millisecond value drift
const cacheQuantum = 1000

// cacheEntry is an intrusive node of the LRU list
type cacheEntry struct {
	key        string
	value      float64
	prev, next *cacheEntry
}

// InterpolationCache memoizes (easing, from, to, progress) lookups with LRU
// eviction. It is exclusively owned by one Manager and provides no internal
// locking; concurrent ticking contexts must serialize access externally
type InterpolationCache struct {
	entries map[string]*cacheEntry
	head    *cacheEntry // most recently used
	tail    *cacheEntry // eviction candidate
	maxSize int
	hits    uint64
	misses  uint64
}

// CacheStats is a snapshot of cache accounting
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	HitRate float64
	Size    int
	MaxSize int
}

// NewInterpolationCache creates a cache holding at most maxSize entries
// Non-positive maxSize selects DefaultCacheSize
func NewInterpolationCache(maxSize int) *InterpolationCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &InterpolationCache{
		entries: make(map[string]*cacheEntry, maxSize),
		maxSize: maxSize,
	}
}

// GetOrCompute returns the cached value for key, computing and inserting on
// miss. Eviction of the least-recently-used entry is O(1)
func (c *InterpolationCache) GetOrCompute(key string, compute func() float64) float64 {
	if e, ok := c.entries[key]; ok {
		c.hits++
		c.touch(e)
		return e.value
	}

	c.misses++
	e := &cacheEntry{key: key, value: compute()}
	c.entries[key] = e
	c.pushFront(e)

	if len(c.entries) > c.maxSize {
		c.evict()
	}
	return e.value
}

// Stats returns current hit/miss accounting
func (c *InterpolationCache) Stats() CacheStats {
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: rate,
		Size:    len(c.entries),
		MaxSize: c.maxSize,
	}
}

// Clear drops all entries but keeps accounting
func (c *InterpolationCache) Clear() {
	c.entries = make(map[string]*cacheEntry, c.maxSize)
	c.head, c.tail = nil, nil
}

// touch moves an entry to the front of the recency list
func (c *InterpolationCache) touch(e *cacheEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *InterpolationCache) pushFront(e *cacheEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *InterpolationCache) unlink(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	if c.head == e {
		c.head = e.next
	}
	if c.tail == e {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *InterpolationCache) evict() {
	victim := c.tail
	if victim == nil {
		return
	}
	c.unlink(victim)
	delete(c.entries, victim.key)
}

// Quantize snaps progress to the cache key granularity
func Quantize(progress float64) float64 {
	return math.Round(progress*cacheQuantum) / cacheQuantum
}

// interpKey builds the composite cache key without fmt allocations
func interpKey(easingName string, from, to, progress float64) string {
	buf := make([]byte, 0, len(easingName)+48)
	buf = append(buf, easingName...)
	buf = append(buf, '|')
	buf = strconv.AppendFloat(buf, from, 'g', -1, 64)
	buf = append(buf, '|')
	buf = strconv.AppendFloat(buf, to, 'g', -1, 64)
	buf = append(buf, '|')
	buf = strconv.AppendFloat(buf, Quantize(progress), 'g', -1, 64)
	return string(buf)
}
