package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards. Must be a power of 2 for fast
	// modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// EvictFunc is called with every entry that leaves the cache through
// eviction, Delete or Clear. It runs without any shard lock held.
type EvictFunc[V any] func(key string, value V)

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups that hit, or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// StyleCache maps style keys to render state with per-shard LRU eviction.
type StyleCache[V any] struct {
	shards   [ShardCount]*styleShard[V]
	capacity int // per shard
	onEvict  EvictFunc[V]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type styleShard[V any] struct {
	mu      sync.Mutex
	entries map[string]*lruNode[V]
	lru     lruList[V]
}

// New creates a StyleCache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used. onEvict may be nil.
func New[V any](capacity int, onEvict EvictFunc[V]) *StyleCache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &StyleCache[V]{
		capacity: capacity,
		onEvict:  onEvict,
	}
	for i := range c.shards {
		c.shards[i] = &styleShard[V]{entries: make(map[string]*lruNode[V])}
	}
	return c
}

// shardFor selects the shard by FNV-1a hash of the key.
func (c *StyleCache[V]) shardFor(key string) *styleShard[V] {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	return c.shards[h.Sum64()&shardMask]
}

// Get returns the value cached for key and marks it recently used.
func (c *StyleCache[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	node, ok := s.entries[key]
	if ok {
		s.lru.MoveToFront(node)
	}
	s.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return node.value, true
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. Errors from create are returned and nothing is cached.
//
// create runs with the shard lock held so concurrent callers for the same
// key create once. Keep it short.
func (c *StyleCache[V]) GetOrCreate(key string, create func() (V, error)) (V, error) {
	s := c.shardFor(key)
	s.mu.Lock()

	if node, ok := s.entries[key]; ok {
		s.lru.MoveToFront(node)
		s.mu.Unlock()
		c.hits.Add(1)
		return node.value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		s.mu.Unlock()
		var zero V
		return zero, err
	}

	evicted := c.insertLocked(s, key, value)
	s.mu.Unlock()

	c.release(evicted)
	return value, nil
}

// Set stores value under key, replacing any previous value. A replaced
// value is passed to the evict callback.
func (c *StyleCache[V]) Set(key string, value V) {
	s := c.shardFor(key)
	s.mu.Lock()

	var evicted []*lruNode[V]
	if node, ok := s.entries[key]; ok {
		evicted = append(evicted, &lruNode[V]{key: key, value: node.value})
		node.value = value
		s.lru.MoveToFront(node)
	} else {
		evicted = c.insertLocked(s, key, value)
	}
	s.mu.Unlock()

	c.release(evicted)
}

// insertLocked adds a new entry, evicting the oldest entries of the shard
// beyond capacity. Returns the evicted nodes.
func (c *StyleCache[V]) insertLocked(s *styleShard[V], key string, value V) []*lruNode[V] {
	var evicted []*lruNode[V]
	for s.lru.Len() >= c.capacity {
		oldest := s.lru.RemoveOldest()
		if oldest == nil {
			break
		}
		delete(s.entries, oldest.key)
		c.evictions.Add(1)
		evicted = append(evicted, oldest)
	}
	s.entries[key] = s.lru.PushFront(key, value)
	return evicted
}

// Delete removes key from the cache. Returns true if it was present.
func (c *StyleCache[V]) Delete(key string) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	node, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
		s.lru.Remove(node)
	}
	s.mu.Unlock()

	if ok {
		c.release([]*lruNode[V]{node})
	}
	return ok
}

// Clear removes all entries.
func (c *StyleCache[V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		var removed []*lruNode[V]
		for node := s.lru.RemoveOldest(); node != nil; node = s.lru.RemoveOldest() {
			removed = append(removed, node)
		}
		s.entries = make(map[string]*lruNode[V])
		s.mu.Unlock()

		c.release(removed)
	}
}

// Len returns the number of cached entries.
func (c *StyleCache[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += s.lru.Len()
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the per-shard capacity.
func (c *StyleCache[V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache statistics.
func (c *StyleCache[V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *StyleCache[V]) release(nodes []*lruNode[V]) {
	if c.onEvict == nil {
		return
	}
	for _, n := range nodes {
		c.onEvict(n.key, n.value)
	}
}
