package cache

// Entry is a key/value pair copied out of the cache.
type Entry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Snapshot returns a copy of the resident entries ordered from least to most
// recently used. Values are copied shallowly; the returned slice is never
// shared with the cache. Recency and counters are left untouched.
func (c *LRUCache[K, V]) Snapshot() []Entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry[K, V], 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		e := elem.Value.(*lruEntry[K, V])
		entries = append(entries, Entry[K, V]{Key: e.key, Value: e.value})
	}
	return entries
}

// Keys returns the resident keys ordered from least to most recently used.
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}
