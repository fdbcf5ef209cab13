package cache

import "log/slog"

// Stats is a consistent view of the cache counters taken under one lock acquisition.
type Stats struct {
	Capacity int    `json:"capacity"`
	Size     int    `json:"size"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// HitRatio returns hits / (hits + misses), or 0 when no lookups were made.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Lookups returns the number of Get calls counted in s.
func (s Stats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// LogValue implements slog.LogValuer so Stats logs as a group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("capacity", s.Capacity),
		slog.Int("size", s.Size),
		slog.Uint64("hits", s.Hits),
		slog.Uint64("misses", s.Misses),
		slog.Float64("hit_ratio", s.HitRatio()),
	)
}

// Stats returns capacity, size and lookup counters read under one lock
// acquisition.
func (c *LRUCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Capacity: c.capacity,
		Size:     c.eviction.Len(),
		Hits:     c.hits,
		Misses:   c.misses,
	}
}
