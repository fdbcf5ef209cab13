// Package cache provides a generic, fixed-capacity, thread-safe LRU (Least
// Recently Used) cache with hit/miss accounting.
//
// The cache evicts the least recently used entry when a new key would push it
// over capacity, so memory stays bounded no matter how many distinct keys the
// caller throws at it.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Every method serialised by one mutex, giving linearizable behaviour
//   - Exactly one eviction per overflowing insert
//   - Hit and miss counters for Get, reset by Clear
//   - Ordered, independent snapshots (least to most recently used)
//   - O(1) Get, Put and Remove
//
// # Usage
//
//	c, err := cache.New[string, string](3)
//	if err != nil {
//		// errors.Is(err, cache.ErrInvalidConfiguration)
//	}
//
//	c.Put("key1", "value1")
//	c.Put("key2", "value2")
//	c.Put("key3", "value3")
//
//	v, ok := c.Get("key1") // "value1", true; order is now key2, key3, key1
//	c.Put("key4", "value4") // evicts key2
//	_, ok = c.Get("key2")   // miss
//
//	fmt.Println(c.Hits(), c.Misses()) // 1 1
//
// # Absent values
//
// Get, Peek and Remove use the comma-ok form. The zero value of V, including a
// nil pointer or interface, is a valid stored value and is reported as a hit;
// only the boolean says whether the key was resident.
//
// # Recency
//
// Items are considered "recently used" when they are:
//   - Retrieved with Get()
//   - Added or updated with Put()
//
// Peek, Contains, Keys, Snapshot, Len and Stats never change recency or counters.
//
// # Thread Safety
//
// There is no read/write lock split. A hit moves the entry to the front of the
// recency list, so every accessor is a writer. The cache never calls back into
// caller code while holding its lock.
//
// # Snapshots
//
// Snapshot copies the resident entries into a new slice. Mutating the slice
// does not affect the cache and later cache mutations do not affect the slice.
// Values themselves are copied shallowly; pointer values still point at the
// caller's data.
package cache
