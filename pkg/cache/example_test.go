package cache_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

func ExampleLRUCache() {
	c, err := cache.New[string, string](3)
	if err != nil {
		panic(err)
	}

	c.Put("key1", "value1")
	c.Put("key2", "value2")
	c.Put("key3", "value3")

	v, ok := c.Get("key1")
	fmt.Println(v, ok)

	c.Put("key4", "value4") // evicts key2
	v, ok = c.Get("key2")
	fmt.Printf("%q %v\n", v, ok)

	fmt.Println(c.Keys())
	fmt.Printf("hits=%d misses=%d\n", c.Hits(), c.Misses())
	// Output:
	// value1 true
	// "" false
	// [key3 key1 key4]
	// hits=1 misses=1
}

func ExampleNew_invalidCapacity() {
	_, err := cache.New[string, int](0)
	fmt.Println(errors.Is(err, cache.ErrInvalidConfiguration))
	fmt.Println(err)
	// Output:
	// true
	// cache: invalid configuration: capacity must be positive, got 0
}
