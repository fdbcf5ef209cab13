package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/logger"
	"github.com/dmitrymomot/lrukit/pkg/person"
)

// scenarioResult is what runScenario observed, kept for assertions in tests.
type scenarioResult struct {
	FirstGet string
	FirstOK  bool
	SecondOK bool
	Hits     uint64
	Misses   uint64
	Size     int
	Resident []string
	Evicted  string
	Recency  []string
}

// runPerson shows the immutable value object.
func runPerson(ctx context.Context, log *slog.Logger) person.Person {
	hobbies := []string{"reading", "hiking", "coding"}
	p := person.New("John Doe", 30, hobbies)
	hobbies[0] = "gaming" // does not leak into p

	log.InfoContext(ctx, "person created",
		slog.String("name", p.Name()),
		slog.Int("age", p.Age()),
		slog.Any("hobbies", p.Hobbies()),
	)
	return p
}

// runScenario fills the cache, refreshes key1, forces one eviction and reports counters.
func runScenario(ctx context.Context, log *slog.Logger, c *cache.LRUCache[string, string]) scenarioResult {
	var res scenarioResult

	for i := 1; i <= c.Cap(); i++ {
		c.Put(fmt.Sprintf("key%d", i), fmt.Sprintf("value%d", i))
	}

	res.FirstGet, res.FirstOK = c.Get("key1")
	log.InfoContext(ctx, "lookup", logger.Key("key1"), slog.String("value", res.FirstGet), slog.Bool("hit", res.FirstOK))
	res.Recency = c.Keys()

	// The least recently used key is the one the next insert will evict.
	if len(res.Recency) > 0 {
		res.Evicted = res.Recency[0]
	}
	next := fmt.Sprintf("key%d", c.Cap()+1)
	c.Put(next, fmt.Sprintf("value%d", c.Cap()+1))

	_, res.SecondOK = c.Get(res.Evicted)
	log.InfoContext(ctx, "lookup after eviction", logger.Key(res.Evicted), slog.Bool("hit", res.SecondOK))

	stats := c.Stats()
	res.Hits, res.Misses, res.Size = stats.Hits, stats.Misses, stats.Size
	res.Resident = c.Keys()
	log.InfoContext(ctx, "scenario finished", slog.Any("stats", stats), slog.Any("resident", res.Resident))
	return res
}

// runPersonCache stores Person values and fails unless p comes back
// structurally equal.
func runPersonCache(ctx context.Context, log *slog.Logger, p person.Person) error {
	c, err := cache.New[string, person.Person](2)
	if err != nil {
		return err
	}
	c.Put(p.Name(), p)
	c.Put("jane", person.New("Jane Roe", 28, nil))

	got, ok := c.Get(p.Name())
	if !ok {
		return fmt.Errorf("person round trip: %q not found", p.Name())
	}
	if !got.Equal(p) {
		return fmt.Errorf("person round trip: %q changed: got %s, want %s", p.Name(), got, p)
	}
	log.InfoContext(ctx, "person round trip", logger.Key(p.Name()), slog.Bool("equal", true))
	return nil
}

type loadResult struct {
	Gets  uint64
	Puts  uint64
	Stats cache.Stats
}

// runLoad hammers c from workers goroutines and verifies every Get was counted.
func runLoad(ctx context.Context, log *slog.Logger, c *cache.LRUCache[string, string], workers, ops int) (loadResult, error) {
	var gets, puts atomic.Uint64
	keySpace := max(2*c.Cap(), 1)
	start := time.Now()

	c.Clear()

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(uint64(w), uint64(ops)))
			for i := range ops {
				if i%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				key := strconv.Itoa(rnd.IntN(keySpace))
				if rnd.IntN(4) == 0 {
					c.Put(key, "w"+strconv.Itoa(w))
					puts.Add(1)
					continue
				}
				c.Get(key)
				gets.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return loadResult{}, err
	}

	res := loadResult{Gets: gets.Load(), Puts: puts.Load(), Stats: c.Stats()}
	if res.Stats.Lookups() != res.Gets {
		return res, fmt.Errorf("lookup accounting mismatch: counted %d, issued %d", res.Stats.Lookups(), res.Gets)
	}
	if res.Stats.Size > res.Stats.Capacity {
		return res, fmt.Errorf("capacity exceeded: size %d > capacity %d", res.Stats.Size, res.Stats.Capacity)
	}

	log.InfoContext(ctx, "concurrent load finished",
		slog.Int("workers", workers),
		slog.Uint64("gets", res.Gets),
		slog.Uint64("puts", res.Puts),
		logger.Duration(time.Since(start)),
		slog.Any("stats", res.Stats),
	)
	return res, nil
}
