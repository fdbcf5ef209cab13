package cachemetrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/cachemetrics"
)

func TestCollector(t *testing.T) {
	t.Parallel()
	c := cache.MustNew[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	collector := cachemetrics.NewCollector("demo", c)
	assert.Equal(t, 5, testutil.CollectAndCount(collector))

	expected := `
# HELP lrukit_cache_hits_total Number of lookups that found a resident entry since the last clear.
# TYPE lrukit_cache_hits_total counter
lrukit_cache_hits_total{cache="demo"} 3
# HELP lrukit_cache_misses_total Number of lookups that found no entry since the last clear.
# TYPE lrukit_cache_misses_total counter
lrukit_cache_misses_total{cache="demo"} 1
# HELP lrukit_cache_entries Number of resident entries.
# TYPE lrukit_cache_entries gauge
lrukit_cache_entries{cache="demo"} 2
# HELP lrukit_cache_capacity Maximum number of resident entries.
# TYPE lrukit_cache_capacity gauge
lrukit_cache_capacity{cache="demo"} 3
# HELP lrukit_cache_hit_ratio Hits divided by lookups since the last clear, 0 when there were none.
# TYPE lrukit_cache_hit_ratio gauge
lrukit_cache_hit_ratio{cache="demo"} 0.75
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestCollector_TracksClear(t *testing.T) {
	t.Parallel()
	c := cache.MustNew[string, int](2)
	c.Put("a", 1)
	c.Get("a")

	collector := cachemetrics.NewCollector("clear", c)
	c.Clear()

	expected := `
# HELP lrukit_cache_hits_total Number of lookups that found a resident entry since the last clear.
# TYPE lrukit_cache_hits_total counter
lrukit_cache_hits_total{cache="clear"} 0
# HELP lrukit_cache_entries Number of resident entries.
# TYPE lrukit_cache_entries gauge
lrukit_cache_entries{cache="clear"} 0
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"lrukit_cache_hits_total", "lrukit_cache_entries"))
}

func TestRegister(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewPedanticRegistry()
	c := cache.MustNew[int, int](1)

	collector, err := cachemetrics.Register(reg, "first", c)
	require.NoError(t, err)
	require.NotNil(t, collector)

	_, err = cachemetrics.Register(reg, "first", c)
	require.Error(t, err, "duplicate registration must fail")

	_, err = cachemetrics.Register(reg, "second", c)
	require.NoError(t, err, "distinct cache label is a distinct collector")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}
