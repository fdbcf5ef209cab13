package cache_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

func TestStats_HitRatio(t *testing.T) {
	t.Parallel()
	assert.Zero(t, cache.Stats{}.HitRatio())
	assert.Equal(t, 0.75, cache.Stats{Hits: 3, Misses: 1}.HitRatio())
	assert.Equal(t, uint64(4), cache.Stats{Hits: 3, Misses: 1}.Lookups())
}

func TestStats_LogValue(t *testing.T) {
	t.Parallel()
	v := cache.Stats{Capacity: 3, Size: 2, Hits: 3, Misses: 1}.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	got := map[string]any{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.Any()
	}
	assert.Equal(t, map[string]any{
		"capacity":  int64(3),
		"size":      int64(2),
		"hits":      uint64(3),
		"misses":    uint64(1),
		"hit_ratio": 0.75,
	}, got)
}

func TestStats_LoggedAsGroup(t *testing.T) {
	t.Parallel()
	c := cache.MustNew[string, int](2)
	c.Put("a", 1)
	c.Get("a")
	c.Get("b")

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("stats", slog.Any("stats", c.Stats()))

	var rec struct {
		Stats map[string]any `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, map[string]any{
		"capacity":  float64(2),
		"size":      float64(1),
		"hits":      float64(1),
		"misses":    float64(1),
		"hit_ratio": 0.5,
	}, rec.Stats)
}
