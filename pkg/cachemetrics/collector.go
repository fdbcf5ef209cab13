// Package cachemetrics exports cache statistics as Prometheus metrics.
//
//	c := cache.MustNew[string, []byte](1024)
//	prometheus.MustRegister(cachemetrics.NewCollector("pages", c))
//
// Every scrape reads one cache.Stats value, so hits, misses and size in a
// single scrape are mutually consistent. Clear resets the hit and miss
// counters to zero; Prometheus treats that as an ordinary counter reset.
package cachemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

const (
	namespace = "lrukit"
	subsystem = "cache"
)

// StatsSource is satisfied by *cache.LRUCache for any key and value type.
type StatsSource interface {
	Stats() cache.Stats
}

// Collector is a prometheus.Collector over a single cache.
type Collector struct {
	src StatsSource

	hits     *prometheus.Desc
	misses   *prometheus.Desc
	entries  *prometheus.Desc
	capacity *prometheus.Desc
	hitRatio *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a collector whose metrics carry the const label cache=name.
func NewCollector(name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, metric), help, nil, labels)
	}
	return &Collector{
		src:      src,
		hits:     desc("hits_total", "Number of lookups that found a resident entry since the last clear."),
		misses:   desc("misses_total", "Number of lookups that found no entry since the last clear."),
		entries:  desc("entries", "Number of resident entries."),
		capacity: desc("capacity", "Maximum number of resident entries."),
		hitRatio: desc("hit_ratio", "Hits divided by lookups since the last clear, 0 when there were none."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.entries
	ch <- c.capacity
	ch <- c.hitRatio
}

// Collect implements prometheus.Collector. All values come from a single
// Stats call.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.hitRatio, prometheus.GaugeValue, s.HitRatio())
}

// Register adds a collector for src to reg and returns it.
func Register(reg prometheus.Registerer, name string, src StatsSource) (*Collector, error) {
	c := NewCollector(name, src)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
