// Package cachehttp exposes a string-keyed LRU cache over HTTP for
// inspection and manual poking, mounted on a chi router.
//
//	c := cache.MustNew[string, person.Person](128)
//	r := cachehttp.NewRouter(c,
//		cachehttp.WithLogger(log),
//		cachehttp.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
//	)
//
// Routes:
//
//	GET    /health          liveness probe
//	GET    /stats           capacity, size, hits, misses, hit ratio
//	GET    /entries         snapshot, least to most recently used
//	DELETE /entries         clear entries and counters
//	GET    /entries/{key}   lookup (counts as a hit or miss, refreshes recency)
//	PUT    /entries/{key}   insert or replace from a JSON body
//	DELETE /entries/{key}   remove
//	GET    /metrics         only when WithMetricsHandler is given
//
// Values travel as JSON, so V must round-trip through encoding/json.
package cachehttp
