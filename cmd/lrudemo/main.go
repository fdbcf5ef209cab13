// Command lrudemo exercises the LRU cache and the Person value object.
//
// Configuration comes from the environment (see Config). With DEMO_SERVE=true
// it keeps running and serves the cache over HTTP, including /metrics, until
// interrupted.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/cachehttp"
	"github.com/dmitrymomot/lrukit/pkg/cachemetrics"
	"github.com/dmitrymomot/lrukit/pkg/config"
	"github.com/dmitrymomot/lrukit/pkg/httpserver"
	"github.com/dmitrymomot/lrukit/pkg/logger"
	"github.com/dmitrymomot/lrukit/pkg/requestid"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		logger.New().Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("lrudemo failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	c, err := cache.New[string, string](cfg.CacheCapacity)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "cache created", logger.CacheName(cfg.CacheName), logger.Capacity(c.Cap()))

	p := runPerson(ctx, log)
	runScenario(ctx, log, c)
	if err := runPersonCache(ctx, log, p); err != nil {
		return err
	}
	if _, err := runLoad(ctx, log, c, cfg.Workers, cfg.Operations); err != nil {
		return err
	}

	if !cfg.Serve {
		return nil
	}
	return serve(ctx, cfg, log, c)
}

func serve(ctx context.Context, cfg Config, log *slog.Logger, c *cache.LRUCache[string, string]) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if _, err := cachemetrics.Register(reg, cfg.CacheName, c); err != nil {
		return err
	}

	router := cachehttp.NewRouter(c,
		cachehttp.WithLogger(log),
		cachehttp.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
