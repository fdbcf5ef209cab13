package main

import "github.com/dmitrymomot/lrukit/pkg/httpserver"

// Config is loaded from the environment (and .env) at startup.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"lrudemo"`

	CacheCapacity int    `env:"CACHE_CAPACITY" envDefault:"3"`
	CacheName     string `env:"CACHE_NAME" envDefault:"demo"`

	Workers    int  `env:"DEMO_WORKERS" envDefault:"8"`
	Operations int  `env:"DEMO_OPERATIONS" envDefault:"10000"`
	Serve      bool `env:"DEMO_SERVE" envDefault:"false"`

	HTTP httpserver.Config
}
