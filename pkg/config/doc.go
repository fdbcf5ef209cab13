// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with github.com/caarlos0/env tags. A .env file in
// the working directory is read through github.com/joho/godotenv on first use;
// real environment variables take precedence over it.
//
//	type Config struct {
//		Capacity int    `env:"CACHE_CAPACITY" envDefault:"3"`
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Each config type is parsed once per process; Reset clears that cache.
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
