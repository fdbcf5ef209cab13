package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/pkg/config"
)

type defaultsConfig struct {
	Capacity int    `env:"LRUKIT_TEST_DEFAULT_CAPACITY" envDefault:"3"`
	Name     string `env:"LRUKIT_TEST_DEFAULT_NAME" envDefault:"demo"`
	Serve    bool   `env:"LRUKIT_TEST_DEFAULT_SERVE" envDefault:"false"`
}

type successConfig struct {
	Capacity int    `env:"LRUKIT_TEST_SUCCESS_CAPACITY" envDefault:"3"`
	Name     string `env:"LRUKIT_TEST_SUCCESS_NAME" envDefault:"demo"`
	Serve    bool   `env:"LRUKIT_TEST_SUCCESS_SERVE" envDefault:"false"`
}

type cachedConfig struct {
	Name string `env:"LRUKIT_TEST_CACHED_NAME" envDefault:"demo"`
}

type requiredConfig struct {
	Required string `env:"LRUKIT_TEST_REQUIRED,required"`
}

type invalidConfig struct {
	Capacity int `env:"LRUKIT_TEST_INVALID_CAPACITY"`
}

type fileConfig struct {
	Capacity int    `env:"LRUKIT_TEST_FILE_CAPACITY"`
	Name     string `env:"LRUKIT_TEST_FILE_NAME"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("LRUKIT_TEST_SUCCESS_CAPACITY", "100")
	t.Setenv("LRUKIT_TEST_SUCCESS_NAME", "sessions")
	t.Setenv("LRUKIT_TEST_SUCCESS_SERVE", "true")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 100, cfg.Capacity)
	assert.Equal(t, "sessions", cfg.Name)
	assert.True(t, cfg.Serve)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("LRUKIT_TEST_DEFAULT_CAPACITY")
	os.Unsetenv("LRUKIT_TEST_DEFAULT_NAME")
	os.Unsetenv("LRUKIT_TEST_DEFAULT_SERVE")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Capacity: 3, Name: "demo"}, cfg)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("LRUKIT_TEST_CACHED_NAME", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("LRUKIT_TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name, "second load should be served from cache")

	config.Reset()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name, "reset should force a fresh parse")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("LRUKIT_TEST_REQUIRED")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Setenv("LRUKIT_TEST_INVALID_CAPACITY", "lots")

		var cfg invalidConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("LRUKIT_TEST_REQUIRED")
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("LRUKIT_TEST_FILE_CAPACITY")
	os.Unsetenv("LRUKIT_TEST_FILE_NAME")
	t.Cleanup(func() {
		os.Unsetenv("LRUKIT_TEST_FILE_CAPACITY")
		os.Unsetenv("LRUKIT_TEST_FILE_NAME")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 128, cfg.Capacity)
	assert.Equal(t, "from file", cfg.Name)

	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
