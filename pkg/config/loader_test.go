package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gstcheck/pkg/config"
)

// Tests in this file mutate the process environment and the package cache,
// so none of them run in parallel.

type defaultsConfig struct {
	Name    string        `env:"CFGTEST_DEFAULT_NAME" envDefault:"gstcheck"`
	Size    int           `env:"CFGTEST_DEFAULT_SIZE" envDefault:"42"`
	Timeout time.Duration `env:"CFGTEST_DEFAULT_TIMEOUT" envDefault:"10s"`
}

type envConfig struct {
	Name string `env:"CFGTEST_ENV_NAME"`
	On   bool   `env:"CFGTEST_ENV_ON"`
}

type requiredConfig struct {
	Value string `env:"CFGTEST_REQUIRED,required"`
}

type validatedConfig struct {
	Port int `env:"CFGTEST_PORT" envDefault:"0"`
}

func (c *validatedConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "gstcheck", cfg.Name)
	assert.Equal(t, 42, cfg.Size)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvAndCached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_ENV_NAME", "first")
	t.Setenv("CFGTEST_ENV_ON", "true")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)
	assert.True(t, cfg.On)

	t.Setenv("CFGTEST_ENV_NAME", "second")
	var again envConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "second load must come from cache")

	config.ResetCache()
	var fresh envConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, "second", fresh.Name)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[envConfig](nil), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("CFGTEST_REQUIRED")
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("validation failure is not cached", func(t *testing.T) {
		var cfg validatedConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrInvalidConfig)

		t.Setenv("CFGTEST_PORT", "8080")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("CFGTEST_REQUIRED")
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_REQUIRED")
	t.Cleanup(func() { os.Unsetenv("CFGTEST_REQUIRED") })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_REQUIRED=from-file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg requiredConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}
