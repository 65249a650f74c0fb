package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobportal/pkg/config"
)

type successConfig struct {
	Name    string `env:"CFG_TEST_NAME" envDefault:"default"`
	Seconds int    `env:"CFG_TEST_SECONDS" envDefault:"3600"`
	Secure  bool   `env:"CFG_TEST_SECURE" envDefault:"true"`
}

type defaultsConfig struct {
	Name    string `env:"CFG_TEST_DEFAULT_NAME" envDefault:"fallback"`
	Seconds int    `env:"CFG_TEST_DEFAULT_SECONDS" envDefault:"600"`
}

type requiredConfig struct {
	URL string `env:"CFG_TEST_REQUIRED_URL,required"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "jobportal")
	t.Setenv("CFG_TEST_SECONDS", "7200")
	t.Setenv("CFG_TEST_SECURE", "false")
	config.Reset()

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "jobportal", cfg.Name)
	assert.Equal(t, 7200, cfg.Seconds)
	assert.False(t, cfg.Secure)
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 600, cfg.Seconds)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFG_TEST_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value, "cached value must be returned")

	config.Reset()
	var reloaded cachedConfig
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[successConfig](nil), config.ErrNilPointer)
}

func TestLoadEnv_File(t *testing.T) {
	// LoadEnv runs once per process; this test only checks that a missing
	// explicit file is reported when it is the first caller, and is a no-op
	// afterwards.
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.env")
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))

	err := config.LoadEnv(path)
	if err != nil {
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	}
}
