package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrkit/pkg/config"
)

type StorageTestConfig struct {
	Driver string `env:"TEST_STORAGE_DRIVER" envDefault:"mongo"`
	URI    string `env:"TEST_STORAGE_URI" envDefault:"mongodb://localhost:27017"`
	Trace  bool   `env:"TEST_STORAGE_TRACE" envDefault:"false"`
}

type OCRTestConfig struct {
	Languages []string `env:"TEST_OCR_LANGUAGES" envSeparator:"," envDefault:"por,eng"`
	DPI       int      `env:"TEST_OCR_DPI" envDefault:"300"`
}

type CacheTestConfig struct {
	Addr string `env:"TEST_CACHE_ADDR" envDefault:"localhost:6379"`
}

type RequiredTestConfig struct {
	APIKey string `env:"TEST_REQUIRED_API_KEY,required"`
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_STORAGE_DRIVER", "postgres")
	t.Setenv("TEST_STORAGE_URI", "postgres://localhost:5432/hrkit")
	t.Setenv("TEST_STORAGE_TRACE", "true")
	config.ResetCache()

	var cfg StorageTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "postgres://localhost:5432/hrkit", cfg.URI)
	assert.True(t, cfg.Trace)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("TEST_OCR_LANGUAGES")
	os.Unsetenv("TEST_OCR_DPI")
	config.ResetCache()

	var cfg OCRTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, []string{"por", "eng"}, cfg.Languages)
	assert.Equal(t, 300, cfg.DPI)
}

func TestLoadMissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_API_KEY")
	config.ResetCache()

	var cfg RequiredTestConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_CACHE_ADDR", "redis-1:6379")
	config.ResetCache()

	var first CacheTestConfig
	require.NoError(t, config.Load(&first))

	// A changed environment must not leak into the cached copy.
	t.Setenv("TEST_CACHE_ADDR", "redis-2:6379")

	var second CacheTestConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "redis-1:6379", second.Addr)
}

func TestResetCacheForcesReparse(t *testing.T) {
	t.Setenv("TEST_CACHE_ADDR", "redis-1:6379")
	config.ResetCache()

	var first CacheTestConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHE_ADDR", "redis-2:6379")
	config.ResetCache()

	var second CacheTestConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "redis-2:6379", second.Addr)
}

func TestLoadNilPointer(t *testing.T) {
	var cfg *StorageTestConfig
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnvFile(t *testing.T) {
	os.Unsetenv("TEST_ENVFILE_VALUE")
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/extra.env"))
	assert.Equal(t, "from-file", os.Getenv("TEST_ENVFILE_VALUE"))

	t.Cleanup(func() { os.Unsetenv("TEST_ENVFILE_VALUE") })
}

func TestLoadEnvMissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnv)
}
