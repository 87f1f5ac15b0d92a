package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(lookupFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Second, cfg.StreamInterval)
	assert.Equal(t, 3, cfg.ActivitySize)
	assert.True(t, cfg.SeedData)
}

func TestLoadFrom_Environment(t *testing.T) {
	cfg, err := LoadFrom(lookupFrom(map[string]string{
		"PORT":            "9090",
		"GIN_MODE":        "debug",
		"STREAM_INTERVAL": "250ms",
		"SEED_DATA":       "false",
		"ACTIVITY_SIZE":   "5",
		"REDIS_URL":       "localhost:6379",
		"ELASTIC_URL":     "http://localhost:9200",
		"ELASTIC_INDEX":   "library",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 250*time.Millisecond, cfg.StreamInterval)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 5, cfg.ActivitySize)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "http://localhost:9200", cfg.ElasticURL)
	assert.Equal(t, "library", cfg.ElasticIndex)
}

func TestLoadFrom_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nstream_interval: 2s\nactivity_size: 10\nlog_level: debug\n"), 0o600))

	cfg, err := LoadFrom(lookupFrom(map[string]string{
		"CONFIG_FILE":   path,
		"ACTIVITY_SIZE": "4",
	}))

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.StreamInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.ActivitySize)
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad interval":      {"STREAM_INTERVAL": "soon"},
		"negative interval": {"STREAM_INTERVAL": "-1s"},
		"bad seed flag":     {"SEED_DATA": "maybe"},
		"bad activity size": {"ACTIVITY_SIZE": "three"},
		"zero activity":     {"ACTIVITY_SIZE": "0"},
		"empty port":        {"PORT": ""},
		"unknown gin mode":  {"GIN_MODE": "verbose"},
		"missing file":      {"CONFIG_FILE": filepath.Join(os.TempDir(), "does-not-exist.yaml")},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(lookupFrom(env))
			assert.Error(t, err)
		})
	}
}
