package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 256, cfg.MaxConnections)
	assert.Equal(t, 1500*time.Millisecond, cfg.LookupDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.LookupDebounce)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.ErrorIs(t, cfg.RequireDatabase(), ErrDatabaseURLMissing)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/peorisk")
	t.Setenv("LOOKUP_DEBOUNCE", "250ms")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.LookupDebounce)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.NoError(t, cfg.RequireDatabase())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "log_level: debug\nmax_connections: 16\nquestions_file: questions.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadFrom(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.MaxConnections)
	assert.Equal(t, "questions.yaml", cfg.QuestionsFile)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("MAX_CONNECTIONS", "0")
	_, err := LoadFrom(viper.New(), t.TempDir())
	assert.Error(t, err)
}
