package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/logger"
)

// Helper to create a temp catalog file.
func createTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "REDIS_ADDR", "DATASET_PATH", "CACHE_TTL", "EXPORT_RATE_LIMIT")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "User Perception of Digital Payment Platforms .csv", cfg.DatasetPath)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.ExportRateLimit)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("DATASET_URL", "https://example.com/survey.csv")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "https://example.com/survey.csv", cfg.DatasetURL)
}

func TestLoggerOptionsFollowEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.LoggerOptions()
	assert.Equal(t, "production", opts.Environment)
	assert.Equal(t, "debug", opts.Level)

	log := logger.NewWithOptions(opts)
	assert.Equal(t, logrus.DebugLevel, log.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Logger.Formatter)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsRateLimit(t *testing.T) {
	t.Setenv("EXPORT_RATE_LIMIT", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCatalogDefaults(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), cat)
	assert.NoError(t, cat.Validate())
}

func TestLoadCatalogOverrides(t *testing.T) {
	path := createTempCatalog(t, `
heatmap_platforms: ["Easypaisa", "JazzCash"]
top_n: 3
recommend_reference: 75
`)
	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Easypaisa", "JazzCash"}, cat.HeatmapPlatforms)
	assert.Equal(t, 3, cat.TopN)
	assert.Equal(t, 75.0, cat.RecommendReference)
	assert.Equal(t, []string{"None"}, cat.TrustExclude)
}

func TestLoadCatalogInvalid(t *testing.T) {
	path := createTempCatalog(t, "top_n: 0\n")
	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TopN")

	path = createTempCatalog(t, "top_n: [\n")
	_, err = LoadCatalog(path)
	assert.ErrorContains(t, err, "parse catalog")

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
