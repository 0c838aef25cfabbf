package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://e-jagriti.gov.in", cfg.JagritiBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryBackoffBase)
	assert.Equal(t, "2025-01-01", cfg.DefaultFromDate)
	assert.Equal(t, "2025-09-03", cfg.DefaultToDate)
	assert.Equal(t, time.Duration(0), cfg.DirectoryCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JAGRITI_BASE_URL", "https://example.test")
	t.Setenv("REQUEST_TIMEOUT", "10")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("DIRECTORY_CACHE_TTL", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://example.test", cfg.JagritiBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, time.Minute, cfg.DirectoryCacheTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_RETRIES", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_RETRIES")
}
