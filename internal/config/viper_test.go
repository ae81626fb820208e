package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "to_be_processed", cfg.Folders.Input)
	assert.Equal(t, "processed", cfg.Folders.Output)
	assert.Equal(t, "Sales Person List.csv", cfg.Salesperson.File)
	assert.Equal(t, 2*time.Second, cfg.WatchInterval())
	assert.Equal(t, 60*time.Second, cfg.WatchTimeout())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 25, cfg.Server.MaxUploadMB)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("SALESCONV_LOG_LEVEL", "debug")
	t.Setenv("SALESCONV_WATCH_INTERVAL_SECONDS", "5")
	t.Setenv("SALESCONV_SERVER_ADDR", ":9090")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.WatchInterval())
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestInitializeConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SALESCONV_LOG_LEVEL", "loud")
	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfigRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("SALESCONV_WATCH_INTERVAL_SECONDS", "0")
	_, err := InitializeConfig()
	assert.Error(t, err)
}
