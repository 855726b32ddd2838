package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "./data/wms.db", cfg.Store.Path)
	assert.True(t, cfg.Remote.Demo(), "sin REMOTE_BASE_URL se usa el modo demo")
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.Equal(t, "127.0.0.1:8088", cfg.HTTP.Addr())
	assert.Equal(t, "./docs/swagger.json", cfg.HTTP.DocsFile)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "https://wms.example.com/")
	t.Setenv("SYNC_INTERVAL_SECONDS", "5")
	t.Setenv("HTTP_PORT", "9000")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://wms.example.com", cfg.Remote.BaseURL, "se quita la barra final")
	assert.False(t, cfg.Remote.Demo())
	assert.Equal(t, 5*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestFromViper_BackoffInvalido(t *testing.T) {
	t.Setenv("SYNC_BACKOFF_BASE_SECONDS", "120")
	t.Setenv("SYNC_BACKOFF_MAX_SECONDS", "60")

	v := viper.New()
	v.AutomaticEnv()
	_, err := fromViper(v)
	assert.Error(t, err)
}
