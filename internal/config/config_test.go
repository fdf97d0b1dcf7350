package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "5002", cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "harutrip", cfg.MongoDB.Database)
	require.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.Weather.BaseURL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.True(t, cfg.IsProduction())
	require.Equal(t, "8080", cfg.Server.Port)
	require.True(t, cfg.RateLimit.Enabled)
}
