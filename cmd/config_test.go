package cmd

import (
	"log/slog"
	"testing"
	"time"

	"trackview/internal/adapters/out/nominatim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "AUTH_URL", "ORDERS_URL", "TRACKING_URL", "ANALYTICS_URL",
	"GEOCODER_URL", "GEOCODER_USER_AGENT", "GEOCODER_RATE_PER_SEC",
	"TRACKING_STRATEGY", "TRACKING_POLL_INTERVAL", "TRACKING_STREAM_URL",
	"HTTP_CLIENT_TIMEOUT", "LOG_LEVEL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "http://localhost:8081", config.AuthURL)
	assert.Equal(t, "http://localhost:8082", config.OrdersURL)
	assert.Equal(t, "http://localhost:8083", config.TrackingURL)
	assert.Equal(t, "http://localhost:8084", config.AnalyticsURL)
	assert.Equal(t, nominatim.DefaultURL, config.GeocoderURL)
	assert.InDelta(t, 1.0, config.GeocoderRatePerSec, 1e-9)
	assert.Equal(t, TrackingStrategyPoll, config.TrackingStrategy)
	assert.Equal(t, 5*time.Second, config.TrackingPollInterval)
	assert.Equal(t, "ws://localhost:8083/tracking/ws", config.TrackingStreamURL)
	assert.Equal(t, 10*time.Second, config.HTTPClientTimeout)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("TRACKING_STRATEGY", "Stream")
	t.Setenv("TRACKING_POLL_INTERVAL", "2s")
	t.Setenv("GEOCODER_RATE_PER_SEC", "0.5")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", config.HTTPPort)
	assert.Equal(t, TrackingStrategyStream, config.TrackingStrategy)
	assert.Equal(t, 2*time.Second, config.TrackingPollInterval)
	assert.InDelta(t, 0.5, config.GeocoderRatePerSec, 1e-9)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown strategy", key: "TRACKING_STRATEGY", value: "carrier-pigeon"},
		{name: "bad interval", key: "TRACKING_POLL_INTERVAL", value: "soon"},
		{name: "negative timeout", key: "HTTP_CLIENT_TIMEOUT", value: "-1s"},
		{name: "bad rate", key: "GEOCODER_RATE_PER_SEC", value: "fast"},
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
