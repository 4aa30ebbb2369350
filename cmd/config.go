package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"trackview/internal/adapters/out/nominatim"
	"trackview/internal/jobs"
)

const (
	TrackingStrategyPoll   = "poll"
	TrackingStrategyStream = "stream"
)

type Config struct {
	HTTPPort string

	AuthURL      string
	OrdersURL    string
	TrackingURL  string
	AnalyticsURL string

	GeocoderURL        string
	GeocoderUserAgent  string
	GeocoderRatePerSec float64

	TrackingStrategy     string
	TrackingPollInterval time.Duration
	TrackingStreamURL    string

	HTTPClientTimeout time.Duration
	LogLevel          slog.Level
}

// LoadConfig reads the configuration from the environment. Unset keys take
// their defaults; set but malformed keys are an error.
func LoadConfig() (Config, error) {
	var errList []error

	config := Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		AuthURL:           getEnv("AUTH_URL", "http://localhost:8081"),
		OrdersURL:         getEnv("ORDERS_URL", "http://localhost:8082"),
		TrackingURL:       getEnv("TRACKING_URL", "http://localhost:8083"),
		AnalyticsURL:      getEnv("ANALYTICS_URL", "http://localhost:8084"),
		GeocoderURL:       getEnv("GEOCODER_URL", nominatim.DefaultURL),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "trackview/1.0"),
		TrackingStrategy:  strings.ToLower(getEnv("TRACKING_STRATEGY", TrackingStrategyPoll)),
		TrackingStreamURL: getEnv("TRACKING_STREAM_URL", "ws://localhost:8083/tracking/ws"),
	}

	var err error
	if config.GeocoderRatePerSec, err = getEnvFloat("GEOCODER_RATE_PER_SEC", 1); err != nil {
		errList = append(errList, err)
	}
	if config.TrackingPollInterval, err = getEnvDuration("TRACKING_POLL_INTERVAL", jobs.DefaultPollInterval); err != nil {
		errList = append(errList, err)
	}
	if config.HTTPClientTimeout, err = getEnvDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second); err != nil {
		errList = append(errList, err)
	}
	if err := config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch config.TrackingStrategy {
	case TrackingStrategyPoll, TrackingStrategyStream:
	default:
		errList = append(errList, fmt.Errorf("TRACKING_STRATEGY: unknown strategy %q", config.TrackingStrategy))
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}
