package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	OpenWeatherAPIKey string

	// GeocoderAPIKey enables reverse geocoding of location fixes. Optional;
	// without it coordinate-seeded sessions stay coordinates-only.
	GeocoderAPIKey string

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// SessionTTL and SweepInterval control idle-session eviction.
	SessionTTL    time.Duration
	SweepInterval time.Duration

	// DisplayFahrenheit adds a converted value next to Celsius temperatures.
	DisplayFahrenheit bool

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	viper.AutomaticEnv()

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = viper.GetString("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = viper.GetString("GEOCODER_API_KEY")

	timeout, err := durationOrDefault("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	ttl, err := durationOrDefault("SESSION_TTL", "30m")
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = ttl

	sweep, err := durationOrDefault("SWEEP_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = sweep

	cfg.DisplayFahrenheit = viper.GetBool("DISPLAY_FAHRENHEIT")
	cfg.Port = getStringOrDefault("PORT", "8080")

	return cfg, nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func durationOrDefault(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getStringOrDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
