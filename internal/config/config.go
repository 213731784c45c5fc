// Package config loads maleta's environment configuration.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings. All fields are
// optional: without an API key the primary weather source is skipped,
// and the base URL overrides exist for tests and proxies.
type Config struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	GeocodeBaseURL    string
	ForecastBaseURL   string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	return Config{
		WeatherAPIKey:     os.Getenv("MALETA_WEATHER_API_KEY"),
		WeatherAPIBaseURL: os.Getenv("MALETA_WEATHERAPI_URL"),
		GeocodeBaseURL:    os.Getenv("MALETA_GEOCODE_URL"),
		ForecastBaseURL:   os.Getenv("MALETA_OPENMETEO_URL"),
	}
}
