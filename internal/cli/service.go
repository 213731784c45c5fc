package cli

import (
	"github.com/pablasso/maleta/internal/config"
	"github.com/pablasso/maleta/internal/weather"
)

// newWeatherService wires the configured weather sources into a fetch
// chain. Base URL overrides from the environment apply to both
// clients.
func newWeatherService(cfg config.Config, synthetic bool) *weather.Service {
	svc := weather.NewService(cfg.WeatherAPIKey)
	svc.UseSyntheticFallback = synthetic

	if svc.Primary != nil && cfg.WeatherAPIBaseURL != "" {
		svc.Primary.BaseURL = cfg.WeatherAPIBaseURL
	}
	if cfg.GeocodeBaseURL != "" {
		svc.Secondary.GeocodeBaseURL = cfg.GeocodeBaseURL
	}
	if cfg.ForecastBaseURL != "" {
		svc.Secondary.ForecastBaseURL = cfg.ForecastBaseURL
	}

	return svc
}
