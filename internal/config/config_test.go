package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("MALETA_WEATHER_API_KEY", "secret")
	t.Setenv("MALETA_WEATHERAPI_URL", "http://localhost:1111")
	t.Setenv("MALETA_GEOCODE_URL", "http://localhost:2222")
	t.Setenv("MALETA_OPENMETEO_URL", "http://localhost:3333")

	cfg := Load()

	if cfg.WeatherAPIKey != "secret" {
		t.Errorf("WeatherAPIKey = %q, want %q", cfg.WeatherAPIKey, "secret")
	}
	if cfg.WeatherAPIBaseURL != "http://localhost:1111" {
		t.Errorf("WeatherAPIBaseURL = %q", cfg.WeatherAPIBaseURL)
	}
	if cfg.GeocodeBaseURL != "http://localhost:2222" {
		t.Errorf("GeocodeBaseURL = %q", cfg.GeocodeBaseURL)
	}
	if cfg.ForecastBaseURL != "http://localhost:3333" {
		t.Errorf("ForecastBaseURL = %q", cfg.ForecastBaseURL)
	}
}

func TestLoad_EmptyEnvironment(t *testing.T) {
	t.Setenv("MALETA_WEATHER_API_KEY", "")
	t.Setenv("MALETA_WEATHERAPI_URL", "")
	t.Setenv("MALETA_GEOCODE_URL", "")
	t.Setenv("MALETA_OPENMETEO_URL", "")

	cfg := Load()
	if cfg.WeatherAPIKey != "" || cfg.WeatherAPIBaseURL != "" {
		t.Errorf("want zero-value config, got %+v", cfg)
	}
}
