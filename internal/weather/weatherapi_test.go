package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestWeatherAPIClient(handler http.HandlerFunc) (*WeatherAPIClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &WeatherAPIClient{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	}
	return client, srv
}

func TestWeatherAPIClient_Forecast(t *testing.T) {
	var gotQuery map[string]string
	client, srv := newTestWeatherAPIClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"key":  r.URL.Query().Get("key"),
			"q":    r.URL.Query().Get("q"),
			"days": r.URL.Query().Get("days"),
		}
		w.Write([]byte(`{
			"forecast": {
				"forecastday": [
					{
						"date": "2026-09-10",
						"day": {
							"condition": {"text": "Light rain"},
							"avgtemp_c": 2.4,
							"maxtemp_c": 5.6,
							"mintemp_c": -1.2,
							"avghumidity": 88,
							"daily_chance_of_rain": 70,
							"maxwind_kph": 31.5
						}
					}
				]
			}
		}`))
	})
	defer srv.Close()

	forecast, err := client.Forecast(context.Background(), "Reykjavik", 1)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if gotQuery["key"] != "test-key" || gotQuery["q"] != "Reykjavik" || gotQuery["days"] != "1" {
		t.Errorf("unexpected query params: %v", gotQuery)
	}

	if len(forecast) != 1 {
		t.Fatalf("got %d days, want 1", len(forecast))
	}

	day := forecast[0]
	if day.Date != "Thu, Sep 10" {
		t.Errorf("date = %q, want %q", day.Date, "Thu, Sep 10")
	}
	if day.Condition != "Light rain" {
		t.Errorf("condition = %q, want %q", day.Condition, "Light rain")
	}
	if day.TempC != 2 {
		t.Errorf("temp = %d, want 2", day.TempC)
	}
	if day.MaxTempC != 6 || day.MinTempC != -1 {
		t.Errorf("range = %d..%d, want -1..6", day.MinTempC, day.MaxTempC)
	}
	if day.Humidity == nil || *day.Humidity != 88 {
		t.Errorf("humidity = %v, want 88", day.Humidity)
	}
	if day.ChanceOfRain != 70 {
		t.Errorf("chance of rain = %d, want 70", day.ChanceOfRain)
	}
	if day.WindKph == nil || *day.WindKph != 31.5 {
		t.Errorf("wind = %v, want 31.5", day.WindKph)
	}
	if day.Icon != "🌧️" {
		t.Errorf("icon = %q, want rain glyph", day.Icon)
	}
}

func TestWeatherAPIClient_ForecastCapsDays(t *testing.T) {
	var gotDays string
	client, srv := newTestWeatherAPIClient(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("days")
		w.Write([]byte(`{"forecast": {"forecastday": []}}`))
	})
	defer srv.Close()

	if _, err := client.Forecast(context.Background(), "Oslo", 14); err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if gotDays != "10" {
		t.Errorf("days param = %q, want %q", gotDays, "10")
	}
}

func TestWeatherAPIClient_ForecastBodyError(t *testing.T) {
	client, srv := newTestWeatherAPIClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "API key is invalid."}}`))
	})
	defer srv.Close()

	_, err := client.Forecast(context.Background(), "Oslo", 3)
	if err == nil {
		t.Fatal("expected an error for an error payload")
	}
	if !strings.Contains(err.Error(), "API key is invalid") {
		t.Errorf("error = %v, want the API message preserved", err)
	}
}

func TestWeatherAPIClient_ForecastContextCancelled(t *testing.T) {
	client, srv := newTestWeatherAPIClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Forecast(ctx, "Oslo", 3); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
