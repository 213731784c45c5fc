package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// maxForecastDays is the largest forecast window WeatherAPI serves.
const maxForecastDays = 10

// WeatherAPIClient fetches forecasts from api.weatherapi.com, the
// primary source. It only covers the near future; the Service skips it
// for trips starting further out.
type WeatherAPIClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewWeatherAPIClient creates a client with the production base URL.
func NewWeatherAPIClient(apiKey string) *WeatherAPIClient {
	return &WeatherAPIClient{
		APIKey:     apiKey,
		BaseURL:    "https://api.weatherapi.com/v1",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// weatherAPIResponse mirrors the subset of the forecast.json payload we
// consume.
type weatherAPIResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
				AvgTempC          float64 `json:"avgtemp_c"`
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				AvgHumidity       float64 `json:"avghumidity"`
				DailyChanceOfRain int     `json:"daily_chance_of_rain"`
				MaxWindKph        float64 `json:"maxwind_kph"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Forecast requests up to min(days, 10) days of forecast for location.
func (c *WeatherAPIClient) Forecast(ctx context.Context, location string, days int) ([]Day, error) {
	if days > maxForecastDays {
		days = maxForecastDays
	}

	q := url.Values{}
	q.Set("key", c.APIKey)
	q.Set("q", location)
	q.Set("days", fmt.Sprintf("%d", days))
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	reqURL := fmt.Sprintf("%s/forecast.json?%s", c.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	var body weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	// The API reports errors (bad key, unknown location, quota) in the
	// body rather than relying on status codes alone.
	if body.Error != nil {
		return nil, fmt.Errorf("weather api: %s", body.Error.Message)
	}

	var forecast []Day
	for _, fd := range body.Forecast.ForecastDay {
		date := fd.Date
		if t, err := time.Parse("2006-01-02", fd.Date); err == nil {
			date = t.Format(displayDateFormat)
		}

		condition := fd.Day.Condition.Text
		temp := int(math.Round(fd.Day.AvgTempC))

		forecast = append(forecast, Day{
			Date:         date,
			Condition:    condition,
			TempC:        temp,
			MaxTempC:     int(math.Round(fd.Day.MaxTempC)),
			MinTempC:     int(math.Round(fd.Day.MinTempC)),
			Humidity:     intPtr(int(fd.Day.AvgHumidity)),
			ChanceOfRain: fd.Day.DailyChanceOfRain,
			WindKph:      floatPtr(fd.Day.MaxWindKph),
			Icon:         Icon(condition, temp),
		})
	}

	return forecast, nil
}
