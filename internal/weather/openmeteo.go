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

// OpenMeteoClient is the secondary forecast source. It needs no API key
// but requires a two-step fetch: geocode the location string, then
// request a daily series for the coordinates.
type OpenMeteoClient struct {
	GeocodeBaseURL  string
	ForecastBaseURL string
	HTTPClient      *http.Client
}

// NewOpenMeteoClient creates a client with the production base URLs.
func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		GeocodeBaseURL:  "https://geocoding-api.open-meteo.com/v1",
		ForecastBaseURL: "https://api.open-meteo.com/v1",
		HTTPClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

// weatherCodeLabels maps WMO weather interpretation codes to condition
// text. Codes not listed here render as "Unknown".
var weatherCodeLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

func conditionForCode(code int) string {
	if label, ok := weatherCodeLabels[code]; ok {
		return label
	}
	return "Unknown"
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type openMeteoResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WeatherCode      []int     `json:"weathercode"`
	} `json:"daily"`
}

// geocode resolves a location string to coordinates. Returns
// ErrLocationNotFound when the geocoder has no match.
func (c *OpenMeteoClient) geocode(ctx context.Context, location string) (lat, lon float64, err error) {
	q := url.Values{}
	q.Set("name", location)
	q.Set("count", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.GeocodeBaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(body.Results) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}

	return body.Results[0].Latitude, body.Results[0].Longitude, nil
}

// Forecast geocodes the location and fetches a daily series covering
// [start, start+nights-1].
func (c *OpenMeteoClient) Forecast(ctx context.Context, location string, nights int, start time.Time) ([]Day, error) {
	lat, lon, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	end := start.AddDate(0, 0, nights-1)

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode")
	q.Set("timezone", "auto")
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))

	reqURL := fmt.Sprintf("%s/forecast?%s", c.ForecastBaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request returned status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	daily := body.Daily
	var forecast []Day
	for i, dateStr := range daily.Time {
		if i >= len(daily.TemperatureMax) || i >= len(daily.TemperatureMin) {
			break
		}

		maxTemp := daily.TemperatureMax[i]
		minTemp := daily.TemperatureMin[i]
		temp := int(math.Round((maxTemp + minTemp) / 2))

		condition := "Unknown"
		if i < len(daily.WeatherCode) {
			condition = conditionForCode(daily.WeatherCode[i])
		}

		// Open-Meteo gives precipitation in mm rather than a chance
		// percentage; approximate one so the rain trigger still works.
		chance := 0
		if i < len(daily.PrecipitationSum) {
			chance = int(math.Min(daily.PrecipitationSum[i]*10, 100))
		}

		date := dateStr
		if t, err := time.Parse("2006-01-02", dateStr); err == nil {
			date = t.Format(displayDateFormat)
		}

		// Humidity and wind are not part of the daily series; leave
		// them absent.
		forecast = append(forecast, Day{
			Date:         date,
			Condition:    condition,
			TempC:        temp,
			MaxTempC:     int(math.Round(maxTemp)),
			MinTempC:     int(math.Round(minTemp)),
			ChanceOfRain: chance,
			Icon:         Icon(condition, temp),
		})
	}

	return forecast, nil
}
