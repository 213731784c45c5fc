// Package weather fetches and normalizes daily forecasts for a trip.
//
// Two sources are supported: WeatherAPI (primary, short range) and
// Open-Meteo (secondary, geocode + daily series). Both are normalized
// into the same Day record so the rest of the application never sees
// provider-specific shapes. A deterministic synthetic generator exists
// for offline use.
package weather

import "strings"

// Day is one normalized day of forecast data.
//
// Humidity and WindKph are pointers because the secondary source does
// not provide them; absent values must survive serialization as such.
type Day struct {
	Date         string   `json:"date"`
	Condition    string   `json:"condition"`
	TempC        int      `json:"temp"`
	MaxTempC     int      `json:"maxTemp"`
	MinTempC     int      `json:"minTemp"`
	Humidity     *int     `json:"humidity,omitempty"`
	ChanceOfRain int      `json:"chanceOfRain"`
	WindKph      *float64 `json:"wind,omitempty"`
	Icon         string   `json:"icon"`
}

// displayDateFormat matches "Mon, Jan 2" style dates shown to users.
const displayDateFormat = "Mon, Jan 2"

// Icon picks a weather glyph from the condition text and temperature.
// Checks are ordered and the first match wins. Note "partly cloudy"
// contains "cloudy", so the cloud check catches it first.
func Icon(condition string, tempC int) string {
	c := strings.ToLower(condition)

	switch {
	case strings.Contains(c, "rain") || strings.Contains(c, "drizzle"):
		return "🌧️"
	case strings.Contains(c, "storm") || strings.Contains(c, "thunder"):
		return "⛈️"
	case strings.Contains(c, "snow") || strings.Contains(c, "sleet"):
		return "❄️"
	case strings.Contains(c, "mist") || strings.Contains(c, "fog"):
		return "🌫️"
	case strings.Contains(c, "overcast") || strings.Contains(c, "cloudy"):
		return "☁️"
	case strings.Contains(c, "partly cloudy"):
		return "⛅"
	case strings.Contains(c, "sunny") || strings.Contains(c, "clear"):
		if tempC > 30 {
			return "🌞"
		}
		return "☀️"
	case tempC < 5:
		return "🥶"
	default:
		return "🌤️"
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
