package weather

import (
	"reflect"
	"testing"
	"time"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		tempC     int
		want      string
	}{
		{"rain", "Moderate rain", 12, "🌧️"},
		{"drizzle", "Light Drizzle", 12, "🌧️"},
		{"thunderstorm", "Thunderstorm with hail", 20, "⛈️"},
		{"snow", "Heavy snow", -2, "❄️"},
		{"fog", "Fog", 5, "🌫️"},
		{"overcast", "Overcast", 10, "☁️"},
		{"cloudy", "Cloudy", 10, "☁️"},
		{"partly cloudy matches the cloud check first", "Partly cloudy", 10, "☁️"},
		{"sunny", "Sunny", 22, "☀️"},
		{"clear and hot", "Clear sky", 34, "🌞"},
		{"unknown condition but freezing", "Unknown", 2, "🥶"},
		{"unknown condition", "Mysterious haze", 18, "🌤️"},
		{"case insensitive", "SUNNY", 20, "☀️"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Icon(tc.condition, tc.tempC)
			if got != tc.want {
				t.Errorf("Icon(%q, %d) = %q, want %q", tc.condition, tc.tempC, got, tc.want)
			}
		})
	}
}

func TestSynthetic_Deterministic(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	first := Synthetic(5, start)
	second := Synthetic(5, start)

	if len(first) != 5 {
		t.Fatalf("got %d days, want 5", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two syntheses with the same start differ")
	}
}

func TestSynthetic_SeedValues(t *testing.T) {
	// March 14: seed = 14 + 3 = 17.
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	days := Synthetic(1, start)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}

	day := days[0]
	if day.TempC != 12 {
		t.Errorf("temp = %d, want 12", day.TempC)
	}
	if day.Condition != "Sunny" {
		t.Errorf("condition = %q, want Sunny", day.Condition)
	}
	if day.MaxTempC != 17 || day.MinTempC != 7 {
		t.Errorf("range = %d..%d, want 7..17", day.MinTempC, day.MaxTempC)
	}
	if day.Humidity == nil || *day.Humidity != 57 {
		t.Errorf("humidity = %v, want 57", day.Humidity)
	}
	if day.ChanceOfRain != 20 {
		t.Errorf("chance of rain = %d, want 20", day.ChanceOfRain)
	}
	if day.WindKph == nil || *day.WindKph != 27 {
		t.Errorf("wind = %v, want 27", day.WindKph)
	}
	if day.Date != "Sat, Mar 14" {
		t.Errorf("date = %q, want %q", day.Date, "Sat, Mar 14")
	}
}

func TestSynthetic_CapsAtSevenDays(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	if got := len(Synthetic(30, start)); got != 7 {
		t.Errorf("got %d days, want 7", got)
	}
}

func TestSynthetic_RainDaysRaiseChance(t *testing.T) {
	// June 13: seed = 13 + 6 = 19, 19 % 4 = 3 → Light Rain.
	start := time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)

	day := Synthetic(1, start)[0]
	if day.Condition != "Light Rain" {
		t.Fatalf("condition = %q, want Light Rain", day.Condition)
	}
	if day.ChanceOfRain != 60 {
		t.Errorf("chance of rain = %d, want 60", day.ChanceOfRain)
	}
}
