// Package testutil provides testing utilities for the maleta project.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/weather"
)

// SetupHome points MALETA_HOME at a fresh temp directory so storage
// tests never touch the real home. Cleanup is automatic via t.Setenv
// and t.TempDir.
func SetupHome(t *testing.T) string {
	t.Helper()

	// Resolve symlinks for macOS (/var -> /private/var)
	tmpDir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	t.Setenv("MALETA_HOME", tmpDir)
	return tmpDir
}

// Forecast builds a flat n-day forecast with the given condition,
// temperature and rain chance on every day.
func Forecast(n int, condition string, tempC, chanceOfRain int) []weather.Day {
	humidity := 60
	wind := 12.0

	days := make([]weather.Day, n)
	for i := range days {
		days[i] = weather.Day{
			Date:         "Mon, Jan 2",
			Condition:    condition,
			TempC:        tempC,
			MaxTempC:     tempC + 3,
			MinTempC:     tempC - 3,
			Humidity:     &humidity,
			ChanceOfRain: chanceOfRain,
			WindKph:      &wind,
			Icon:         weather.Icon(condition, tempC),
		}
	}
	return days
}

// FindItem looks an item up by name across every category, returning
// its category or "" when absent.
func FindItem(items trip.Checklist, name string) string {
	for category, categoryItems := range items {
		if _, ok := categoryItems[name]; ok {
			return category
		}
	}
	return ""
}
