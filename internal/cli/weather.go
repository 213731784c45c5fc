package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/config"
	"github.com/pablasso/maleta/internal/weather"
)

var (
	weatherDays     int
	weatherStart    string
	weatherOffline  bool
	weatherFallback bool
)

var weatherCmd = &cobra.Command{
	Use:   "weather <location>",
	Short: "Show the forecast for a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := args[0]

		start := time.Now()
		if weatherStart != "" {
			parsed, err := time.Parse("2006-01-02", weatherStart)
			if err != nil {
				return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", weatherStart, err)
			}
			start = parsed
		}

		var forecast []weather.Day
		if weatherOffline {
			forecast = weather.Synthetic(weatherDays, start)
		} else {
			svc := newWeatherService(config.Load(), weatherFallback)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			var err error
			forecast, err = svc.Forecast(ctx, location, weatherDays, start)
			if err != nil {
				return err
			}
		}

		fmt.Println(renderForecast(location, forecast))
		return nil
	},
}

func init() {
	weatherCmd.Flags().IntVarP(&weatherDays, "days", "d", 5, "Number of forecast days")
	weatherCmd.Flags().StringVar(&weatherStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	weatherCmd.Flags().BoolVar(&weatherOffline, "offline", false, "Use deterministic synthetic weather instead of fetching")
	weatherCmd.Flags().BoolVar(&weatherFallback, "fallback", false, "Fall back to synthetic weather when no forecast source is reachable")
}

var weatherCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	MarginRight(1)

// renderForecast draws each day as a bordered card.
func renderForecast(location string, forecast []weather.Day) string {
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Forecast for %s", location))

	cards := make([]string, 0, len(forecast))
	for _, day := range forecast {
		lines := fmt.Sprintf("%s\n%s %s\n%d°C  ↑%d° ↓%d°",
			day.Date, day.Icon, day.Condition, day.TempC, day.MaxTempC, day.MinTempC)
		if day.Humidity != nil {
			lines += fmt.Sprintf("\n💧 %d%%", *day.Humidity)
		}
		lines += fmt.Sprintf("  ☔ %d%%", day.ChanceOfRain)
		if day.WindKph != nil {
			lines += fmt.Sprintf("  🌬️ %.0f km/h", *day.WindKph)
		}
		cards = append(cards, weatherCardStyle.Render(lines))
	}

	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
