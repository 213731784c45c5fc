package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/maleta/internal/config"
	"github.com/pablasso/maleta/internal/export"
	"github.com/pablasso/maleta/internal/generate"
	"github.com/pablasso/maleta/internal/rules"
	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/util"
	"github.com/pablasso/maleta/internal/weather"
)

var (
	genLocation      string
	genNights        int
	genTripType      string
	genStart         string
	genNotes         string
	genActivities    []string
	genTransport     string
	genAccommodation string
	genName          string
	genNoWeather     bool
	genOffline       bool
	genFallback      bool
	genNoSave        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a packing checklist for a trip",
	Long: `Generate builds a packing checklist from the trip details and the
weather forecast for the destination, then saves the trip for tracking.

The forecast is best effort: if no weather source is reachable the
checklist is generated for a mild climate instead of failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		attrs, err := buildAttributes()
		if err != nil {
			return err
		}

		cfg := config.Load()

		var forecast []weather.Day
		switch {
		case genNoWeather:
			// Generation degrades to the default temperature path.
		case genOffline:
			forecast = weather.Synthetic(attrs.Nights, attrs.StartDate)
		default:
			fmt.Printf("Fetching forecast for %s...\n", attrs.Location)
			svc := newWeatherService(cfg, genFallback)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			forecast, err = svc.Forecast(ctx, attrs.Location, attrs.Nights, attrs.StartDate)
			if err != nil {
				if errors.Is(err, weather.ErrLocationNotFound) {
					fmt.Printf("Warning: %v; generating without weather data\n", err)
				} else {
					fmt.Printf("Warning: forecast unavailable (%v); generating without weather data\n", err)
				}
				forecast = nil
			}
		}

		items := generate.Generate(attrs, forecast)

		t := &trip.Trip{
			Attributes: attrs,
			Weather:    forecast,
			Items:      items,
			CreatedAt:  time.Now(),
		}

		if genNoSave {
			fmt.Println(export.Text(t))
			return nil
		}

		if err := saveNewTrip(t); err != nil {
			return err
		}

		_, total := items.Progress()
		fmt.Printf("Created trip %s-%s with %d items across %d categories\n",
			t.ID, t.Name, total, len(items))
		fmt.Printf("Run `maleta show %s` to see the checklist, or `maleta` for the interactive view.\n", t.ID)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genLocation, "location", "l", "", "Trip destination (required)")
	generateCmd.Flags().IntVarP(&genNights, "nights", "n", 5, "Number of nights")
	generateCmd.Flags().StringVarP(&genTripType, "type", "t", "leisure", "Trip type: business|leisure|camping|winter-sports|beach|city-break")
	generateCmd.Flags().StringVar(&genStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	generateCmd.Flags().StringVar(&genNotes, "notes", "", "Free-text notes; keywords like formal, wedding, conference, baby add items")
	generateCmd.Flags().StringSliceVarP(&genActivities, "activity", "a", nil, "Activity tags (repeatable); defaults follow the trip type")
	generateCmd.Flags().StringVar(&genTransport, "transport", "", "Transportation: car|plane|train|bus")
	generateCmd.Flags().StringVar(&genAccommodation, "accommodation", "", "Accommodation: hotel|hostel|camping|rental")
	generateCmd.Flags().StringVar(&genName, "name", "", "Name for the saved trip (default derived from location)")
	generateCmd.Flags().BoolVar(&genNoWeather, "no-weather", false, "Skip the forecast fetch")
	generateCmd.Flags().BoolVar(&genOffline, "offline", false, "Use deterministic synthetic weather instead of fetching")
	generateCmd.Flags().BoolVar(&genFallback, "fallback", false, "Fall back to synthetic weather when no forecast source is reachable")
	generateCmd.Flags().BoolVar(&genNoSave, "no-save", false, "Print the checklist without saving the trip")
	_ = generateCmd.MarkFlagRequired("location")
}

// buildAttributes validates the flags into trip attributes. Invalid
// input is rejected here; the engine itself assumes a valid trip.
func buildAttributes() (trip.Attributes, error) {
	start := time.Now()
	if genStart != "" {
		parsed, err := time.Parse("2006-01-02", genStart)
		if err != nil {
			return trip.Attributes{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", genStart, err)
		}
		start = parsed
	}

	tripType := strings.ToLower(genTripType)
	info, ok := rules.TripTypeCatalog[tripType]
	if !ok {
		return trip.Attributes{}, fmt.Errorf("unknown trip type %q", genTripType)
	}

	activities := genActivities
	if len(activities) == 0 {
		activities = info.DefaultActivities
	}
	for _, a := range activities {
		if _, ok := rules.ActivityCatalog[a]; !ok {
			return trip.Attributes{}, fmt.Errorf("unknown activity %q", a)
		}
	}

	attrs := trip.Attributes{
		Location:       genLocation,
		Nights:         genNights,
		TripType:       tripType,
		StartDate:      start,
		Notes:          genNotes,
		Activities:     activities,
		Transportation: genTransport,
		Accommodation:  genAccommodation,
	}

	if err := attrs.Validate(); err != nil {
		return trip.Attributes{}, err
	}
	return attrs, nil
}

// saveNewTrip assigns an ID and collision-free name, then persists.
func saveNewTrip(t *trip.Trip) error {
	id, err := util.GenerateShortID()
	if err != nil {
		return fmt.Errorf("failed to generate trip ID: %w", err)
	}
	t.ID = id

	base := genName
	if base == "" {
		base = t.Attributes.Location
	}
	name, err := trip.ResolveName(util.KebabCase(base))
	if err != nil {
		return err
	}
	t.Name = name

	return trip.Save(t)
}
