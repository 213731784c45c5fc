package weather

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// primaryRangeDays is how far ahead the primary source stays accurate.
// Trips starting beyond this window go straight to the secondary
// source, which serves explicit date ranges.
const primaryRangeDays = 3

// Service chains the forecast sources: primary first when the trip is
// near enough, then secondary. Each source gets a single attempt, no
// retries. The synthetic generator only participates when
// UseSyntheticFallback is set, otherwise both sources failing surfaces
// an error and the caller decides.
type Service struct {
	Primary   *WeatherAPIClient
	Secondary *OpenMeteoClient

	// UseSyntheticFallback chains deterministic synthetic data after
	// both real sources fail instead of returning an error.
	UseSyntheticFallback bool

	// Now is the clock, replaceable in tests.
	Now func() time.Time
}

// NewService builds a Service over the production clients. An empty
// apiKey disables the primary source.
func NewService(apiKey string) *Service {
	s := &Service{
		Secondary: NewOpenMeteoClient(),
		Now:       time.Now,
	}
	if apiKey != "" {
		s.Primary = NewWeatherAPIClient(apiKey)
	}
	return s
}

// Forecast fetches a normalized forecast for the trip. Geocode failures
// are reported as ErrLocationNotFound; any other double failure as
// ErrSourcesUnavailable. Both wrap the underlying cause.
func (s *Service) Forecast(ctx context.Context, location string, nights int, start time.Time) ([]Day, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	daysAhead := int(start.Sub(now).Hours() / 24)

	var primaryErr error
	if s.Primary != nil && daysAhead <= primaryRangeDays {
		forecast, err := s.Primary.Forecast(ctx, location, nights)
		if err == nil && len(forecast) > 0 {
			return forecast, nil
		}
		primaryErr = err
	}

	if s.Secondary != nil {
		forecast, err := s.Secondary.Forecast(ctx, location, nights, start)
		if err == nil && len(forecast) > 0 {
			return forecast, nil
		}
		if errors.Is(err, ErrLocationNotFound) && !s.UseSyntheticFallback {
			return nil, err
		}
		if s.UseSyntheticFallback {
			return Synthetic(nights, now), nil
		}
		if primaryErr != nil {
			return nil, fmt.Errorf("%w: primary: %v; secondary: %v", ErrSourcesUnavailable, primaryErr, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrSourcesUnavailable, err)
	}

	if s.UseSyntheticFallback {
		return Synthetic(nights, now), nil
	}
	if primaryErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourcesUnavailable, primaryErr)
	}
	return nil, ErrSourcesUnavailable
}
