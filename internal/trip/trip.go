// Package trip defines the trip model, its packing checklist, and the
// JSON file storage for saved trips.
package trip

import (
	"errors"
	"fmt"
	"time"

	"github.com/pablasso/maleta/internal/weather"
)

// Attributes describes a trip as entered by the user. It is immutable
// input to checklist generation.
type Attributes struct {
	Location              string    `json:"location"`
	Nights                int       `json:"nights"`
	TripType              string    `json:"tripType"`
	StartDate             time.Time `json:"startDate"`
	Notes                 string    `json:"notes"`
	Activities            []string  `json:"activities"`
	Transportation        string    `json:"transportation,omitempty"`
	Accommodation         string    `json:"accommodation,omitempty"`
	TransportationOptions []string  `json:"transportationOptions,omitempty"`
	AccommodationOptions  []string  `json:"accommodationOptions,omitempty"`
}

// Trip is a saved trip: its attributes plus the fetched forecast and
// the generated checklist.
type Trip struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Attributes   Attributes    `json:"attributes"`
	Weather      []weather.Day `json:"weather,omitempty"`
	Items        Checklist     `json:"items"`
	CreatedAt    time.Time     `json:"createdAt"`
	LastModified time.Time     `json:"lastModified"`
}

// ErrInvalidAttributes is returned by Validate for malformed input.
// Generation itself treats valid attributes as a precondition; the
// check happens here, on the caller side.
var ErrInvalidAttributes = errors.New("invalid trip attributes")

// Validate checks the minimum contract for generation: a location and
// at least one night.
func (a Attributes) Validate() error {
	if a.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidAttributes)
	}
	if a.Nights < 1 {
		return fmt.Errorf("%w: nights must be at least 1, got %d", ErrInvalidAttributes, a.Nights)
	}
	return nil
}
