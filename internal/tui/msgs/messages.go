// Package msgs defines shared message types for TUI view transitions.
package msgs

import "github.com/pablasso/maleta/internal/trip"

// GoToTripListMsg signals transition back to the trip list view.
type GoToTripListMsg struct{}

// OpenTripMsg signals that the user selected a trip to work on.
type OpenTripMsg struct {
	Trip *trip.Trip
}

// TripSavedMsg is sent after a trip was persisted.
type TripSavedMsg struct {
	Err error
}
