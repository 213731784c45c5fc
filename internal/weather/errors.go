package weather

import "errors"

// ErrLocationNotFound means the geocoder could not resolve the location
// string to coordinates. Generation can still proceed without weather.
var ErrLocationNotFound = errors.New("location not found")

// ErrSourcesUnavailable means both forecast sources failed. Callers
// decide whether to retry, fall back to synthetic data, or generate
// without a forecast.
var ErrSourcesUnavailable = errors.New("no forecast source available")
