// Package rules holds the declarative packing rule tables and the
// quantity calculator. The tables are data: the generation engine folds
// over them without knowing what any individual rule means, so new
// items or trigger groups are added here without touching engine code.
package rules

import (
	"strings"

	"github.com/pablasso/maleta/internal/weather"
)

// ItemRule describes how one packable item behaves. Multiplier is the
// quantity per night; zero means exactly one regardless of duration.
type ItemRule struct {
	Multiplier  float64
	Essential   bool
	Min         int // 0 = no minimum
	Max         int // 0 = no maximum
	Description string

	// ExcludeForTripTypes skips the item while seeding essentials for
	// the listed trip types.
	ExcludeForTripTypes []string
}

// ItemSet maps item name to its rule.
type ItemSet map[string]ItemRule

// EssentialCategory is one category of the always-packed base items.
type EssentialCategory struct {
	Key   string
	Icon  string
	Items ItemSet
}

// WeatherGroup contributes items when its trigger matches the
// forecast. All matching groups contribute; merging is additive.
type WeatherGroup struct {
	Name    string
	Trigger func(forecast []weather.Day) bool
	Items   ItemSet
}

// TempBand selects clothing for the average trip temperature. The
// bands are contiguous and exhaustive: exactly one matches any value.
type TempBand struct {
	Name  string
	Match func(avgTemp int) bool
	Items ItemSet
}

// ActivityRule contributes gear for one activity tag. Category names
// the checklist category to merge into; empty falls back to
// "<activity>_gear".
type ActivityRule struct {
	Category string
	Items    ItemSet
}

// CategoryItems is one category's worth of trip-type items.
type CategoryItems struct {
	Category string
	Items    ItemSet
}

// TripTypeRule contributes category-keyed item sets for a trip type.
type TripTypeRule struct {
	Categories []CategoryItems
}

// DurationBand selects travel essentials by trip length. Exactly one
// band matches any nights value >= 1.
type DurationBand struct {
	Name  string
	Match func(nights int) bool
	Items ItemSet
}

// KeywordRule contributes items when its keyword appears in the trip's
// free-text notes. Every matching keyword contributes.
type KeywordRule struct {
	Keyword  string
	Category string
	Items    ItemSet
}

// Replacement removes items made redundant by other selected items: if
// any trigger name exists as an item key in any category, every item
// whose name contains (case-insensitively) one of the Removes strings
// is deleted, in every category.
type Replacement struct {
	Triggers []string
	Removes  []string
}

// TripTypeInfo describes a trip type for selection and display.
type TripTypeInfo struct {
	Name              string
	Description       string
	DefaultActivities []string
}

// ActivityInfo describes an activity tag for selection and display.
type ActivityInfo struct {
	Name string
	Icon string
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
