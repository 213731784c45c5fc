// Package generate builds a packing checklist from trip attributes and
// an optional weather forecast.
//
// Generation is a deterministic fold over the rule tables in a fixed
// order: essentials, temperature clothing, the conditional groups,
// then a replacement pass and a final quantity adjustment. Later steps
// may overwrite or remove earlier contributions under the same item
// name, so the step order is part of the contract.
package generate

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pablasso/maleta/internal/rules"
	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/weather"
)

// defaultAvgTemp is assumed when no forecast is available.
const defaultAvgTemp = 20

// Generate produces a fresh checklist for the trip. A nil or empty
// forecast skips the weather-derived rules and assumes a mild average
// temperature; it never aborts generation. Valid attributes
// (nights >= 1) are a precondition checked by the caller.
func Generate(attrs trip.Attributes, forecast []weather.Day) trip.Checklist {
	items := make(trip.Checklist)

	addEssentials(items, attrs)

	avgTemp := averageTemperature(forecast)
	addTemperatureClothing(items, avgTemp, attrs.Nights)

	addWeatherItems(items, forecast, attrs.Nights)
	addActivityItems(items, attrs)
	addTripTypeItems(items, attrs)
	addDurationItems(items, attrs.Nights)
	addKeywordItems(items, attrs)

	removeReplacedItems(items)
	adjustQuantities(items, attrs.Nights)

	return items
}

// addEssentials seeds the base categories everyone needs.
func addEssentials(items trip.Checklist, attrs trip.Attributes) {
	for _, category := range rules.Essentials {
		for name, rule := range category.Items {
			if slices.Contains(rule.ExcludeForTripTypes, attrs.TripType) {
				continue
			}
			items.Set(category.Key, name, &trip.Item{
				Quantity:  rules.Quantity(rule, attrs.Nights),
				Essential: rule.Essential,
				Notes:     rule.Description,
			})
		}
	}
}

// averageTemperature is the rounded mean of the daily means, or the
// default when no forecast is present. Halves round toward positive
// infinity, so a mean of exactly -0.5 lands at 0 and stays out of the
// freezing band.
func averageTemperature(forecast []weather.Day) int {
	if len(forecast) == 0 {
		return defaultAvgTemp
	}

	sum := 0
	for _, day := range forecast {
		sum += day.TempC
	}
	return int(math.Floor(float64(sum)/float64(len(forecast)) + 0.5))
}

// addTemperatureClothing merges the matching temperature band's
// clothing into the clothes category.
func addTemperatureClothing(items trip.Checklist, avgTemp, nights int) {
	for _, band := range rules.TemperatureBands {
		if !band.Match(avgTemp) {
			continue
		}
		for name, rule := range band.Items {
			items.Set("clothes", name, &trip.Item{
				Quantity:  rules.Quantity(rule, nights),
				Essential: rule.Essential,
				Notes:     fmt.Sprintf("Added for %s weather (%d°C avg)", band.Name, avgTemp),
			})
		}
	}
}

// addWeatherItems evaluates the forecast-triggered groups. Without a
// forecast none of them run.
func addWeatherItems(items trip.Checklist, forecast []weather.Day, nights int) {
	if len(forecast) == 0 {
		return
	}
	for _, group := range rules.WeatherGroups {
		if group.Trigger(forecast) {
			mergeItems(items, "weather_gear", group.Items, group.Name+" weather", nights)
		}
	}
}

func addActivityItems(items trip.Checklist, attrs trip.Attributes) {
	for _, activity := range attrs.Activities {
		rule, ok := rules.Activities[activity]
		if !ok {
			continue
		}
		category := rule.Category
		if category == "" {
			category = activity + "_gear"
		}
		mergeItems(items, category, rule.Items, activity+" activities", attrs.Nights)
	}
}

func addTripTypeItems(items trip.Checklist, attrs trip.Attributes) {
	rule, ok := rules.TripTypes[attrs.TripType]
	if !ok {
		return
	}
	for _, ci := range rule.Categories {
		mergeItems(items, ci.Category, ci.Items, attrs.TripType+" trip", attrs.Nights)
	}
}

func addDurationItems(items trip.Checklist, nights int) {
	for _, band := range rules.DurationBands {
		if band.Match(nights) {
			mergeItems(items, "travel_essentials", band.Items, band.Name+" trip", nights)
		}
	}
}

func addKeywordItems(items trip.Checklist, attrs trip.Attributes) {
	if attrs.Notes == "" {
		return
	}
	notes := strings.ToLower(attrs.Notes)
	for _, kw := range rules.Keywords {
		if strings.Contains(notes, kw.Keyword) {
			mergeItems(items, kw.Category, kw.Items, kw.Keyword+" mentioned in notes", attrs.Nights)
		}
	}
}

// mergeItems writes a rule group's items into one category, recording
// why each item was added. Merging is by name: a later group writing
// an existing name overwrites it entirely.
func mergeItems(items trip.Checklist, category string, set rules.ItemSet, reason string, nights int) {
	for name, rule := range set {
		notes := "Added for " + reason
		if rule.Description != "" {
			notes = fmt.Sprintf("%s (%s)", rule.Description, reason)
		}
		items.Set(category, name, &trip.Item{
			Quantity:  rules.Quantity(rule, nights),
			Essential: rule.Essential,
			Notes:     notes,
		})
	}
}

// removeReplacedItems applies the replacement rules: when a triggering
// item name exists as a key anywhere, every item whose name contains
// one of the targeted strings (case-insensitive) is deleted from every
// category. Categories emptied by the pass are pruned.
func removeReplacedItems(items trip.Checklist) {
	type removal struct{ category, name string }
	var toRemove []removal

	for _, rule := range rules.Replacements {
		triggered := false
		for _, trigger := range rule.Triggers {
			for _, categoryItems := range items {
				if _, ok := categoryItems[trigger]; ok {
					triggered = true
					break
				}
			}
			if triggered {
				break
			}
		}
		if !triggered {
			continue
		}

		for categoryKey, categoryItems := range items {
			for name := range categoryItems {
				lower := strings.ToLower(name)
				for _, removed := range rule.Removes {
					if strings.Contains(lower, strings.ToLower(removed)) {
						toRemove = append(toRemove, removal{categoryKey, name})
						break
					}
				}
			}
		}
	}

	for _, r := range toRemove {
		delete(items[r.category], r.name)
	}

	for categoryKey, categoryItems := range items {
		if len(categoryItems) == 0 {
			delete(items, categoryKey)
		}
	}
}

// adjustQuantities scales multiples for very short or very long trips.
// Single units stay single.
func adjustQuantities(items trip.Checklist, nights int) {
	factor := rules.AdjustmentFactor(nights)
	if factor == 1.0 {
		return
	}
	for _, categoryItems := range items {
		for _, item := range categoryItems {
			if item.Quantity > 1 {
				item.Quantity = int(math.Ceil(float64(item.Quantity) * factor))
			}
		}
	}
}
