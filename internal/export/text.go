// Package export renders a trip's checklist as a shareable report.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pablasso/maleta/internal/trip"
)

// categoryHeadings maps category keys to display headings. Categories
// not listed render as their upper-cased key.
var categoryHeadings = map[string]string{
	"clothes":           "👔 CLOTHES",
	"toiletries":        "🧴 TOILETRIES",
	"electronics":       "💻 ELECTRONICS",
	"documents":         "📄 DOCUMENTS",
	"weather_gear":      "☔ WEATHER GEAR",
	"business_items":    "💼 BUSINESS ITEMS",
	"formal_wear":       "👔 FORMAL WEAR",
	"hiking_gear":       "🥾 HIKING GEAR",
	"beach_gear":        "🏖️ BEACH GEAR",
	"photography_gear":  "📸 PHOTOGRAPHY",
	"fitness_gear":      "💪 FITNESS",
	"activity_items":    "🎯 ACTIVITY ITEMS",
	"travel_essentials": "✈️ TRAVEL ESSENTIALS",
	"baby_items":        "👶 BABY ITEMS",
}

// categoryOrder fixes the printout order of the known categories.
// Unknown categories follow, alphabetically.
var categoryOrder = []string{
	"clothes", "toiletries", "electronics", "documents", "weather_gear",
	"business_items", "formal_wear", "hiking_gear", "beach_gear",
	"photography_gear", "fitness_gear", "activity_items",
	"travel_essentials", "baby_items",
}

// Text renders the full text report for a trip.
func Text(t *trip.Trip) string {
	return text(t, time.Now())
}

func text(t *trip.Trip, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧳 PACKING LIST - %s\n", t.Attributes.Location)
	fmt.Fprintf(&b, "📅 %s | %d nights | %s\n\n",
		t.Attributes.StartDate.Format("Jan 2, 2006"), t.Attributes.Nights, t.Attributes.TripType)

	if t.Attributes.Notes != "" {
		fmt.Fprintf(&b, "📝 Notes: %s\n\n", t.Attributes.Notes)
	}

	if len(t.Weather) > 0 {
		b.WriteString("🌤️ WEATHER FORECAST:\n")
		for _, day := range t.Weather {
			fmt.Fprintf(&b, "• %s: %s, %d°C", day.Date, day.Condition, day.TempC)
			if day.ChanceOfRain > 30 {
				fmt.Fprintf(&b, " (%d%% rain)", day.ChanceOfRain)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	completed, total := t.Items.Progress()
	percentage := 0
	if total > 0 {
		percentage = int(float64(completed)/float64(total)*100 + 0.5)
	}
	fmt.Fprintf(&b, "📊 PROGRESS: %d/%d items (%d%%)\n\n", completed, total, percentage)

	for _, categoryKey := range SortedCategories(t.Items) {
		items := t.Items[categoryKey]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s:\n", Heading(categoryKey))

		for _, name := range SortedItemNames(items) {
			item := items[name]

			checkbox := "☐"
			if item.Completed {
				checkbox = "☑"
			}
			quantity := ""
			if item.Quantity > 1 {
				quantity = fmt.Sprintf(" (×%d)", item.Quantity)
			}
			essential := ""
			if item.Essential {
				essential = " *"
			}
			notes := ""
			if item.Notes != "" {
				notes = " - " + item.Notes
			}

			fmt.Fprintf(&b, "%s %s%s%s%s\n", checkbox, name, quantity, essential, notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("* = Essential items\n")
	fmt.Fprintf(&b, "Generated by maleta - %s", now.Format("Jan 2, 2006 15:04"))

	return b.String()
}

// Heading returns the display heading for a category key.
func Heading(categoryKey string) string {
	if h, ok := categoryHeadings[categoryKey]; ok {
		return h
	}
	return strings.ToUpper(categoryKey)
}

// SortedCategories orders known categories by the fixed display order
// and the rest alphabetically after them.
func SortedCategories(items trip.Checklist) []string {
	rank := make(map[string]int, len(categoryOrder))
	for i, key := range categoryOrder {
		rank[key] = i
	}

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := rank[keys[i]]
		rj, jKnown := rank[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	return keys
}

// SortedItemNames returns a category's item names alphabetically.
func SortedItemNames(items map[string]*trip.Item) []string {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
