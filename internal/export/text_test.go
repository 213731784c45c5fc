package export

import (
	"strings"
	"testing"
	"time"

	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/weather"
)

func sampleTrip() *trip.Trip {
	return &trip.Trip{
		ID:   "abc123",
		Name: "reykjavik",
		Attributes: trip.Attributes{
			Location:  "Reykjavik",
			Nights:    3,
			TripType:  "camping",
			StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		Weather: []weather.Day{
			{Date: "Thu, Sep 10", Condition: "Light rain", TempC: 2, ChanceOfRain: 70},
			{Date: "Fri, Sep 11", Condition: "Cloudy", TempC: 4, ChanceOfRain: 10},
		},
		Items: trip.Checklist{
			"clothes": {
				"Underwear": {Quantity: 4, Essential: true, Completed: true, Notes: "Pack extras for comfort"},
				"Socks":     {Quantity: 4, Essential: true},
			},
			"camping_gear": {
				"Tent": {Quantity: 1, Essential: true},
			},
		},
	}
}

func TestText(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	got := text(sampleTrip(), now)

	wantLines := []string{
		"🧳 PACKING LIST - Reykjavik",
		"📅 Sep 10, 2026 | 3 nights | camping",
		"🌤️ WEATHER FORECAST:",
		"• Thu, Sep 10: Light rain, 2°C (70% rain)",
		"• Fri, Sep 11: Cloudy, 4°C",
		"📊 PROGRESS: 1/3 items (33%)",
		"👔 CLOTHES:",
		"☐ Socks (×4) *",
		"☑ Underwear (×4) * - Pack extras for comfort",
		"CAMPING_GEAR:",
		"☐ Tent *",
		"* = Essential items",
		"Generated by maleta - Sep 1, 2026 14:30",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line+"\n") && !strings.HasSuffix(got, line) {
			t.Errorf("report is missing line %q\n---\n%s", line, got)
		}
	}

	// Rain probability is only called out above the threshold.
	if strings.Contains(got, "(10% rain)") {
		t.Error("low rain chance should not be annotated")
	}

	// Known categories come before unknown ones.
	if strings.Index(got, "👔 CLOTHES:") > strings.Index(got, "CAMPING_GEAR:") {
		t.Error("clothes should print before unknown categories")
	}
}

func TestText_EmptyChecklist(t *testing.T) {
	tr := sampleTrip()
	tr.Items = trip.Checklist{}
	tr.Weather = nil

	got := text(tr, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC))

	if !strings.Contains(got, "📊 PROGRESS: 0/0 items (0%)") {
		t.Errorf("want zero progress without items, got:\n%s", got)
	}
	if strings.Contains(got, "WEATHER FORECAST") {
		t.Error("weather block should be omitted without forecast data")
	}
}

func TestText_NotesBlock(t *testing.T) {
	tr := sampleTrip()
	tr.Attributes.Notes = "bring the wedding gift"

	got := text(tr, time.Now())
	if !strings.Contains(got, "📝 Notes: bring the wedding gift\n") {
		t.Errorf("want notes block, got:\n%s", got)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading("clothes"); got != "👔 CLOTHES" {
		t.Errorf("Heading(clothes) = %q", got)
	}
	if got := Heading("spelunking_gear"); got != "SPELUNKING_GEAR" {
		t.Errorf("Heading(spelunking_gear) = %q, want upper-cased key", got)
	}
}

func TestSortedCategories(t *testing.T) {
	items := trip.Checklist{
		"zebra_gear":   {},
		"documents":    {},
		"clothes":      {},
		"camping_gear": {},
	}

	got := SortedCategories(items)
	want := []string{"clothes", "documents", "camping_gear", "zebra_gear"}

	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}
