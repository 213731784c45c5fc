package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/pablasso/maleta/internal/trip"
)

// PDF renders the same report as Text as a single-column PDF document.
// gofpdf's core fonts only cover latin-1, so the emoji glyphs of the
// text report are dropped here.
func PDF(t *trip.Trip, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, fmt.Sprintf("Packing List - %s", t.Attributes.Location), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s | %d nights | %s",
		t.Attributes.StartDate.Format("Jan 2, 2006"), t.Attributes.Nights, t.Attributes.TripType), "", 1, "L", false, 0, "")

	if t.Attributes.Notes != "" {
		pdf.MultiCell(0, 7, "Notes: "+t.Attributes.Notes, "", "L", false)
	}
	pdf.Ln(3)

	if len(t.Weather) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Weather Forecast", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, day := range t.Weather {
			line := fmt.Sprintf("%s: %s, %d C", day.Date, day.Condition, day.TempC)
			if day.ChanceOfRain > 30 {
				line += fmt.Sprintf(" (%d%% rain)", day.ChanceOfRain)
			}
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	completed, total := t.Items.Progress()
	percentage := 0
	if total > 0 {
		percentage = int(float64(completed)/float64(total)*100 + 0.5)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Progress: %d/%d items (%d%%)", completed, total, percentage), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, categoryKey := range SortedCategories(t.Items) {
		items := t.Items[categoryKey]
		if len(items) == 0 {
			continue
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, plainHeading(categoryKey), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, name := range SortedItemNames(items) {
			item := items[name]

			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			line := fmt.Sprintf("%s %s", box, name)
			if item.Quantity > 1 {
				line += fmt.Sprintf(" (x%d)", item.Quantity)
			}
			if item.Essential {
				line += " *"
			}
			if item.Notes != "" {
				line += " - " + item.Notes
			}
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "* = Essential items", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated by maleta - "+time.Now().Format("Jan 2, 2006 15:04"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// plainHeading is the category heading without its emoji prefix.
func plainHeading(categoryKey string) string {
	h := Heading(categoryKey)
	for i, r := range h {
		if r >= 'A' && r <= 'Z' {
			return h[i:]
		}
	}
	return h
}
