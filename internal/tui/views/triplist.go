package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/tui/msgs"
	"github.com/pablasso/maleta/internal/tui/styles"
)

// TripListModel is the model for the saved-trip selection view.
type TripListModel struct {
	trips  []*trip.Trip
	cursor int
	width  int
	height int
}

// NewTripListModel creates the view and loads the saved trips.
func NewTripListModel() TripListModel {
	trips, _ := trip.List()
	return TripListModel{trips: trips}
}

// Init implements tea.Model.
func (m TripListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TripListModel) Update(msg tea.Msg) (TripListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if len(m.trips) == 0 {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.trips)-1 {
				m.cursor++
			}
		case "enter":
			selected := m.trips[m.cursor]
			return m, func() tea.Msg { return msgs.OpenTripMsg{Trip: selected} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m TripListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Your Trips"))
	b.WriteString("\n\n")

	if len(m.trips) == 0 {
		b.WriteString("No saved trips yet.\n\n")
		b.WriteString(styles.SubtleStyle.Render("Run `maleta generate --location <place>` to create one. q to quit."))
		return b.String()
	}

	for i, t := range m.trips {
		completed, total := t.Items.Progress()
		line := fmt.Sprintf("%s  %s, %d nights, %s  [%d/%d packed]",
			t.Name, t.Attributes.Location, t.Attributes.Nights, t.Attributes.TripType, completed, total)

		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBarStyle.Render("↑/↓ move · enter open · q quit"))

	return b.String()
}
