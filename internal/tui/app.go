// Package tui implements the interactive checklist interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/maleta/internal/tui/msgs"
	"github.com/pablasso/maleta/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewTripList View = iota
	ViewChecklist
)

// Model is the main Bubble Tea model that orchestrates the views.
type Model struct {
	currentView View
	width       int
	height      int

	tripList  views.TripListModel
	checklist views.ChecklistModel
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func initialModel() Model {
	return Model{
		currentView: ViewTripList,
		tripList:    views.NewTripListModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the active view so it can resize too.

	case msgs.OpenTripMsg:
		m.checklist = views.NewChecklistModel(msg.Trip)
		m.currentView = ViewChecklist
		return m, m.checklist.Init()

	case msgs.GoToTripListMsg:
		m.tripList = views.NewTripListModel()
		m.currentView = ViewTripList
		return m, m.tripList.Init()
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewTripList:
		m.tripList, cmd = m.tripList.Update(msg)
	case ViewChecklist:
		m.checklist, cmd = m.checklist.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewChecklist:
		return m.checklist.View()
	default:
		return m.tripList.View()
	}
}
