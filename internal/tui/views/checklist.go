package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/maleta/internal/export"
	"github.com/pablasso/maleta/internal/trip"
	"github.com/pablasso/maleta/internal/tui/components"
	"github.com/pablasso/maleta/internal/tui/msgs"
	"github.com/pablasso/maleta/internal/tui/styles"
)

// checklistRow is one selectable item line, addressed by category and
// item name.
type checklistRow struct {
	category string
	name     string
}

// ChecklistModel is the model for the interactive checklist view.
type ChecklistModel struct {
	trip   *trip.Trip
	rows   []checklistRow
	cursor int

	editingNote bool
	addingItem  bool
	input       textinput.Model

	dirty     bool
	statusMsg string
	width     int
	height    int
}

// NewChecklistModel creates the view for one trip.
func NewChecklistModel(t *trip.Trip) ChecklistModel {
	input := textinput.New()
	input.CharLimit = 120

	m := ChecklistModel{
		trip:  t,
		input: input,
	}
	m.rows = buildRows(t.Items)
	return m
}

// buildRows flattens the checklist into display order: the export
// package's category order, items alphabetical within each category.
func buildRows(items trip.Checklist) []checklistRow {
	var rows []checklistRow
	for _, category := range export.SortedCategories(items) {
		for _, name := range export.SortedItemNames(items[category]) {
			rows = append(rows, checklistRow{category: category, name: name})
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ChecklistModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChecklistModel) Update(msg tea.Msg) (ChecklistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.TripSavedMsg:
		if msg.Err != nil {
			m.statusMsg = styles.ErrorStyle.Render(fmt.Sprintf("Save failed: %v", msg.Err))
		} else {
			m.dirty = false
			m.statusMsg = styles.SuccessStyle.Render("Saved")
		}
		return m, nil

	case tea.KeyMsg:
		if m.editingNote {
			return m.updateNoteInput(msg)
		}
		if m.addingItem {
			return m.updateItemInput(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			back := func() tea.Msg { return msgs.GoToTripListMsg{} }
			if m.dirty {
				return m, tea.Batch(m.saveCmd(), back)
			}
			return m, back
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case " ", "enter":
			if row, ok := m.currentRow(); ok {
				m.trip.Items.Toggle(row.category, row.name)
				m.dirty = true
				m.statusMsg = ""
			}
		case "n":
			if row, ok := m.currentRow(); ok {
				m.editingNote = true
				m.input.Placeholder = "note"
				m.input.SetValue(m.trip.Items[row.category][row.name].Notes)
				m.input.Focus()
				return m, textinput.Blink
			}
		case "a":
			m.addingItem = true
			m.input.Placeholder = "item name"
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "s":
			return m, m.saveCmd()
		}
	}
	return m, nil
}

func (m ChecklistModel) updateNoteInput(msg tea.KeyMsg) (ChecklistModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if row, ok := m.currentRow(); ok {
			m.trip.Items.SetNote(row.category, row.name, m.input.Value())
			m.dirty = true
		}
		m.editingNote = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editingNote = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChecklistModel) updateItemInput(msg tea.KeyMsg) (ChecklistModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if name := strings.TrimSpace(m.input.Value()); name != "" {
			// New items join the category under the cursor; an empty
			// checklist gets a custom category.
			category := "custom"
			if row, ok := m.currentRow(); ok {
				category = row.category
			}
			m.trip.Items.AddCustom(category, name, 1)
			m.rows = buildRows(m.trip.Items)
			m.dirty = true
			m.statusMsg = ""
		}
		m.addingItem = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.addingItem = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChecklistModel) currentRow() (checklistRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return checklistRow{}, false
	}
	return m.rows[m.cursor], true
}

// saveCmd persists the trip off the update loop.
func (m ChecklistModel) saveCmd() tea.Cmd {
	t := m.trip
	return func() tea.Msg {
		return msgs.TripSavedMsg{Err: trip.Save(t)}
	}
}

// View implements tea.Model.
func (m ChecklistModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s — %d nights, %s", m.trip.Attributes.Location, m.trip.Attributes.Nights, m.trip.Attributes.TripType)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	completed, total := m.trip.Items.Progress()
	b.WriteString(components.NewProgress(completed, total, 24).View())
	b.WriteString("\n\n")

	lastCategory := ""
	for i, row := range m.rows {
		if row.category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(styles.CategoryStyle.Render(export.Heading(row.category)))
			b.WriteString("\n")
			lastCategory = row.category
		}

		item := m.trip.Items[row.category][row.name]

		checkbox := "☐"
		if item.Completed {
			checkbox = "☑"
		}
		label := row.name
		if item.Quantity > 1 {
			label = fmt.Sprintf("%s (×%d)", row.name, item.Quantity)
		}
		if item.Essential {
			label += " *"
		}

		line := fmt.Sprintf("%s %s", checkbox, label)
		switch {
		case i == m.cursor:
			line = styles.SelectedStyle.Render("> " + line)
		case item.Completed:
			line = "  " + styles.CompletedStyle.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editingNote {
		b.WriteString("Note: " + m.input.View())
		b.WriteString("\n")
	}
	if m.addingItem {
		b.WriteString("Add item: " + m.input.View())
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString(m.statusMsg)
		b.WriteString("\n")
	}
	b.WriteString(styles.StatusBarStyle.Render("space toggle · a add · n note · s save · esc back · ctrl+c quit"))

	return b.String()
}
