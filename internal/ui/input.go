package ui

import (
	"category-admin/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		return m.openEditForm()
	case "ctrl+n":
		return m.openCreateForm()
	case "ctrl+d":
		return m.openDeleteConfirm()
	case "ctrl+t":
		m.toggleTheme()
		return nil
	case "up":
		m.moveCursorBy(-1)
		return nil
	case "down":
		m.moveCursorBy(1)
		return nil
	case "pgup":
		m.cursorPageUp()
		return nil
	case "pgdown":
		m.cursorPageDown()
		return nil
	case "home":
		m.cursorHome()
		return nil
	case "end":
		m.cursorEnd()
		return nil
	}
	return m.updateSearch(msg)
}

// updateSearch feeds the key press into the search input and reapplies
// the filter when the query changed. Cursor movement keys never reach
// here, so typing and navigating stay independent.
func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	after := m.search.Value()
	if after != before {
		m.list.SetFilter(after)
		m.syncViewport()
		if after == "" {
			events.Filter.Cleared()
		} else {
			events.Filter.Changed(after, len(m.list.Rows))
		}
	}
	return cmd
}
