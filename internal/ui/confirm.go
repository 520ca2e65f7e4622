package ui

import (
	"category-admin/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const confirmQuestion = "Haqiqatdan ham oʻchirmoqchimisiz?"

func (m *Model) openDeleteConfirm() tea.Cmd {
	if !m.canMutate() {
		return nil
	}
	row, ok := m.list.Current()
	if !ok {
		return nil
	}
	category, ok := m.session.Find(row.ID)
	if !ok {
		return nil
	}
	m.pendingDelete = &category
	m.mode = ModeConfirm
	events.Form.ConfirmPrompt(category.ID)
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "y", "Y", "enter":
		return m.acceptDelete()
	case "n", "N", "esc":
		m.declineDelete()
		return nil
	}
	return nil
}

func (m *Model) acceptDelete() tea.Cmd {
	pending := m.pendingDelete
	m.pendingDelete = nil
	m.mode = ModeList
	if pending == nil || m.busy {
		return nil
	}
	events.Form.ConfirmAccept(pending.ID)
	m.busy = true
	return m.deleteCategoryCmd(m.epoch, pending.ID)
}

// declineDelete abandons the prompt without touching the backend.
func (m *Model) declineDelete() {
	if m.pendingDelete != nil {
		events.Form.ConfirmDecline(m.pendingDelete.ID)
	}
	m.pendingDelete = nil
	m.mode = ModeList
}
