package ui

import "category-admin/internal/logging/events"

func (m *Model) moveCursorBy(delta int) {
	if m.list.MoveCursorBy(delta) {
		m.syncViewport()
		m.traceCursor()
	}
}

func (m *Model) cursorPageUp() {
	if m.list.MoveCursorPageUp(m.maxVisibleRows()) {
		m.syncViewport()
		m.traceCursor()
	}
}

func (m *Model) cursorPageDown() {
	if m.list.MoveCursorPageDown(m.maxVisibleRows()) {
		m.syncViewport()
		m.traceCursor()
	}
}

func (m *Model) cursorHome() {
	if m.list.MoveCursorHome() {
		m.syncViewport()
		m.traceCursor()
	}
}

func (m *Model) cursorEnd() {
	if m.list.MoveCursorEnd() {
		m.syncViewport()
		m.traceCursor()
	}
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) traceCursor() {
	if row, ok := m.list.Current(); ok {
		events.UI.ListCursor(m.list.Cursor, row.ID)
	}
}
