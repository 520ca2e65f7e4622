// Package state tracks category list state: rows, search filter, cursor
// position, and viewport offset.
package state

// Row is a single renderable list entry. SearchText is the lowercased
// text the search filter matches against; it spans every name field of
// the underlying category, not just the rendered label.
type Row struct {
	ID         string
	Label      string
	SearchText string
}

// List encapsulates the visible category list: the full row set, the
// filtered view, and cursor/viewport bookkeeping.
type List struct {
	Rows           []Row
	Full           []Row
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a list from the provided rows.
func NewList(rows []Row) *List {
	l := &List{
		Cursor:     -1,
		LastCursor: -1,
	}
	l.SetRows(rows)
	return l
}

// IndexOf returns the index for a given row identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *List) Current() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// SetRows refreshes the full row set, reapplying the active filter and
// preserving the viewport offset where possible.
func (l *List) SetRows(rows []Row) {
	prevOffset := l.ViewportOffset
	l.Full = CloneRows(rows)
	l.applyFilter()
	if len(l.Rows) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
