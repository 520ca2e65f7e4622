package state

import "testing"

func rowsOf(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{ID: string(rune('a' + i))}
	}
	return rows
}

func TestMoveCursorByClampsToRange(t *testing.T) {
	l := NewList(rowsOf(3))
	l.Cursor = 0

	if !l.MoveCursorBy(1) {
		t.Fatalf("expected cursor to move down")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	l.MoveCursorBy(10)
	if l.Cursor != 2 {
		t.Fatalf("expected clamp at last row, got %d", l.Cursor)
	}
	if l.MoveCursorBy(1) {
		t.Fatalf("moving past the end must report no change")
	}
	l.MoveCursorBy(-10)
	if l.Cursor != 0 {
		t.Fatalf("expected clamp at first row, got %d", l.Cursor)
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := NewList(rowsOf(5))
	l.Cursor = 2

	if !l.MoveCursorEnd() {
		t.Fatalf("expected end to move the cursor")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() {
		t.Fatalf("expected home to move the cursor")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if l.MoveCursorHome() {
		t.Fatalf("home at the top must report no change")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := NewList(rowsOf(10))
	l.Cursor = 0

	l.MoveCursorPageDown(4)
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", l.Cursor)
	}
	l.MoveCursorPageDown(4)
	l.MoveCursorPageDown(4)
	if l.Cursor != 9 {
		t.Fatalf("expected clamp at 9, got %d", l.Cursor)
	}
	l.MoveCursorPageUp(4)
	if l.Cursor != 5 {
		t.Fatalf("expected cursor 5 after page up, got %d", l.Cursor)
	}
}

func TestCursorOnEmptyList(t *testing.T) {
	l := NewList(nil)
	if l.MoveCursorBy(1) || l.MoveCursorEnd() || l.MoveCursorPageDown(5) {
		t.Fatalf("cursor moves on an empty list must report no change")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	l := NewList(rowsOf(10))

	l.Cursor = 7
	l.EnsureCursorVisible(4)
	if l.ViewportOffset != 4 {
		t.Fatalf("expected offset 4, got %d", l.ViewportOffset)
	}

	l.Cursor = 1
	l.EnsureCursorVisible(4)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleClampsOffset(t *testing.T) {
	l := NewList(rowsOf(3))
	l.ViewportOffset = 9
	l.Cursor = 2

	l.EnsureCursorVisible(5)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", l.ViewportOffset)
	}
}
