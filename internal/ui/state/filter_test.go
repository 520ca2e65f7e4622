package state

import "testing"

func sampleRows() []Row {
	return []Row{
		{ID: "c-1", Label: "Mevalar", SearchText: "mevalar мевалар фрукты fruits"},
		{ID: "c-2", Label: "Sabzavotlar", SearchText: "sabzavotlar сабзавотлар овощи vegetables"},
		{ID: "c-3", Label: "Ichimliklar", SearchText: "ichimliklar ичимликлар напитки drinks"},
		{ID: "c-4", Label: "Mevali sharbatlar", SearchText: "mevali sharbatlar мевали шарбатлар"},
	}
}

func TestFilterRowsMatchesSubstring(t *testing.T) {
	rows := FilterRows(sampleRows(), "meva")
	if len(rows) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(rows))
	}
	if rows[0].ID != "c-1" || rows[1].ID != "c-4" {
		t.Fatalf("filter must preserve row order, got %s %s", rows[0].ID, rows[1].ID)
	}
}

func TestFilterRowsIsCaseInsensitive(t *testing.T) {
	rows := FilterRows(sampleRows(), "  MEVA ")
	if len(rows) != 2 {
		t.Fatalf("expected case-insensitive trimmed match, got %d rows", len(rows))
	}
}

func TestFilterRowsMatchesNonLatinNames(t *testing.T) {
	rows := FilterRows(sampleRows(), "фрукты")
	if len(rows) != 1 || rows[0].ID != "c-1" {
		t.Fatalf("expected match on russian name, got %+v", rows)
	}
}

func TestFilterRowsEmptyQueryReturnsAll(t *testing.T) {
	rows := FilterRows(sampleRows(), "   ")
	if len(rows) != len(sampleRows()) {
		t.Fatalf("expected all rows, got %d", len(rows))
	}
}

func TestFilterRowsNoMatch(t *testing.T) {
	rows := FilterRows(sampleRows(), "zzz")
	if len(rows) != 0 {
		t.Fatalf("expected no matches, got %d", len(rows))
	}
}

func TestSetFilterNarrowsAndClearsBack(t *testing.T) {
	l := NewList(sampleRows())
	l.Cursor = 2

	l.SetFilter("sabza")
	if len(l.Rows) != 1 || l.Rows[0].ID != "c-2" {
		t.Fatalf("expected single filtered row, got %+v", l.Rows)
	}

	l.SetFilter("")
	if len(l.Rows) != 4 {
		t.Fatalf("expected full set after clearing, got %d", len(l.Rows))
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
}

func TestSetFilterCursorLandsOnBestMatch(t *testing.T) {
	l := NewList(sampleRows())

	l.SetFilter("ichimliklar")
	if row, ok := l.Current(); !ok || row.ID != "c-3" {
		t.Fatalf("expected cursor on exact match, got %+v", row)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	rows := []Row{
		{ID: "a", Label: "Meva"},
		{ID: "b", Label: "Mevalar"},
		{ID: "c", Label: "Sabzavot"},
	}
	if idx := BestMatchIndex(rows, "mevalar"); idx != 1 {
		t.Fatalf("expected exact label match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "sab"); idx != 2 {
		t.Fatalf("expected prefix match at 2, got %d", idx)
	}
}

func TestBestMatchIndexFallsBackToFuzzy(t *testing.T) {
	rows := []Row{
		{ID: "a", Label: "Ichimliklar"},
		{ID: "b", Label: "Sabzavotlar"},
	}
	idx := BestMatchIndex(rows, "ichmlklr")
	if idx != 0 {
		t.Fatalf("expected fuzzy match on first row, got %d", idx)
	}
}

func TestBestMatchIndexEmptyRows(t *testing.T) {
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty rows, got %d", idx)
	}
}
