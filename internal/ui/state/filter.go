package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the search query and recomputes the visible rows.
// Entering a non-empty query remembers the unfiltered cursor so clearing
// the query can restore it.
func (l *List) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	restore := -1
	l.Filter = query
	if trimmed != "" {
		if prevTrimmed == "" {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	} else if prevTrimmed != "" {
		restore = l.LastCursor
	}
	l.applyFilter()
	if trimmed != "" && len(l.Rows) > 0 {
		if idx := BestMatchIndex(l.Rows, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(l.Rows) {
			l.Cursor = restore
		} else if len(l.Rows) > 0 {
			l.Cursor = len(l.Rows) - 1
		}
		l.LastCursor = -1
	}
}

func (l *List) applyFilter() {
	l.Rows = FilterRows(l.Full, l.Filter)
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = len(l.Rows) - 1
		return
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.ViewportOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
	}
}

// FilterRows returns the subsequence of rows whose search text contains
// the query, case-insensitively. Order is preserved, so a row set sorted
// by order index stays sorted. An empty query returns every row.
func FilterRows(rows []Row, query string) []Row {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return CloneRows(rows)
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(row.SearchText, trimmed) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// BestMatchIndex returns the row the cursor should land on for the query
// among the provided rows. Exact and prefix label matches win; otherwise
// the closest fuzzy rank decides. It never alters the visible set.
func BestMatchIndex(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(rows) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		if len(rows) == 0 {
			return -1
		}
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}
