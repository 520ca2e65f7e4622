// Package identity derives the active chat identifier from a panel
// location and keeps it in sync with later location changes.
//
// The canonical location form is the path-segment style "/chatId=<id>":
// the single shape the panel treats as valid input. Resolve accepts a
// full URL or a bare path, adopts the first chatId segment it finds, and
// rewrites anything else to the canonical form carrying the configured
// default identifier. The rewrite replaces the location; no history is
// kept, and exactly one rewrite happens per resolution.
package identity

import (
	"net/url"
	"regexp"
	"strings"
)

var chatIDPattern = regexp.MustCompile(`/chatId=([^/&]+)`)

// Location is the outcome of resolving a raw location string.
type Location struct {
	ChatID    string
	Path      string
	Rewritten bool
}

// CanonicalPath returns the canonical location path for a chat identifier.
func CanonicalPath(chatID string) string {
	return "/chatId=" + chatID
}

// Resolve derives a chat identifier from raw. When raw carries no valid
// identifier the location is rewritten to the canonical form embedding
// defaultID. The returned Location always has a non-empty ChatID as long
// as defaultID is non-empty.
func Resolve(raw, defaultID string) Location {
	path := pathOf(raw)
	if match := chatIDPattern.FindStringSubmatch(path); match != nil {
		id := match[1]
		return Location{ChatID: id, Path: CanonicalPath(id)}
	}
	return Location{ChatID: defaultID, Path: CanonicalPath(defaultID), Rewritten: true}
}

// pathOf extracts the path component from a raw location, which may be a
// full URL, a bare path, or arbitrary junk. Only the path is inspected;
// query and fragment never carry the identifier.
func pathOf(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		return u.Path
	}
	return trimmed
}
