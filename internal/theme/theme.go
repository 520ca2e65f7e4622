// Package theme provides the Lip Gloss style sets for the panel's light
// and dark variants. The active set is passed into the UI model at
// construction and swapped on toggle rather than mutated in place.
package theme

import "github.com/charmbracelet/lipgloss"

// Variant names a colour scheme.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Variant Variant

	Title                 *lipgloss.Style
	Subtitle              *lipgloss.Style
	Header                *lipgloss.Style
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Muted                 *lipgloss.Style
	Badge                 *lipgloss.Style
	Error                 *lipgloss.Style
	Notice                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	FormLabel             *lipgloss.Style
	FormFocusedLabel      *lipgloss.Style
	Overlay               *lipgloss.Style
}

var darkStyles = Styles{
	Variant: Dark,
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FormFocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
}

var lightStyles = Styles{
	Variant: Light,
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("153")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Background(lipgloss.Color("153")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FormFocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Italic(true),
	),
}

// ForVariant returns the style set for the named variant. Unknown names
// fall back to light.
func ForVariant(v Variant) *Styles {
	if v == Dark {
		return &darkStyles
	}
	return &lightStyles
}

// Toggle returns the other variant's style set.
func (s *Styles) Toggle() *Styles {
	if s != nil && s.Variant == Dark {
		return &lightStyles
	}
	return &darkStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
