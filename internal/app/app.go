package app

import (
	"errors"
	"time"

	"category-admin/internal/api"
	"category-admin/internal/identity"
	"category-admin/internal/logging/events"
	"category-admin/internal/theme"
	"category-admin/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	APIBaseURL    string
	DefaultChatID string
	Location      string
	LocationFile  string
	PollInterval  time.Duration
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Theme         string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	loc := identity.Resolve(cfg.Location, cfg.DefaultChatID)
	if loc.Rewritten {
		events.Session.Rewritten(cfg.Location, loc.Path, loc.ChatID)
	} else {
		events.Session.Adopted(loc.ChatID)
	}

	client := api.NewClient(cfg.APIBaseURL)

	var watcher *identity.Watcher
	if cfg.LocationFile != "" {
		watcher = identity.NewWatcher(cfg.LocationFile, cfg.PollInterval)
		defer watcher.Stop()
	}

	styles := theme.ForVariant(theme.Variant(cfg.Theme))
	model := ui.NewModel(client, loc, cfg.DefaultChatID, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, watcher, styles)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
