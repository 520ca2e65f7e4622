package ui

import (
	"context"
	"time"

	"category-admin/internal/api"
	"category-admin/internal/identity"
	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 30 * time.Second

// Backend responses carry the epoch of the session that issued them.
// Handlers drop messages whose epoch no longer matches, so a session
// switch cannot be clobbered by a late reply from the previous one.

type userLoadedMsg struct {
	epoch int
	user  api.User
	err   error
}

type categoriesLoadedMsg struct {
	epoch      int
	categories []api.Category
	err        error
}

type categorySavedMsg struct {
	epoch    int
	edited   bool
	category api.Category
	err      error
}

type categoryDeletedMsg struct {
	epoch int
	id    string
	err   error
}

type locationEventMsg struct {
	event identity.Event
}

type locationDoneMsg struct{}

func (m *Model) findUserCmd(epoch int) tea.Cmd {
	service := m.service
	chatID := m.chatID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := service.FindUser(ctx, chatID)
		return userLoadedMsg{epoch: epoch, user: user, err: err}
	}
}

func (m *Model) listCategoriesCmd(epoch int) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		categories, err := service.ListCategories(ctx)
		return categoriesLoadedMsg{epoch: epoch, categories: categories, err: err}
	}
}

func (m *Model) createCategoryCmd(epoch int, req api.CategoryRequest) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		category, err := service.CreateCategory(ctx, req)
		return categorySavedMsg{epoch: epoch, category: category, err: err}
	}
}

func (m *Model) saveCategoryCmd(epoch int, id string, req api.CategoryRequest) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		category, err := service.EditCategory(ctx, id, req)
		return categorySavedMsg{epoch: epoch, edited: true, category: category, err: err}
	}
}

func (m *Model) deleteCategoryCmd(epoch int, id string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := service.DeleteCategory(ctx, id)
		return categoryDeletedMsg{epoch: epoch, id: id, err: err}
	}
}

// waitForLocationEvent blocks on the watcher's event channel and turns
// the next event into a message. The handler re-issues the command so
// the model keeps listening until the channel closes.
func waitForLocationEvent(watcher *identity.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-watcher.Events()
		if !ok {
			return locationDoneMsg{}
		}
		return locationEventMsg{event: event}
	}
}
