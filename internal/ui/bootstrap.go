package ui

import (
	"fmt"

	"category-admin/internal/api"
	"category-admin/internal/identity"
	"category-admin/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgUserLookupFailed = "Foydalanuvchi ma'lumotlarini olishda xatolik. Chat ID noto'g'ri bo'lishi mumkin."
	msgUserMissing      = "Foydalanuvchi tizimda topilmadi."
	msgNotConfirmedFmt  = "Profilingiz holati: %s. Kirish uchun faqat tasdiqlangan (CONFIRMED) foydalanuvchilarga ruxsat beriladi."
	msgCategoriesFailed = "Kategoriyalarni yuklashda xatolik yuz berdi. Iltimos, sahifani yangilang."
	msgWriteFailed      = "Amalni bajarishda xatolik yuz berdi."
	msgDeleteFailed     = "Oʻchirishda xatolik yuz berdi."
)

// beginSession discards all state tied to the previous chat identifier
// and starts the identity fetch for the new one. Bumping the epoch
// invalidates every response still in flight for the old session.
func (m *Model) beginSession(chatID string) tea.Cmd {
	m.epoch++
	m.chatID = chatID
	m.location = identity.CanonicalPath(chatID)
	m.session.Reset()
	m.list.SetRows(nil)
	m.list.SetFilter("")
	m.search.SetValue("")
	m.loading = true
	m.busy = false
	m.denied = false
	m.deniedMsg = ""
	m.clearNoticeNow()
	m.mode = ModeList
	m.form = nil
	m.pendingDelete = nil
	return m.findUserCmd(m.epoch)
}

func (m *Model) deny(message string) {
	m.denied = true
	m.deniedMsg = message
	m.loading = false
	m.busy = false
}

func (m *Model) handleUserLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(userLoadedMsg)
	if !ok || loaded.epoch != m.epoch {
		return nil
	}
	if loaded.err != nil {
		events.Action.Error("find-user", loaded.err)
		m.deny(msgUserLookupFailed)
		return nil
	}
	user := loaded.user
	m.session.SetUser(user)
	if user.Status != api.UserConfirmed {
		m.deny(fmt.Sprintf(msgNotConfirmedFmt, user.Status))
		return nil
	}
	return m.listCategoriesCmd(m.epoch)
}

func (m *Model) handleCategoriesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(categoriesLoadedMsg)
	if !ok || loaded.epoch != m.epoch {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		events.Action.Error("list-categories", loaded.err)
		m.deny(msgCategoriesFailed)
		return nil
	}
	m.session.SetCategories(loaded.categories)
	m.refreshList()
	return nil
}

func (m *Model) handleCategorySavedMsg(msg tea.Msg) tea.Cmd {
	saved, ok := msg.(categorySavedMsg)
	if !ok || saved.epoch != m.epoch {
		return nil
	}
	m.busy = false
	if saved.err != nil {
		op := "create-category"
		if saved.edited {
			op = "edit-category"
		}
		events.Action.Error(op, saved.err)
		m.setNotice(msgWriteFailed)
		return nil
	}
	if saved.edited {
		if !m.session.Replace(saved.category) {
			m.session.Prepend(saved.category)
		}
		events.Action.Success("edit-category", saved.category.ID)
	} else {
		m.session.Prepend(saved.category)
		events.Action.Success("create-category", saved.category.ID)
	}
	m.refreshList()
	if m.verbose {
		m.setNotice("Saqlandi: " + categoryDisplayName(saved.category))
	}
	return nil
}

func (m *Model) handleCategoryDeletedMsg(msg tea.Msg) tea.Cmd {
	deleted, ok := msg.(categoryDeletedMsg)
	if !ok || deleted.epoch != m.epoch {
		return nil
	}
	m.busy = false
	if deleted.err != nil {
		events.Action.Error("delete-category", deleted.err)
		m.setNotice(msgDeleteFailed)
		return nil
	}
	m.session.Remove(deleted.id)
	events.Action.Success("delete-category", deleted.id)
	m.refreshList()
	if m.verbose {
		m.setNotice("Oʻchirildi")
	}
	return nil
}

func (m *Model) handleLocationEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(locationEventMsg)
	if !ok {
		return nil
	}
	var rewait tea.Cmd
	if m.watcher != nil {
		rewait = waitForLocationEvent(m.watcher)
	}
	if eventMsg.event.Err != nil {
		events.Session.WatchError(eventMsg.event.Err)
		return rewait
	}
	loc := identity.Resolve(eventMsg.event.Raw, m.defaultChatID)
	if loc.Rewritten {
		events.Session.Rewritten(eventMsg.event.Raw, loc.Path, loc.ChatID)
	}
	if loc.ChatID == m.chatID {
		return rewait
	}
	events.Session.Changed(m.chatID, loc.ChatID)
	return tea.Batch(m.beginSession(loc.ChatID), rewait)
}

func (m *Model) handleLocationDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func categoryDisplayName(c api.Category) string {
	for _, name := range []string{c.NameUz, c.NameUzCyrillic, c.NameRu, c.NameEn} {
		if name != "" {
			return name
		}
	}
	return c.ID
}
