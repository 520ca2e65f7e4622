package ui

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"category-admin/internal/api"
	"category-admin/internal/identity"
	"category-admin/internal/logging/events"
	"category-admin/internal/store"
	"category-admin/internal/theme"
	uistate "category-admin/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Service is the backend surface the model depends on. *api.Client
// satisfies it; tests substitute fakes.
type Service interface {
	FindUser(ctx context.Context, chatID string) (api.User, error)
	ListCategories(ctx context.Context) ([]api.Category, error)
	CreateCategory(ctx context.Context, req api.CategoryRequest) (api.Category, error)
	EditCategory(ctx context.Context, id string, req api.CategoryRequest) (api.Category, error)
	DeleteCategory(ctx context.Context, id string) (string, error)
}

// Mode selects which component currently consumes key presses.
type Mode int

const (
	ModeList Mode = iota
	ModeForm
	ModeConfirm
)

const noticeTTL = 5 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the category admin panel.
type Model struct {
	service Service
	session *store.Session
	list    *uistate.List
	styles  *theme.Styles

	chatID        string
	location      string
	defaultChatID string
	epoch         int

	loading   bool
	busy      bool
	denied    bool
	deniedMsg string

	notice       string
	noticeExpire time.Time

	mode          Mode
	form          *CategoryForm
	pendingDelete *api.Category

	search textinput.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	watcher  *identity.Watcher
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for the resolved location and
// configuration. The bootstrap fetch starts from Init.
func NewModel(service Service, loc identity.Location, defaultChatID string, width, height int, showFooter, verbose bool, watcher *identity.Watcher, styles *theme.Styles) *Model {
	if styles == nil {
		styles = theme.ForVariant(theme.Light)
	}
	search := textinput.New()
	search.Prompt = "» "
	search.Placeholder = "Kategoriyalarni qidirish..."
	search.CharLimit = 64
	search.Focus()

	m := &Model{
		service:       service,
		session:       store.NewSession(),
		list:          uistate.NewList(nil),
		styles:        styles,
		chatID:        loc.ChatID,
		location:      loc.Path,
		defaultChatID: defaultChatID,
		loading:       true,
		mode:          ModeList,
		search:        search,
		showFooter:    showFooter,
		verbose:       verbose,
		watcher:       watcher,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.applySearchStyles()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.findUserCmd(m.epoch),
		textinput.Blink,
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForLocationEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	// Unrecognised messages (cursor blink and friends) feed the focused
	// text input so its cursor keeps animating.
	if m.mode == ModeForm && m.form != nil {
		return m, m.form.forward(msg)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(userLoadedMsg{}):       m.handleUserLoadedMsg,
		reflect.TypeOf(categoriesLoadedMsg{}): m.handleCategoriesLoadedMsg,
		reflect.TypeOf(categorySavedMsg{}):    m.handleCategorySavedMsg,
		reflect.TypeOf(categoryDeletedMsg{}):  m.handleCategoryDeletedMsg,
		reflect.TypeOf(locationEventMsg{}):    m.handleLocationEventMsg,
		reflect.TypeOf(locationDoneMsg{}):     m.handleLocationDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(keyMsg)
	case ModeConfirm:
		return m.handleConfirmKey(keyMsg)
	default:
		return m.handleListKey(keyMsg)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// canMutate reports whether user-initiated data actions are allowed right
// now: a confirmed session is loaded and nothing else is in flight.
func (m *Model) canMutate() bool {
	return m.session.User() != nil && !m.denied && !m.loading && !m.busy
}

func (m *Model) toggleTheme() {
	m.styles = m.styles.Toggle()
	m.applySearchStyles()
	events.UI.ThemeToggle(string(m.styles.Variant))
}

func (m *Model) applySearchStyles() {
	if m.styles.FilterPrompt != nil {
		m.search.PromptStyle = m.styles.FilterPrompt.Copy()
	}
	if m.styles.Filter != nil {
		m.search.TextStyle = m.styles.Filter.Copy()
	}
	if m.styles.FilterPlaceholder != nil {
		m.search.PlaceholderStyle = m.styles.FilterPlaceholder.Copy()
	}
}

// refreshList rebuilds the list rows from the collection: sorted by
// ascending order index, with the active search filter reapplied by the
// list itself. The rows are always derived, never stored apart from the
// collection.
func (m *Model) refreshList() {
	sorted := m.session.Sorted()
	rows := make([]uistate.Row, 0, len(sorted))
	for _, category := range sorted {
		rows = append(rows, uistate.Row{
			ID:         category.ID,
			Label:      categoryLabel(category),
			SearchText: category.SearchText(),
		})
	}
	m.list.SetRows(rows)
	m.syncViewport()
}

func categoryLabel(c api.Category) string {
	name := c.NameUz
	for _, fallback := range []string{c.NameUzCyrillic, c.NameRu, c.NameEn, c.ID} {
		if name != "" {
			break
		}
		name = fallback
	}
	parts := []string{name, fmt.Sprintf("#%d", c.OrderIndex), string(c.Status)}
	if c.ParentID != nil {
		parts = append(parts, "ichki")
	}
	return strings.Join(parts, "  ·  ")
}

func (m *Model) setNotice(message string) {
	m.notice = message
	m.noticeExpire = time.Now().Add(noticeTTL)
}

func (m *Model) clearNoticeNow() {
	m.notice = ""
	m.noticeExpire = time.Time{}
}

func (m *Model) currentNotice() string {
	if m.notice != "" && !m.noticeExpire.IsZero() && time.Now().After(m.noticeExpire) {
		m.clearNoticeNow()
	}
	return m.notice
}

// ChatID returns the chat identifier of the active session.
func (m *Model) ChatID() string {
	return m.chatID
}

// Location returns the canonical location of the active session.
func (m *Model) Location() string {
	return m.location
}
