package ui

import (
	"strconv"
	"strings"

	"category-admin/internal/api"
	"category-admin/internal/logging/events"
	"category-admin/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldNameUz = iota
	fieldNameUzCyrillic
	fieldNameRu
	fieldNameEn
	fieldOrderIndex
	fieldParentID
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Nomi (o'zbekcha)",
	"Номи (кириллча)",
	"Название (русский)",
	"Name (english)",
	"Tartib raqami",
	"Asosiy kategoriya ID",
}

// CategoryForm holds the create/edit inputs. A zero editID means the
// form creates a new category.
type CategoryForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	editID  string
	errText string
}

// NewCategoryForm builds a form, prefilled from the category when
// editing.
func NewCategoryForm(edit *api.Category, styles *theme.Styles) *CategoryForm {
	f := &CategoryForm{}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		in.Placeholder = fieldLabels[i]
		if styles != nil && styles.Filter != nil {
			in.TextStyle = styles.Filter.Copy()
		}
		f.inputs[i] = in
	}
	f.inputs[fieldOrderIndex].CharLimit = 6
	if edit != nil {
		f.editID = edit.ID
		f.inputs[fieldNameUz].SetValue(edit.NameUz)
		f.inputs[fieldNameUzCyrillic].SetValue(edit.NameUzCyrillic)
		f.inputs[fieldNameRu].SetValue(edit.NameRu)
		f.inputs[fieldNameEn].SetValue(edit.NameEn)
		f.inputs[fieldOrderIndex].SetValue(strconv.Itoa(edit.OrderIndex))
		if edit.ParentID != nil {
			f.inputs[fieldParentID].SetValue(*edit.ParentID)
		}
	}
	f.inputs[fieldNameUz].Focus()
	return f
}

// EditID returns the identifier of the category being edited, or ""
// when the form creates a new one.
func (f *CategoryForm) EditID() string {
	return f.editID
}

// Editing reports whether the form targets an existing category.
func (f *CategoryForm) Editing() bool {
	return f.editID != ""
}

// Error returns the current validation message.
func (f *CategoryForm) Error() string {
	return f.errText
}

// Update consumes a key press. It reports done=true on a valid submit
// and cancel=true when the user backs out.
func (f *CategoryForm) Update(msg tea.KeyMsg) (tea.Cmd, bool, bool) {
	switch msg.String() {
	case "esc":
		return nil, false, true
	case "enter":
		if f.validate() {
			return nil, true, false
		}
		return nil, false, false
	case "tab", "down":
		f.focusField(f.focused + 1)
		return nil, false, false
	case "shift+tab", "up":
		f.focusField(f.focused - 1)
		return nil, false, false
	}
	return f.forward(msg), false, false
}

// forward feeds any message into the focused input.
func (f *CategoryForm) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *CategoryForm) focusField(index int) {
	if index < 0 {
		index = fieldCount - 1
	}
	if index >= fieldCount {
		index = 0
	}
	f.inputs[f.focused].Blur()
	f.focused = index
	f.inputs[f.focused].Focus()
}

func (f *CategoryForm) validate() bool {
	if strings.TrimSpace(f.inputs[fieldNameUz].Value()) == "" {
		f.errText = "Kategoriya nomi (o'zbekcha) majburiy."
		f.focusField(fieldNameUz)
		return false
	}
	raw := strings.TrimSpace(f.inputs[fieldOrderIndex].Value())
	if raw != "" {
		if _, err := strconv.Atoi(raw); err != nil {
			f.errText = "Tartib raqami butun son bo'lishi kerak."
			f.focusField(fieldOrderIndex)
			return false
		}
	}
	f.errText = ""
	return true
}

// Request assembles the payload from the current field values. Call it
// only after a successful validate.
func (f *CategoryForm) Request() api.CategoryRequest {
	req := api.CategoryRequest{
		NameUz:         strings.TrimSpace(f.inputs[fieldNameUz].Value()),
		NameUzCyrillic: strings.TrimSpace(f.inputs[fieldNameUzCyrillic].Value()),
		NameRu:         strings.TrimSpace(f.inputs[fieldNameRu].Value()),
		NameEn:         strings.TrimSpace(f.inputs[fieldNameEn].Value()),
	}
	if raw := strings.TrimSpace(f.inputs[fieldOrderIndex].Value()); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.OrderIndex = n
		}
	}
	if parent := strings.TrimSpace(f.inputs[fieldParentID].Value()); parent != "" {
		req.ParentID = &parent
	}
	return req
}

func (m *Model) openCreateForm() tea.Cmd {
	if !m.canMutate() {
		return nil
	}
	m.form = NewCategoryForm(nil, m.styles)
	m.mode = ModeForm
	events.Form.Open("")
	return textinput.Blink
}

func (m *Model) openEditForm() tea.Cmd {
	if !m.canMutate() {
		return nil
	}
	row, ok := m.list.Current()
	if !ok {
		return nil
	}
	category, ok := m.session.Find(row.ID)
	if !ok {
		return nil
	}
	m.form = NewCategoryForm(&category, m.styles)
	m.mode = ModeForm
	events.Form.Open(category.ID)
	return textinput.Blink
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.form == nil {
		m.mode = ModeList
		return nil
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		events.Form.Cancel(m.form.EditID())
		m.closeForm()
		return nil
	}
	if done {
		return m.submitForm()
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ModeList
}

// submitForm dispatches the pending form as a create or edit request.
// The form is closed immediately; the outcome arrives as a message.
func (m *Model) submitForm() tea.Cmd {
	form := m.form
	m.closeForm()
	if form == nil {
		return nil
	}
	user := m.session.User()
	if user == nil || m.busy {
		return nil
	}
	events.Form.Submit(form.EditID())
	req := form.Request()
	m.busy = true
	if form.Editing() {
		return m.saveCategoryCmd(m.epoch, form.EditID(), req.EditProjection())
	}
	req.ChatID = &user.ChatID
	return m.createCategoryCmd(m.epoch, req)
}
