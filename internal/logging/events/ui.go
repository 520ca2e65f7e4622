package events

import "category-admin/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type FormTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
	Form   = FormTracer{}
)

func (UITracer) ListCursor(cursor int, id string) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor, "id": id})
}

func (UITracer) ThemeToggle(variant string) {
	logging.Trace("theme.toggle", map[string]interface{}{"variant": variant})
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.changed", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (ActionTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (ActionTracer) Success(op, id string) {
	logging.Trace("action.success", map[string]interface{}{"op": op, "id": id})
}

func (FormTracer) Open(editID string) {
	logging.Trace("form.open", map[string]interface{}{"edit": editID})
}

func (FormTracer) Cancel(editID string) {
	logging.Trace("form.cancel", map[string]interface{}{"edit": editID})
}

func (FormTracer) Submit(editID string) {
	logging.Trace("form.submit", map[string]interface{}{"edit": editID})
}

func (FormTracer) ConfirmPrompt(id string) {
	logging.Trace("confirm.prompt", map[string]interface{}{"id": id})
}

func (FormTracer) ConfirmAccept(id string) {
	logging.Trace("confirm.accept", map[string]interface{}{"id": id})
}

func (FormTracer) ConfirmDecline(id string) {
	logging.Trace("confirm.decline", map[string]interface{}{"id": id})
}
