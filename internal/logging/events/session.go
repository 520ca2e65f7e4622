package events

import "category-admin/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Adopted(chatID string) {
	logging.Trace("session.identity.adopted", map[string]interface{}{"chatId": chatID})
}

func (SessionTracer) Rewritten(raw, location, chatID string) {
	logging.Trace("session.identity.rewritten", map[string]interface{}{
		"raw":      raw,
		"location": location,
		"chatId":   chatID,
	})
}

func (SessionTracer) Changed(previous, current string) {
	logging.Trace("session.identity.changed", map[string]interface{}{"from": previous, "to": current})
}

func (SessionTracer) WatchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.watch.error", map[string]interface{}{"error": err.Error()})
}
