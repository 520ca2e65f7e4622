package events

import "category-admin/internal/logging"

type APITracer struct{}

var API = APITracer{}

func (APITracer) Request(op, target string) {
	logging.Trace("api.request", map[string]interface{}{"op": op, "target": target})
}

func (APITracer) Success(op string) {
	logging.Trace("api.success", map[string]interface{}{"op": op})
}

func (APITracer) Failure(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("api.failure", map[string]interface{}{"op": op, "error": err.Error()})
}
