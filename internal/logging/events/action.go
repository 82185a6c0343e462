package events

import "github.com/titoTito21/titan-menu/internal/logging"

type ActionTracer struct{}

type ProviderTracer struct{}

var (
	Action   = ActionTracer{}
	Provider = ProviderTracer{}
)

func (ActionTracer) Invoke(handle, label string) {
	logging.Trace("action.invoke", map[string]interface{}{"handle": handle, "label": label})
}

func (ActionTracer) Error(handle string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"handle": handle, "error": err.Error()})
}

func (ActionTracer) Panic(handle string, value interface{}) {
	logging.Trace("action.panic", map[string]interface{}{"handle": handle, "value": value})
}

func (ActionTracer) CloseRequested(handle string) {
	logging.Trace("action.close-requested", map[string]interface{}{"handle": handle})
}

func (ProviderTracer) Loaded(name string, count int) {
	logging.Trace("provider.loaded", map[string]interface{}{"name": name, "count": count})
}

func (ProviderTracer) Unavailable(name string, err error) {
	payload := map[string]interface{}{"name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("provider.unavailable", payload)
}
