package events

import "github.com/titoTito21/titan-menu/internal/logging"

type NavTracer struct{}

type AppTracer struct{}

var (
	Nav = NavTracer{}
	App = AppTracer{}
)

func (NavTracer) Open(category string, count int) {
	logging.Trace("nav.open", map[string]interface{}{"category": category, "items": count})
}

func (NavTracer) Close(depth int) {
	logging.Trace("nav.close", map[string]interface{}{"depth": depth})
}

func (NavTracer) Focus(category string, index, count int, pan float64) {
	logging.Trace("nav.focus", map[string]interface{}{
		"category": category,
		"index":    index,
		"count":    count,
		"pan":      pan,
	})
}

func (NavTracer) Boundary(category string, index int) {
	logging.Trace("nav.boundary", map[string]interface{}{"category": category, "index": index})
}

func (NavTracer) Enter(category, item string, depth int) {
	logging.Trace("nav.enter", map[string]interface{}{
		"category": category,
		"item":     item,
		"depth":    depth,
	})
}

func (NavTracer) EmptySubmenu(item string) {
	logging.Trace("nav.empty-submenu", map[string]interface{}{"item": item})
}

func (NavTracer) Back(category string, depth int) {
	logging.Trace("nav.back", map[string]interface{}{"category": category, "depth": depth})
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop() {
	logging.Trace("app.stop", nil)
}
