package action

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// HandleKind tags the variant carried by a Handle.
type HandleKind int

const (
	// HandleNone is the zero handle; activating it does nothing. Placeholder
	// leaves use it.
	HandleNone HandleKind = iota
	// HandleBuiltin indexes the fixed internal action table.
	HandleBuiltin
	// HandlePlugin references an action registered by a plugin at startup.
	HandlePlugin
)

// Handle is an opaque reference to an invocable action. Leaves carry handles
// instead of closures so that menu trees stay immutable values and every
// activation funnels through one Activate indirection.
type Handle struct {
	kind    HandleKind
	builtin int
	plugin  uuid.UUID
}

func (h Handle) Kind() HandleKind { return h.kind }

func (h Handle) String() string {
	switch h.kind {
	case HandleBuiltin:
		return fmt.Sprintf("builtin:%d", h.builtin)
	case HandlePlugin:
		return "plugin:" + h.plugin.String()
	default:
		return "none"
	}
}

// Func is a zero-argument action body.
type Func func() error

type entry struct {
	name      string
	run       Func
	closeMenu bool
}

// Registry owns the builtin action table and the plugin-registered handles.
type Registry struct {
	mu       sync.RWMutex
	builtins []entry
	plugins  map[uuid.UUID]entry
}

func NewRegistry() *Registry {
	return &Registry{plugins: make(map[uuid.UUID]entry)}
}

// RegisterBuiltin appends an action to the internal table and returns its
// handle. closeMenu marks exit/shutdown-class actions that end the menu
// session after they run.
func (r *Registry) RegisterBuiltin(name string, run Func, closeMenu bool) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builtins = append(r.builtins, entry{name: name, run: run, closeMenu: closeMenu})
	return Handle{kind: HandleBuiltin, builtin: len(r.builtins) - 1}
}

// RegisterPlugin records a plugin-contributed action under a fresh opaque
// handle.
func (r *Registry) RegisterPlugin(name string, run Func) Handle {
	id := uuid.New()
	r.mu.Lock()
	r.plugins[id] = entry{name: name, run: run}
	r.mu.Unlock()
	return Handle{kind: HandlePlugin, plugin: id}
}

func (r *Registry) lookup(h Handle) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch h.kind {
	case HandleBuiltin:
		if h.builtin < 0 || h.builtin >= len(r.builtins) {
			return entry{}, false
		}
		return r.builtins[h.builtin], true
	case HandlePlugin:
		e, ok := r.plugins[h.plugin]
		return e, ok
	default:
		return entry{}, false
	}
}
