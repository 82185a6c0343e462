package menu

import (
	"context"
	"fmt"
	"sync"

	"github.com/titoTito21/titan-menu/internal/logging/events"
)

// RootSource is the provider name the navigation layer asks for when a menu
// session opens.
const RootSource = "root"

// Provider builds the children of one submenu at the moment it is entered.
// Implementations query live content (installed applications, running games,
// status probes, plugin registrations) and must not cache across sessions.
type Provider interface {
	Name() string
	Items(ctx context.Context) ([]Node, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc struct {
	Source string
	Load   func(ctx context.Context) ([]Node, error)
}

func (p ProviderFunc) Name() string { return p.Source }

func (p ProviderFunc) Items(ctx context.Context) ([]Node, error) {
	return p.Load(ctx)
}

// Builder resolves submenu sources to providers and turns provider failures
// into placeholder leaves, so the navigation stack never sees an error.
type Builder struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewBuilder() *Builder {
	return &Builder{providers: make(map[string]Provider)}
}

// Register adds or replaces the provider for its source name.
func (b *Builder) Register(p Provider) {
	b.mu.Lock()
	b.providers[p.Name()] = p
	b.mu.Unlock()
}

// Children builds a fresh sibling list for the given source. A missing or
// failing provider yields a single placeholder leaf; the caller never has to
// distinguish the two.
func (b *Builder) Children(ctx context.Context, source string) []Node {
	b.mu.RLock()
	p, ok := b.providers[source]
	b.mu.RUnlock()
	if !ok {
		events.Provider.Unavailable(source, fmt.Errorf("no provider registered for %q", source))
		return []Node{Placeholder(source)}
	}
	items, err := p.Items(ctx)
	if err != nil {
		events.Provider.Unavailable(source, err)
		return []Node{Placeholder(source)}
	}
	events.Provider.Loaded(source, len(items))
	return items
}

// Sources lists the registered provider names.
func (b *Builder) Sources() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.providers))
	for name := range b.providers {
		names = append(names, name)
	}
	return names
}
