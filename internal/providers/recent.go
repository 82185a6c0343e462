package providers

import (
	"context"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/menu"
)

// SourceRecent is the provider name for the launch-history list.
const SourceRecent = "recent"

const recentLimit = 10

// History is the slice of the launch-history store the provider reads.
type History interface {
	Recent(limit int) ([]string, error)
}

// HandleResolver maps a display name back to a launchable handle. The app
// scanner implements it.
type HandleResolver interface {
	HandleFor(name string) (action.Handle, bool)
}

// Recent lists the most recently launched entries. Entries whose handle can
// no longer be resolved (uninstalled apps) stay listed but announce-only.
type Recent struct {
	history   History
	resolvers []HandleResolver
}

func NewRecent(history History, resolvers ...HandleResolver) *Recent {
	return &Recent{history: history, resolvers: resolvers}
}

func (r *Recent) Name() string { return SourceRecent }

func (r *Recent) Items(ctx context.Context) ([]menu.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := r.history.Recent(recentLimit)
	if err != nil {
		return nil, err
	}
	nodes := make([]menu.Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, menu.Leaf(name, r.resolve(name)))
	}
	return nodes, nil
}

func (r *Recent) resolve(name string) action.Handle {
	for _, res := range r.resolvers {
		if h, ok := res.HandleFor(name); ok {
			return h
		}
	}
	return action.Handle{}
}
