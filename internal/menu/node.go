package menu

import "github.com/titoTito21/titan-menu/internal/action"

// Kind distinguishes submenu entries from activatable leaves.
type Kind int

const (
	KindSubmenu Kind = iota
	KindAction
)

// Node is one entry in the launcher tree. Nodes are immutable values; a
// submenu's children are rebuilt from its Source provider every time it is
// entered, since installed applications, running games, and live status values
// change between visits.
type Node struct {
	// Name is the localized display string spoken when the node gains focus.
	Name string
	Kind Kind
	// Source names the provider that builds this submenu's children.
	// Submenu nodes only.
	Source string
	// Action is the handle invoked on activation. Action nodes only; the
	// zero handle is a no-op.
	Action action.Handle
	// AnnounceRaw marks entries whose name already carries its value (clock,
	// battery and similar status rows). Focus announcements skip the ordinal
	// suffix for them.
	AnnounceRaw bool
}

// Submenu constructs a submenu node backed by the named provider.
func Submenu(name, source string) Node {
	return Node{Name: name, Kind: KindSubmenu, Source: source}
}

// Leaf constructs an activatable leaf node.
func Leaf(name string, handle action.Handle) Node {
	return Node{Name: name, Kind: KindAction, Action: handle}
}

// Placeholder is the single leaf substituted when a provider call fails. It
// announces unavailability and activates to nothing.
func Placeholder(source string) Node {
	return Node{Name: source + " unavailable", Kind: KindAction, AnnounceRaw: true}
}
