package nav

import "github.com/titoTito21/titan-menu/internal/menu"

// Frame is one level of navigation context: a sibling list plus the focused
// index. While Items is non-empty, 0 <= Focus < len(Items) holds; an empty
// frame is a placeholder with no valid index.
type Frame struct {
	Source string
	Items  []menu.Node
	Focus  int
}

func newFrame(source string, items []menu.Node) *Frame {
	return &Frame{Source: source, Items: items}
}

// Current returns the focused node, if the frame has one.
func (f *Frame) Current() (menu.Node, bool) {
	if len(f.Items) == 0 || f.Focus < 0 || f.Focus >= len(f.Items) {
		return menu.Node{}, false
	}
	return f.Items[f.Focus], true
}

// Move shifts focus by delta when the target stays in range. It reports
// whether focus changed; at either boundary nothing moves and the caller
// plays the boundary cue instead.
func (f *Frame) Move(delta int) bool {
	next := f.Focus + delta
	if next < 0 || next >= len(f.Items) {
		return false
	}
	f.Focus = next
	return true
}
