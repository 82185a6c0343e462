package nav

// Intent is one of the six abstract inputs the engine understands. Mapping
// keys, buttons, or gestures onto intents is the front-end's job; the engine
// never sees a physical device.
type Intent int

const (
	IntentPreviousSibling Intent = iota
	IntentNextSibling
	IntentExpand
	IntentCollapse
	IntentActivate
	IntentClose
)

func (i Intent) String() string {
	switch i {
	case IntentPreviousSibling:
		return "previous-sibling"
	case IntentNextSibling:
		return "next-sibling"
	case IntentExpand:
		return "expand"
	case IntentCollapse:
		return "collapse"
	case IntentActivate:
		return "activate"
	case IntentClose:
		return "close"
	default:
		return "unknown"
	}
}
