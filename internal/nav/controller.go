package nav

import (
	"context"
	"fmt"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/audio"
	"github.com/titoTito21/titan-menu/internal/logging/events"
	"github.com/titoTito21/titan-menu/internal/menu"
)

const emptyMenuAnnouncement = "Empty menu"

// Feedback is the slice of the audio layer the controller drives. Both calls
// are dispatch-and-forget; the controller never waits on audible output.
type Feedback interface {
	Speak(text string, pan float64, pitchOffset int, interrupt bool)
	PlayCue(cue audio.Cue, pan float64)
}

// Activator invokes leaf actions, containing their failures.
type Activator interface {
	Activate(h action.Handle, label string) (closeMenu bool)
}

// Controller owns the navigation stack and is the only component that mutates
// it. It is not safe for concurrent use: a single input loop feeds it intents,
// and everything handed to the feedback layer is an immutable copy.
type Controller struct {
	builder   *menu.Builder
	feedback  Feedback
	activator Activator
	label     string

	ctx   context.Context
	stack []*Frame
}

// NewController wires the engine's collaborators. label is the menu's own
// spoken name, announced on open.
func NewController(builder *menu.Builder, feedback Feedback, activator Activator, label string) *Controller {
	return &Controller{builder: builder, feedback: feedback, activator: activator, label: label}
}

// Open starts a menu session: the root sibling list is built fresh, the menu
// label is announced, then the focused item at its computed pan. Opening an
// already-open controller restarts the session from the root.
func (c *Controller) Open(ctx context.Context) {
	c.ctx = ctx
	items := c.builder.Children(ctx, menu.RootSource)
	c.stack = []*Frame{newFrame(menu.RootSource, items)}
	events.Nav.Open(menu.RootSource, len(items))
	c.feedback.PlayCue(audio.CueMenuOpen, 0.0)
	c.feedback.Speak(c.label, 0.0, audio.PitchNeutral, true)
	if _, ok := c.top().Current(); ok {
		c.announceFocus(audio.PitchNeutral, false)
	}
}

// IsOpen reports whether a session is active.
func (c *Controller) IsOpen() bool {
	return len(c.stack) > 0
}

// Depth returns the current stack depth; zero when closed.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Handle applies one input intent to the session. Intents arriving while the
// menu is closed are ignored.
func (c *Controller) Handle(intent Intent) {
	if !c.IsOpen() {
		return
	}
	switch intent {
	case IntentPreviousSibling:
		c.moveSibling(-1)
	case IntentNextSibling:
		c.moveSibling(1)
	case IntentExpand, IntentActivate:
		c.enterOrActivate()
	case IntentCollapse:
		c.back()
	case IntentClose:
		c.Close()
	}
}

func (c *Controller) moveSibling(delta int) {
	frame := c.top()
	if !frame.Move(delta) {
		events.Nav.Boundary(frame.Source, frame.Focus)
		c.feedback.PlayCue(audio.CueBoundary, c.currentPan())
		return
	}
	pan := c.currentPan()
	events.Nav.Focus(frame.Source, frame.Focus, len(frame.Items), pan)
	c.feedback.PlayCue(audio.CueFocus, pan)
	c.announceFocus(audio.PitchNeutral, true)
}

func (c *Controller) enterOrActivate() {
	frame := c.top()
	node, ok := frame.Current()
	if !ok {
		return
	}
	switch node.Kind {
	case menu.KindSubmenu:
		children := c.builder.Children(c.ctx, node.Source)
		if len(children) == 0 {
			events.Nav.EmptySubmenu(node.Name)
			c.feedback.Speak(emptyMenuAnnouncement, 0.0, audio.PitchNeutral, true)
			return
		}
		c.stack = append(c.stack, newFrame(node.Source, children))
		events.Nav.Enter(node.Source, node.Name, len(c.stack))
		pan := c.currentPan()
		c.feedback.PlayCue(audio.CueSubmenuOpen, pan)
		c.announceFocus(audio.PitchEnterLevel, true)
	case menu.KindAction:
		c.feedback.PlayCue(audio.CueSelect, c.currentPan())
		if c.activator.Activate(node.Action, node.Name) {
			c.Close()
		}
	}
}

func (c *Controller) back() {
	if len(c.stack) <= 1 {
		// The root cannot be backed out of; only Close ends the session.
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
	parent := c.top()
	events.Nav.Back(parent.Source, len(c.stack))
	pan := c.currentPan()
	c.feedback.PlayCue(audio.CueSubmenuClose, pan)
	c.announceFocus(audio.PitchLeaveLevel, true)
}

// Close discards the whole stack and ends the session. Nothing is spoken
// afterwards; the close cue is the only audible confirmation.
func (c *Controller) Close() {
	if !c.IsOpen() {
		return
	}
	events.Nav.Close(len(c.stack))
	c.stack = nil
	c.feedback.PlayCue(audio.CueMenuClose, 0.0)
}

func (c *Controller) announceFocus(pitchOffset int, interrupt bool) {
	frame := c.top()
	node, ok := frame.Current()
	if !ok {
		return
	}
	text := node.Name
	if !node.AnnounceRaw {
		text = fmt.Sprintf("%s, %d of %d", node.Name, frame.Focus+1, len(frame.Items))
	}
	c.feedback.Speak(text, c.currentPan(), pitchOffset, interrupt)
}

func (c *Controller) currentPan() float64 {
	frame := c.top()
	return audio.Pan(frame.Focus, len(frame.Items))
}

func (c *Controller) top() *Frame {
	return c.stack[len(c.stack)-1]
}
