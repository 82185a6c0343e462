package action

import (
	"fmt"

	"github.com/titoTito21/titan-menu/internal/logging/events"
)

// ErrorAnnouncement is the single generic spoken message for any contained
// action failure. Users hear it once per failed activation; the menu stays
// open and navigable.
const ErrorAnnouncement = "Action failed"

// Announcer is the slice of the feedback layer the dispatcher needs.
type Announcer interface {
	Speak(text string, pan float64, pitchOffset int, interrupt bool)
}

// Recorder persists successful launches. Optional; failures are swallowed.
type Recorder interface {
	RecordLaunch(name string) error
}

// Dispatcher invokes leaf actions and contains their failures. Nothing an
// action does — returning an error, panicking — may reach the input loop.
type Dispatcher struct {
	registry *Registry
	announce Announcer
	recorder Recorder
}

func NewDispatcher(registry *Registry, announce Announcer, recorder Recorder) *Dispatcher {
	return &Dispatcher{registry: registry, announce: announce, recorder: recorder}
}

// Activate runs the action behind the handle. It reports whether the action
// asked for the menu session to close.
func (d *Dispatcher) Activate(h Handle, label string) (closeMenu bool) {
	if h.Kind() == HandleNone {
		return false
	}
	e, ok := d.registry.lookup(h)
	if !ok {
		d.fail(h, fmt.Errorf("unknown handle %s", h))
		return false
	}
	events.Action.Invoke(h.String(), label)

	defer func() {
		if v := recover(); v != nil {
			events.Action.Panic(h.String(), v)
			d.speakError()
			closeMenu = false
		}
	}()

	if err := e.run(); err != nil {
		d.fail(h, err)
		return false
	}

	if d.recorder != nil {
		if err := d.recorder.RecordLaunch(label); err != nil {
			events.Action.Error(h.String(), err)
		}
	}
	if e.closeMenu {
		events.Action.CloseRequested(h.String())
	}
	return e.closeMenu
}

func (d *Dispatcher) fail(h Handle, err error) {
	events.Action.Error(h.String(), err)
	d.speakError()
}

func (d *Dispatcher) speakError() {
	if d.announce != nil {
		d.announce.Speak(ErrorAnnouncement, 0.0, 0, true)
	}
}
