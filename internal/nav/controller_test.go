package nav

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/audio"
	"github.com/titoTito21/titan-menu/internal/menu"
)

type spokenUtterance struct {
	text      string
	pan       float64
	pitch     int
	interrupt bool
}

type playedCue struct {
	cue audio.Cue
	pan float64
}

// fakeFeedback records synchronously; controller tests never need real
// worker goroutines.
type fakeFeedback struct {
	speech []spokenUtterance
	cues   []playedCue
}

func (f *fakeFeedback) Speak(text string, pan float64, pitchOffset int, interrupt bool) {
	f.speech = append(f.speech, spokenUtterance{text: text, pan: pan, pitch: pitchOffset, interrupt: interrupt})
}

func (f *fakeFeedback) PlayCue(cue audio.Cue, pan float64) {
	f.cues = append(f.cues, playedCue{cue: cue, pan: pan})
}

func (f *fakeFeedback) lastSpoken(t *testing.T) spokenUtterance {
	t.Helper()
	if len(f.speech) == 0 {
		t.Fatalf("nothing spoken")
	}
	return f.speech[len(f.speech)-1]
}

func (f *fakeFeedback) lastCue(t *testing.T) playedCue {
	t.Helper()
	if len(f.cues) == 0 {
		t.Fatalf("no cue played")
	}
	return f.cues[len(f.cues)-1]
}

type fakeActivator struct {
	activated []string
	closeOn   map[string]bool
}

func (f *fakeActivator) Activate(h action.Handle, label string) bool {
	f.activated = append(f.activated, label)
	return f.closeOn[label]
}

func leaves(names ...string) []menu.Node {
	nodes := make([]menu.Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, menu.Leaf(name, action.Handle{}))
	}
	return nodes
}

func staticProvider(source string, items []menu.Node) menu.Provider {
	return menu.ProviderFunc{
		Source: source,
		Load:   func(context.Context) ([]menu.Node, error) { return items, nil },
	}
}

func newTestController(root []menu.Node, extra ...menu.Provider) (*Controller, *fakeFeedback, *fakeActivator) {
	builder := menu.NewBuilder()
	builder.Register(staticProvider(menu.RootSource, root))
	for _, p := range extra {
		builder.Register(p)
	}
	feedback := &fakeFeedback{}
	activator := &fakeActivator{closeOn: map[string]bool{}}
	return NewController(builder, feedback, activator, "Main menu"), feedback, activator
}

func TestOpenAnnouncesLabelThenFirstItem(t *testing.T) {
	c, feedback, _ := newTestController(leaves("alpha", "beta", "gamma"))
	c.Open(context.Background())

	if !c.IsOpen() || c.Depth() != 1 {
		t.Fatalf("expected open session at depth 1, got depth %d", c.Depth())
	}
	if got := feedback.cues[0]; got.cue != audio.CueMenuOpen {
		t.Fatalf("expected menu-open cue, got %q", got.cue)
	}
	if len(feedback.speech) != 2 {
		t.Fatalf("expected label plus focused item, got %d utterances", len(feedback.speech))
	}
	if feedback.speech[0].text != "Main menu" || !feedback.speech[0].interrupt {
		t.Fatalf("expected interrupting menu label first, got %+v", feedback.speech[0])
	}
	if feedback.speech[1].text != "alpha, 1 of 3" || feedback.speech[1].pan != -1.0 {
		t.Fatalf("expected first item at full left, got %+v", feedback.speech[1])
	}
}

func TestFiveEntrySweepAndBoundary(t *testing.T) {
	c, feedback, _ := newTestController(leaves("e0", "e1", "e2", "e3", "e4"))
	c.Open(context.Background())

	if got := feedback.lastSpoken(t); got.pan != -1.0 {
		t.Fatalf("expected entry 0 announced at -1.0, got %f", got.pan)
	}

	wantPans := []float64{-0.5, 0.0, 0.5, 1.0}
	for i, want := range wantPans {
		c.Handle(IntentNextSibling)
		got := feedback.lastSpoken(t)
		if got.text != fmt.Sprintf("e%d, %d of 5", i+1, i+2) {
			t.Fatalf("unexpected announcement %q", got.text)
		}
		if got.pan != want {
			t.Fatalf("expected pan %f after move %d, got %f", want, i+1, got.pan)
		}
		if cue := feedback.lastCue(t); cue.cue != audio.CueFocus || cue.pan != want {
			t.Fatalf("expected focus cue at %f, got %+v", want, cue)
		}
	}

	spokenBefore := len(feedback.speech)
	c.Handle(IntentNextSibling)
	if cue := feedback.lastCue(t); cue.cue != audio.CueBoundary {
		t.Fatalf("expected boundary cue, got %q", cue.cue)
	}
	if len(feedback.speech) != spokenBefore {
		t.Fatalf("boundary must not speak")
	}
	if got := c.top().Focus; got != 4 {
		t.Fatalf("expected focus pinned at 4, got %d", got)
	}
}

func TestBoundaryIsIdempotent(t *testing.T) {
	c, feedback, _ := newTestController(leaves("a", "b"))
	c.Open(context.Background())
	c.Handle(IntentNextSibling)

	for i := 0; i < 5; i++ {
		before := len(feedback.speech)
		c.Handle(IntentNextSibling)
		if cue := feedback.lastCue(t); cue.cue != audio.CueBoundary {
			t.Fatalf("press %d: expected boundary cue, got %q", i, cue.cue)
		}
		if len(feedback.speech) != before {
			t.Fatalf("press %d: boundary must stay silent", i)
		}
		if c.top().Focus != 1 {
			t.Fatalf("press %d: focus moved to %d", i, c.top().Focus)
		}
	}
}

func TestExpandSpeaksFirstChildLeftWithRaisedPitch(t *testing.T) {
	root := []menu.Node{menu.Submenu("Applications", "applications")}
	c, feedback, _ := newTestController(root,
		staticProvider("applications", leaves("editor", "browser", "terminal")))
	c.Open(context.Background())

	c.Handle(IntentExpand)
	if c.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", c.Depth())
	}
	if cue := feedback.lastCue(t); cue.cue != audio.CueSubmenuOpen {
		t.Fatalf("expected submenu-open cue, got %q", cue.cue)
	}
	got := feedback.lastSpoken(t)
	if got.text != "editor, 1 of 3" || got.pan != -1.0 || got.pitch != audio.PitchEnterLevel {
		t.Fatalf("expected first child at -1.0 with +30 pitch, got %+v", got)
	}
}

func TestExpandEmptySubmenuLeavesStackUnchanged(t *testing.T) {
	root := []menu.Node{menu.Submenu("Games", "games")}
	c, feedback, _ := newTestController(root, staticProvider("games", nil))
	c.Open(context.Background())

	c.Handle(IntentExpand)
	if c.Depth() != 1 {
		t.Fatalf("expected depth to stay 1, got %d", c.Depth())
	}
	if got := feedback.lastSpoken(t); got.text != "Empty menu" {
		t.Fatalf("expected empty-menu announcement, got %q", got.text)
	}
}

func TestCollapseRestoresParentFocus(t *testing.T) {
	root := []menu.Node{
		menu.Leaf("first", action.Handle{}),
		menu.Submenu("Tools", "tools"),
		menu.Leaf("last", action.Handle{}),
	}
	c, feedback, _ := newTestController(root,
		staticProvider("tools", leaves("one", "two", "three")))
	c.Open(context.Background())

	c.Handle(IntentNextSibling) // focus Tools (index 1)
	c.Handle(IntentExpand)
	c.Handle(IntentNextSibling)
	c.Handle(IntentNextSibling) // wander inside the submenu

	c.Handle(IntentCollapse)
	if c.Depth() != 1 {
		t.Fatalf("expected depth 1 after collapse, got %d", c.Depth())
	}
	if c.top().Focus != 1 {
		t.Fatalf("expected parent focus restored to 1, got %d", c.top().Focus)
	}
	got := feedback.lastSpoken(t)
	if got.text != "Tools, 2 of 3" || got.pitch != audio.PitchLeaveLevel {
		t.Fatalf("expected parent re-announced with -30 pitch, got %+v", got)
	}
	if got.pan != 0.0 {
		t.Fatalf("expected parent pan 0.0 (middle of 3), got %f", got.pan)
	}
	if cue := feedback.lastCue(t); cue.cue != audio.CueSubmenuClose {
		t.Fatalf("expected submenu-close cue, got %q", cue.cue)
	}
}

func TestExpandThenCollapseRoundTrip(t *testing.T) {
	root := []menu.Node{
		menu.Leaf("pad", action.Handle{}),
		menu.Submenu("Nested", "nested"),
	}
	c, _, _ := newTestController(root, staticProvider("nested", leaves("x", "y")))
	c.Open(context.Background())
	c.Handle(IntentNextSibling)

	beforeItems := c.top().Items
	beforeFocus := c.top().Focus

	c.Handle(IntentExpand)
	c.Handle(IntentCollapse)

	if c.top().Focus != beforeFocus {
		t.Fatalf("focus not restored: want %d got %d", beforeFocus, c.top().Focus)
	}
	if len(c.top().Items) != len(beforeItems) {
		t.Fatalf("sibling list changed across round trip")
	}
	for i := range beforeItems {
		if c.top().Items[i].Name != beforeItems[i].Name {
			t.Fatalf("item %d changed across round trip", i)
		}
	}
}

func TestCollapseAtRootIsNoOp(t *testing.T) {
	c, feedback, _ := newTestController(leaves("only"))
	c.Open(context.Background())
	cuesBefore := len(feedback.cues)
	speechBefore := len(feedback.speech)

	c.Handle(IntentCollapse)
	if !c.IsOpen() || c.Depth() != 1 {
		t.Fatalf("root collapse must not close or pop")
	}
	if len(feedback.cues) != cuesBefore || len(feedback.speech) != speechBefore {
		t.Fatalf("root collapse must be silent")
	}
}

func TestActivateInvokesActionAndStaysOpen(t *testing.T) {
	c, feedback, activator := newTestController(leaves("run-me"))
	c.Open(context.Background())

	c.Handle(IntentActivate)
	if len(activator.activated) != 1 || activator.activated[0] != "run-me" {
		t.Fatalf("expected one activation of run-me, got %v", activator.activated)
	}
	if cue := feedback.lastCue(t); cue.cue != audio.CueSelect {
		t.Fatalf("expected select cue, got %q", cue.cue)
	}
	if !c.IsOpen() {
		t.Fatalf("plain actions must leave the session open")
	}

	// The session stays navigable after activation.
	c.Handle(IntentNextSibling)
	if cue := feedback.lastCue(t); cue.cue != audio.CueBoundary {
		t.Fatalf("expected boundary cue on single-item list, got %q", cue.cue)
	}
}

func TestActivateCloseClassActionEndsSession(t *testing.T) {
	c, feedback, activator := newTestController(leaves("exit"))
	activator.closeOn["exit"] = true
	c.Open(context.Background())

	c.Handle(IntentActivate)
	if c.IsOpen() {
		t.Fatalf("close-class action must end the session")
	}
	if cue := feedback.lastCue(t); cue.cue != audio.CueMenuClose {
		t.Fatalf("expected menu-close cue, got %q", cue.cue)
	}
}

func TestCloseDiscardsStackAndSpeaksNothing(t *testing.T) {
	root := []menu.Node{menu.Submenu("Deep", "deep")}
	c, feedback, _ := newTestController(root, staticProvider("deep", leaves("a")))
	c.Open(context.Background())
	c.Handle(IntentExpand)

	speechBefore := len(feedback.speech)
	c.Handle(IntentClose)
	if c.IsOpen() || c.Depth() != 0 {
		t.Fatalf("expected closed session")
	}
	if cue := feedback.lastCue(t); cue.cue != audio.CueMenuClose {
		t.Fatalf("expected menu-close cue, got %q", cue.cue)
	}
	if len(feedback.speech) != speechBefore {
		t.Fatalf("close must not speak")
	}

	// Intents after close are ignored.
	c.Handle(IntentNextSibling)
	c.Handle(IntentActivate)
	if c.IsOpen() {
		t.Fatalf("intents after close must not reopen")
	}
}

func TestSubmenuRebuildsOnEveryEntry(t *testing.T) {
	builds := 0
	root := []menu.Node{menu.Submenu("Live", "live")}
	live := menu.ProviderFunc{
		Source: "live",
		Load: func(context.Context) ([]menu.Node, error) {
			builds++
			return leaves(fmt.Sprintf("build-%d", builds)), nil
		},
	}
	c, feedback, _ := newTestController(root, live)
	c.Open(context.Background())

	c.Handle(IntentExpand)
	if got := feedback.lastSpoken(t); got.text != "build-1, 1 of 1" {
		t.Fatalf("expected first build announced, got %q", got.text)
	}
	c.Handle(IntentCollapse)
	c.Handle(IntentExpand)
	if got := feedback.lastSpoken(t); got.text != "build-2, 1 of 1" {
		t.Fatalf("expected fresh rebuild on re-entry, got %q", got.text)
	}
}

func TestFailingProviderYieldsPlaceholderLeaf(t *testing.T) {
	root := []menu.Node{menu.Submenu("Apps", "apps")}
	broken := menu.ProviderFunc{
		Source: "apps",
		Load:   func(context.Context) ([]menu.Node, error) { return nil, fmt.Errorf("scan failed") },
	}
	c, feedback, _ := newTestController(root, broken)
	c.Open(context.Background())

	c.Handle(IntentExpand)
	if c.Depth() != 2 {
		t.Fatalf("placeholder entry must still push a frame, got depth %d", c.Depth())
	}
	got := feedback.lastSpoken(t)
	if got.text != "apps unavailable" {
		t.Fatalf("expected unavailability announcement, got %q", got.text)
	}
}

func TestAnnounceRawSkipsOrdinalSuffix(t *testing.T) {
	root := []menu.Node{
		{Name: "Clock: 12:30", Kind: menu.KindAction, AnnounceRaw: true},
		{Name: "Battery: 90 percent", Kind: menu.KindAction, AnnounceRaw: true},
	}
	c, feedback, _ := newTestController(root)
	c.Open(context.Background())

	if got := feedback.lastSpoken(t); got.text != "Clock: 12:30" {
		t.Fatalf("expected raw announcement, got %q", got.text)
	}
	c.Handle(IntentNextSibling)
	if got := feedback.lastSpoken(t); got.text != "Battery: 90 percent" {
		t.Fatalf("expected raw announcement, got %q", got.text)
	}
}

func TestStackInvariantsUnderArbitraryIntentSequences(t *testing.T) {
	const maxDepth = 3
	rapid.Check(t, func(t *rapid.T) {
		root := []menu.Node{
			menu.Leaf("leaf", action.Handle{}),
			menu.Submenu("branch", "branch"),
		}
		branch := staticProvider("branch", []menu.Node{
			menu.Submenu("twig", "twig"),
			menu.Leaf("bud", action.Handle{}),
		})
		twig := staticProvider("twig", leaves("t1", "t2", "t3"))
		c, _, _ := newTestController(root, branch, twig)
		c.Open(context.Background())

		intents := rapid.SliceOfN(rapid.SampledFrom([]Intent{
			IntentPreviousSibling,
			IntentNextSibling,
			IntentExpand,
			IntentCollapse,
			IntentActivate,
		}), 0, 60).Draw(t, "intents")

		for _, intent := range intents {
			c.Handle(intent)
			depth := c.Depth()
			if depth < 1 || depth > maxDepth {
				t.Fatalf("depth %d escaped [1, %d]", depth, maxDepth)
			}
			frame := c.top()
			if len(frame.Items) > 0 && (frame.Focus < 0 || frame.Focus >= len(frame.Items)) {
				t.Fatalf("focus %d out of range for %d items", frame.Focus, len(frame.Items))
			}
		}
	})
}
