// Package ui is the headless console front-end: it maps key presses onto the
// engine's six input intents and echoes the audio transcript. All menu
// semantics live in the nav package; this file owns nothing but the mapping.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/titoTito21/titan-menu/internal/nav"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	transcriptStyle = lipgloss.NewStyle().Faint(true)
)

// keyMap is the whole input-device contract of this front-end.
type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Activate key.Binding
	Close    key.Binding
	Abort    key.Binding
}

var defaultKeyMap = keyMap{
	Previous: key.NewBinding(key.WithKeys("up")),
	Next:     key.NewBinding(key.WithKeys("down")),
	Expand:   key.NewBinding(key.WithKeys("right")),
	Collapse: key.NewBinding(key.WithKeys("left")),
	Activate: key.NewBinding(key.WithKeys("enter")),
	Close:    key.NewBinding(key.WithKeys("esc", "q")),
	Abort:    key.NewBinding(key.WithKeys("ctrl+c")),
}

// Model implements the Bubble Tea model for the console front-end.
type Model struct {
	ctx        context.Context
	controller *nav.Controller
	transcript *Transcript
	keys       keyMap
	width      int
	height     int
}

func NewModel(ctx context.Context, controller *nav.Controller, transcript *Transcript) *Model {
	return &Model{ctx: ctx, controller: controller, transcript: transcript, keys: defaultKeyMap}
}

func (m *Model) Init() tea.Cmd {
	m.controller.Open(m.ctx)
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if intent, ok := m.intentForKey(msg); ok {
		m.controller.Handle(intent)
		if !m.controller.IsOpen() {
			return m, tea.Quit
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Abort) {
		m.controller.Handle(nav.IntentClose)
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) intentForKey(msg tea.KeyMsg) (nav.Intent, bool) {
	switch {
	case key.Matches(msg, m.keys.Previous):
		return nav.IntentPreviousSibling, true
	case key.Matches(msg, m.keys.Next):
		return nav.IntentNextSibling, true
	case key.Matches(msg, m.keys.Expand):
		return nav.IntentExpand, true
	case key.Matches(msg, m.keys.Collapse):
		return nav.IntentCollapse, true
	case key.Matches(msg, m.keys.Activate):
		return nav.IntentActivate, true
	case key.Matches(msg, m.keys.Close):
		return nav.IntentClose, true
	default:
		return 0, false
	}
}

func (m *Model) View() string {
	lines := m.transcript.Lines()
	visible := m.height - 2
	if visible < 1 {
		visible = len(lines)
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("titan-menu"))
	b.WriteString("\n")
	b.WriteString(transcriptStyle.Render(strings.Join(lines, "\n")))
	return b.String()
}
