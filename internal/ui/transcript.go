package ui

import "sync"

const defaultTranscriptLines = 200

// Transcript is the shared record of everything the audio layer emitted.
// Speech workers append from their own goroutines; the view reads it on each
// repaint. The engine itself renders nothing — this is a debugging aid for
// sighted developers, not part of the accessible surface.
type Transcript struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func NewTranscript() *Transcript {
	return &Transcript{max: defaultTranscriptLines}
}

func (t *Transcript) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}
