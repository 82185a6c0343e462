package events

import (
	"time"

	"github.com/titoTito21/titan-menu/internal/logging"
)

type FeedbackTracer struct{}

var Feedback = FeedbackTracer{}

func (FeedbackTracer) Speak(text string, pan float64, pitch int, interrupt bool) {
	logging.Trace("feedback.speak", map[string]interface{}{
		"text":      text,
		"pan":       pan,
		"pitch":     pitch,
		"interrupt": interrupt,
	})
}

func (FeedbackTracer) SpeakStale(text string) {
	logging.Trace("feedback.speak-stale", map[string]interface{}{"text": text})
}

// StopLatency records how long the backend took to honour an interrupt. A hung
// stop call shows up here rather than being masked.
func (FeedbackTracer) StopLatency(d time.Duration) {
	logging.Trace("feedback.stop-latency", map[string]interface{}{"ms": d.Milliseconds()})
}

func (FeedbackTracer) Cue(name string, pan float64) {
	logging.Trace("feedback.cue", map[string]interface{}{"name": name, "pan": pan})
}

func (FeedbackTracer) CueDropped(name string) {
	logging.Trace("feedback.cue-dropped", map[string]interface{}{"name": name})
}

func (FeedbackTracer) Fallback(reason string) {
	logging.Trace("feedback.fallback", map[string]interface{}{"reason": reason})
}
