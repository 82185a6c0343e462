package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/titoTito21/titan-menu/internal/logging"
	"github.com/titoTito21/titan-menu/internal/logging/events"
)

// ErrBackendUnavailable reports that a speech or cue backend cannot be used.
// Sinks return it (or any other error) to trigger the plain fallback; the
// navigation layer never sees it.
var ErrBackendUnavailable = errors.New("audio backend unavailable")

const defaultCueSlots = 4

// Dispatcher fans speech and cue requests out to worker goroutines. Callers
// never block: Speak and PlayCue return immediately. Speech workers run one at
// a time in request order, each waiting on its predecessor, so "stop previous,
// start next" stays one audible step.
type Dispatcher struct {
	stereo   SpeechSink
	plain    SpeechSink
	cues     CueSink
	settings Settings

	// speakMu guards the queue tail. Ordering comes from the completion
	// chain, not the mutex: each worker waits for the previous worker's
	// done channel before touching the backend.
	speakMu   sync.Mutex
	queueTail chan struct{}

	// generation advances only on interrupting utterances. A queued
	// utterance whose generation is no longer current has been interrupted
	// away and must not reach the backend; non-interrupting utterances
	// never invalidate anything, they wait their turn.
	generation atomic.Uint64
	degraded   atomic.Bool

	cueSlots chan struct{}
}

// NewDispatcher wires the positional backend, its plain fallback, and the cue
// sink. The fallback may be nil, in which case failures degrade to silence.
func NewDispatcher(stereo, plain SpeechSink, cues CueSink, settings Settings) *Dispatcher {
	if plain == nil {
		plain = NopSpeech{}
	}
	if cues == nil {
		cues = NopCue{}
	}
	d := &Dispatcher{
		stereo:   stereo,
		plain:    plain,
		cues:     cues,
		settings: settings,
		cueSlots: make(chan struct{}, defaultCueSlots),
	}
	if stereo == nil {
		d.degraded.Store(true)
	}
	return d
}

// Speak schedules an utterance and returns immediately. With interrupt set,
// the previous utterance's audible output is stopped before the new one starts
// and any still-queued utterances are dropped; without it, the utterance waits
// its turn behind whatever is queued and is dropped only if an interrupting
// utterance supersedes it before its worker runs.
func (d *Dispatcher) Speak(text string, pan float64, pitchOffset int, interrupt bool) {
	if !d.stereoSpeech() {
		pan = 0.0
		pitchOffset = PitchNeutral
	}
	events.Feedback.Speak(text, pan, pitchOffset, interrupt)
	var gen uint64
	if interrupt {
		gen = d.generation.Add(1)
	} else {
		gen = d.generation.Load()
	}
	u := Utterance{Text: text, Pan: pan, PitchOffset: pitchOffset}

	d.speakMu.Lock()
	prev := d.queueTail
	done := make(chan struct{})
	d.queueTail = done
	d.speakMu.Unlock()

	go d.deliver(u, gen, interrupt, prev, done)
}

func (d *Dispatcher) deliver(u Utterance, gen uint64, interrupt bool, prev, done chan struct{}) {
	defer close(done)
	if prev != nil {
		<-prev
	}
	if gen != d.generation.Load() {
		// An interrupting utterance arrived while this one was queued;
		// starting it now would replay cancelled text after the
		// interruption.
		events.Feedback.SpeakStale(u.Text)
		return
	}
	sink := d.currentSink()
	if interrupt {
		started := time.Now()
		if err := sink.Stop(); err != nil {
			sink = d.fallBack(err)
			_ = sink.Stop()
		}
		events.Feedback.StopLatency(time.Since(started))
	}
	if err := sink.Speak(u); err != nil {
		sink = d.fallBack(err)
		u.Pan = 0.0
		u.PitchOffset = PitchNeutral
		if err := sink.Speak(u); err != nil {
			logging.Error(err)
		}
	}
}

// PlayCue plays a named sound at the given stereo position. Cues overlap with
// speech and with each other up to the channel pool; when no channel is free
// the cue is dropped silently.
func (d *Dispatcher) PlayCue(cue Cue, pan float64) {
	if !d.stereoSound() {
		pan = 0.0
	}
	select {
	case d.cueSlots <- struct{}{}:
	default:
		events.Feedback.CueDropped(string(cue))
		return
	}
	events.Feedback.Cue(string(cue), pan)
	go func() {
		defer func() { <-d.cueSlots }()
		if err := d.cues.Play(cue, pan); err != nil {
			logging.Error(err)
		}
	}()
}

func (d *Dispatcher) currentSink() SpeechSink {
	if d.degraded.Load() {
		return d.plain
	}
	return d.stereo
}

func (d *Dispatcher) fallBack(err error) SpeechSink {
	if !d.degraded.Swap(true) {
		events.Feedback.Fallback(err.Error())
	}
	return d.plain
}

func (d *Dispatcher) stereoSpeech() bool {
	return d.settings == nil || d.settings.StereoSpeech()
}

func (d *Dispatcher) stereoSound() bool {
	return d.settings == nil || d.settings.StereoSound()
}
