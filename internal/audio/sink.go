package audio

// Utterance is an immutable speech request. Workers receive copies only; they
// never read live navigation state.
type Utterance struct {
	Text        string
	Pan         float64
	PitchOffset int
}

// SpeechSink synthesizes one utterance at a time. Stop must silence the
// current utterance without leaving the backend in a state that later
// re-delivers its text.
type SpeechSink interface {
	Speak(u Utterance) error
	Stop() error
}

// CueSink plays short named sounds. Play may be called concurrently up to the
// dispatcher's channel pool size.
type CueSink interface {
	Play(cue Cue, pan float64) error
}

// Settings exposes the per-utterance stereo toggles. Implementations must be
// cheap to call: the dispatcher consults them on every speak and cue, never
// caching for the session.
type Settings interface {
	StereoSound() bool
	StereoSpeech() bool
}

// NopSpeech discards utterances. Used as the fallback of last resort so a
// missing backend degrades to silence instead of an error.
type NopSpeech struct{}

func (NopSpeech) Speak(Utterance) error { return nil }
func (NopSpeech) Stop() error           { return nil }

// NopCue discards cues.
type NopCue struct{}

func (NopCue) Play(Cue, float64) error { return nil }
