package ui

import (
	"fmt"

	"github.com/titoTito21/titan-menu/internal/audio"
)

// SpeechEcho writes utterances to the transcript in place of a platform TTS
// backend. The positional variant annotates pan and pitch; the plain variant
// ignores them, mirroring how a real fallback backend behaves.
type SpeechEcho struct {
	transcript *Transcript
	positional bool
}

func NewSpeechEcho(transcript *Transcript, positional bool) *SpeechEcho {
	return &SpeechEcho{transcript: transcript, positional: positional}
}

func (s *SpeechEcho) Speak(u audio.Utterance) error {
	if s.positional {
		s.transcript.Append(fmt.Sprintf("speak pan=%+.2f pitch=%+d  %s", u.Pan, u.PitchOffset, u.Text))
		return nil
	}
	s.transcript.Append("speak  " + u.Text)
	return nil
}

func (s *SpeechEcho) Stop() error {
	return nil
}

// CueEcho writes cue playback to the transcript.
type CueEcho struct {
	transcript *Transcript
}

func NewCueEcho(transcript *Transcript) *CueEcho {
	return &CueEcho{transcript: transcript}
}

func (c *CueEcho) Play(cue audio.Cue, pan float64) error {
	c.transcript.Append(fmt.Sprintf("cue   pan=%+.2f  %s", pan, cue))
	return nil
}
