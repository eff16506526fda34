package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is a single sine tone within a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes holds the tone sequence for each cue. Multi-note cues play
// their notes back to back.
var cueNotes = map[Cue][]note{
	CueSlide:   {{660, 35 * time.Millisecond}},
	CueBump:    {{150, 60 * time.Millisecond}},
	CueReveal:  {{520, 60 * time.Millisecond}},
	CueCorrect: {{660, 70 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CueWrong:   {{320, 80 * time.Millisecond}, {180, 120 * time.Millisecond}},
}

// Engine plays cues through the system speaker. All methods are safe
// to call when the backend failed to initialize; they just do nothing.
// The engine is driven from the single event loop, so no locking.
type Engine struct {
	enabled bool
	muted   bool
}

// NewEngine initializes the speaker. A backend failure returns the
// error for logging together with a disabled engine that the caller
// keeps using; audio is never a reason not to present.
func NewEngine(muted bool) (*Engine, error) {
	e := &Engine{muted: muted}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return e, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	e.enabled = true
	return e, nil
}

// Play renders the cue unless the engine is muted or disabled.
func (e *Engine) Play(c Cue) {
	if !e.enabled || e.muted {
		return
	}
	notes, ok := cueNotes[c]
	if !ok {
		return
	}

	streams := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return
		}
		streams = append(streams, beep.Take(sampleRate.N(n.dur), sine))
	}
	speaker.Play(beep.Seq(streams...))
}

// SetMuted silences or restores cue playback.
func (e *Engine) SetMuted(muted bool) {
	e.muted = muted
}

// Muted reports whether cue playback is silenced.
func (e *Engine) Muted() bool {
	return e.muted
}

// Close releases the speaker.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
		e.enabled = false
	}
}
