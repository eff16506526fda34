package audio

// Cue identifies one of the player's sound effects.
type Cue int

const (
	// CueSlide plays when navigation lands on a new slide.
	CueSlide Cue = iota
	// CueBump plays when navigation clamps at a deck boundary.
	CueBump
	// CueReveal plays when a quiz answer is revealed without a choice.
	CueReveal
	// CueCorrect plays when the chosen quiz option is right.
	CueCorrect
	// CueWrong plays when the chosen quiz option is wrong.
	CueWrong
)

// Player renders sound cues. Implementations must tolerate being
// called when no audio backend is available.
type Player interface {
	Play(Cue)
	SetMuted(bool)
	Muted() bool
	Close()
}
