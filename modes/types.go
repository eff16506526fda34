package modes

// ViewMode selects which input map and which overlay is active.
type ViewMode int

const (
	// ModeSlides is normal presentation navigation.
	ModeSlides ViewMode = iota
	// ModeHelp shows the key reference overlay.
	ModeHelp
	// ModeJump collects a typed slide number.
	ModeJump
	// ModeContents shows the module picker overlay.
	ModeContents
)

// String returns the mode label shown in the status bar.
func (m ViewMode) String() string {
	switch m {
	case ModeSlides:
		return "SLIDES"
	case ModeHelp:
		return "HELP"
	case ModeJump:
		return "JUMP"
	case ModeContents:
		return "CONTENTS"
	default:
		return "?"
	}
}
