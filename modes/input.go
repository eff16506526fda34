package modes

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/audio"
)

// maxJumpDigits bounds the slide number typed in jump mode.
const maxJumpDigits = 4

// InputHandler maps tcell events to controller operations according
// to the active view mode.
type InputHandler struct {
	session *Session

	// prevButtons holds the button mask of the previous mouse event so
	// clicks fire on press, not on drag or release.
	prevButtons tcell.ButtonMask
}

// NewInputHandler creates a new input handler
func NewInputHandler(session *Session) *InputHandler {
	return &InputHandler{session: session}
}

// HandleEvent processes a tcell event and returns false if the player should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
		return true
	case *tcell.EventResize:
		w, height := ev.Size()
		h.session.HandleResize(w, height)
		return true
	}
	return true
}

// HandleGoto applies a navigation request that arrived outside the
// keyboard, such as the sync server's slide picker. Out-of-range
// requests are dropped like any other.
func (h *InputHandler) HandleGoto(n int) {
	h.goTo(n)
}

// handleKeyEvent dispatches keyboard events by view mode
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	// Ctrl+C quits from any mode.
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	switch h.session.Mode {
	case ModeHelp:
		return h.handleHelpKey(ev)
	case ModeJump:
		return h.handleJumpKey(ev)
	case ModeContents:
		return h.handleContentsKey(ev)
	default:
		return h.handleSlidesKey(ev)
	}
}

// handleSlidesKey handles input during normal presentation
func (h *InputHandler) handleSlidesKey(ev *tcell.EventKey) bool {
	onQuiz := len(h.session.QuizItems()) > 0

	switch ev.Key() {
	case tcell.KeyRight, tcell.KeyPgDn:
		h.next()
	case tcell.KeyLeft, tcell.KeyPgUp, tcell.KeyBackspace, tcell.KeyBackspace2:
		h.prev()
	case tcell.KeyHome:
		h.goTo(0)
	case tcell.KeyEnd:
		h.goTo(h.session.Ctrl.Deck().SlideCount() - 1)
	case tcell.KeyEnter:
		// On quiz slides Enter reveals the focused item first; once it
		// is revealed, Enter goes back to advancing.
		if item := h.session.FocusedItem(); item != nil && !h.session.Ctrl.Revealed(item.ID) {
			h.revealFocused()
		} else {
			h.next()
		}
	case tcell.KeyTab:
		if onQuiz {
			h.moveFocus(1)
		}
	case tcell.KeyBacktab:
		if onQuiz {
			h.moveFocus(-1)
		}
	case tcell.KeyF1:
		h.session.Mode = ModeHelp
	case tcell.KeyRune:
		return h.handleSlidesRune(ev.Rune(), onQuiz)
	}
	return true
}

// handleSlidesRune handles printable keys during normal presentation
func (h *InputHandler) handleSlidesRune(r rune, onQuiz bool) bool {
	switch r {
	case 'q':
		return false
	case ' ', 'l':
		h.next()
	case 'h':
		h.prev()
	case '?':
		h.session.Mode = ModeHelp
	case 't':
		h.session.Mode = ModeContents
		h.session.ContentsPos = h.session.ModuleIndex()
	case ':', 'g':
		h.session.Mode = ModeJump
		h.session.JumpText = ""
	case 'm':
		h.session.Audio.SetMuted(!h.session.Audio.Muted())
	case 'j':
		if onQuiz {
			h.moveFocus(1)
		}
	case 'k':
		if onQuiz {
			h.moveFocus(-1)
		}
	default:
		if !onQuiz {
			return true
		}
		switch {
		case r >= '1' && r <= '9':
			h.answerFocused(int(r - '1'))
		case r >= 'a' && r <= 'd':
			h.answerFocused(int(r - 'a'))
		}
	}
	return true
}

// handleJumpKey collects digits and jumps on Enter. Slide numbers are
// typed 1-based, matching the progress display.
func (h *InputHandler) handleJumpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.session.Mode = ModeSlides
		h.session.JumpText = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(h.session.JumpText); n > 0 {
			h.session.JumpText = h.session.JumpText[:n-1]
		}
	case tcell.KeyEnter:
		text := h.session.JumpText
		h.session.Mode = ModeSlides
		h.session.JumpText = ""
		if n, err := strconv.Atoi(text); err == nil {
			h.goTo(n - 1)
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= '0' && r <= '9' && len(h.session.JumpText) < maxJumpDigits {
			h.session.JumpText += string(r)
		}
	}
	return true
}

// handleContentsKey moves the module picker and jumps on Enter
func (h *InputHandler) handleContentsKey(ev *tcell.EventKey) bool {
	mods := h.session.Ctrl.Deck().Modules()

	switch ev.Key() {
	case tcell.KeyEscape:
		h.session.Mode = ModeSlides
	case tcell.KeyUp:
		h.movePicker(-1, len(mods))
	case tcell.KeyDown:
		h.movePicker(1, len(mods))
	case tcell.KeyHome:
		h.session.ContentsPos = 0
	case tcell.KeyEnd:
		h.session.ContentsPos = len(mods) - 1
	case tcell.KeyEnter:
		pos := h.session.ContentsPos
		h.session.Mode = ModeSlides
		if pos >= 0 && pos < len(mods) {
			h.goTo(mods[pos].Slide)
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 't':
			h.session.Mode = ModeSlides
		case 'k':
			h.movePicker(-1, len(mods))
		case 'j':
			h.movePicker(1, len(mods))
		}
	}
	return true
}

// handleHelpKey leaves the help overlay on any key
func (h *InputHandler) handleHelpKey(*tcell.EventKey) bool {
	h.session.Mode = ModeSlides
	return true
}

// handleMouseEvent maps wheel and click input to navigation. The
// wheel scrolls through slides; clicks on the right half of the
// screen advance and on the left half go back. Overlays ignore the
// mouse.
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ h.prevButtons
	h.prevButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	if h.session.Mode != ModeSlides {
		return
	}

	switch {
	case buttons&tcell.WheelDown != 0:
		h.next()
	case buttons&tcell.WheelUp != 0:
		h.prev()
	case pressed&tcell.Button1 != 0:
		x, _ := ev.Position()
		if x >= h.session.Width/2 {
			h.next()
		} else {
			h.prev()
		}
	}
}

// next advances one slide, with a bump cue at the end of the deck
func (h *InputHandler) next() {
	if h.session.Ctrl.Next() {
		h.session.QuizFocus = 0
		h.session.Audio.Play(audio.CueSlide)
	} else {
		h.session.Audio.Play(audio.CueBump)
	}
}

// prev steps back one slide, with a bump cue at the start of the deck
func (h *InputHandler) prev() {
	if h.session.Ctrl.Prev() {
		h.session.QuizFocus = 0
		h.session.Audio.Play(audio.CueSlide)
	} else {
		h.session.Audio.Play(audio.CueBump)
	}
}

// goTo jumps to slide n; out-of-range requests bump and change nothing
func (h *InputHandler) goTo(n int) {
	moved := n != h.session.Ctrl.Index()
	if !h.session.Ctrl.GoTo(n) {
		h.session.Audio.Play(audio.CueBump)
		return
	}
	if moved {
		h.session.QuizFocus = 0
		h.session.Audio.Play(audio.CueSlide)
	}
}

// moveFocus shifts the quiz item focus with wraparound
func (h *InputHandler) moveFocus(delta int) {
	items := h.session.QuizItems()
	if len(items) == 0 {
		return
	}
	h.session.QuizFocus = (h.session.QuizFocus + delta + len(items)) % len(items)
}

// movePicker shifts the contents selection, clamped at both ends
func (h *InputHandler) movePicker(delta, count int) {
	pos := h.session.ContentsPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > count-1 {
		pos = count - 1
	}
	h.session.ContentsPos = pos
}

// answerFocused answers the focused quiz item with the given option.
// Keys beyond the item's option count are ignored; a revealed item
// never changes.
func (h *InputHandler) answerFocused(choice int) {
	item := h.session.FocusedItem()
	if item == nil || choice >= len(item.Options) {
		return
	}
	if !h.session.Ctrl.Answer(item.ID, choice) {
		return
	}
	if choice == item.Correct {
		h.session.Audio.Play(audio.CueCorrect)
	} else {
		h.session.Audio.Play(audio.CueWrong)
	}
}

// revealFocused reveals the focused quiz item without a choice
func (h *InputHandler) revealFocused() {
	item := h.session.FocusedItem()
	if item == nil {
		return
	}
	if h.session.Ctrl.Reveal(item.ID) {
		h.session.Audio.Play(audio.CueReveal)
	}
}
