package modes

import (
	"github.com/lixenwraith/deckplay/audio"
	"github.com/lixenwraith/deckplay/deck"
	"github.com/lixenwraith/deckplay/present"
)

// Session holds the view state wrapped around the presentation
// controller: the active mode, overlay cursors, and quiz item focus.
// Like the controller it is mutated only from the event loop.
type Session struct {
	Ctrl  *present.Controller
	Audio audio.Player

	Mode        ViewMode
	JumpText    string // digits collected in jump mode
	ContentsPos int    // selected row in the contents overlay
	QuizFocus   int    // focused quiz item on the current slide

	Width, Height int
}

// NewSession creates a session in slides mode over the controller.
func NewSession(ctrl *present.Controller, player audio.Player, width, height int) *Session {
	return &Session{
		Ctrl:   ctrl,
		Audio:  player,
		Mode:   ModeSlides,
		Width:  width,
		Height: height,
	}
}

// HandleResize records the new screen size. Resizing never changes
// the slide index.
func (s *Session) HandleResize(width, height int) {
	s.Width = width
	s.Height = height
}

// QuizItems returns the quiz items on the current slide, or nil when
// it is not a quiz slide.
func (s *Session) QuizItems() []deck.QuizItem {
	slide := s.Ctrl.Slide()
	if slide == nil || slide.Kind != deck.KindQuiz {
		return nil
	}
	return slide.Items
}

// FocusedItem returns the focused quiz item on the current slide, or
// nil when the slide has none. The focus is clamped into range in
// case the slide changed underneath it.
func (s *Session) FocusedItem() *deck.QuizItem {
	items := s.QuizItems()
	if len(items) == 0 {
		return nil
	}
	if s.QuizFocus < 0 {
		s.QuizFocus = 0
	}
	if s.QuizFocus >= len(items) {
		s.QuizFocus = len(items) - 1
	}
	return &items[s.QuizFocus]
}

// ModuleIndex returns the contents row of the module that contains
// the current slide.
func (s *Session) ModuleIndex() int {
	mods := s.Ctrl.Deck().Modules()
	row := 0
	for i, m := range mods {
		if m.Slide <= s.Ctrl.Index() {
			row = i
		}
	}
	return row
}
