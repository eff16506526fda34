package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/modes"
)

// Renderer draws one layer of the frame.
type Renderer interface {
	Render(screen tcell.Screen)
}

// Orchestrator composes the frame: background, slide, progress row,
// status bar, and any overlay on top. The event loop calls Draw after
// every handled event; there is no animation ticker.
type Orchestrator struct {
	session   *modes.Session
	palette   *Palette
	renderers []Renderer
}

// NewOrchestrator wires the standard renderer stack over the session.
func NewOrchestrator(session *modes.Session, palette *Palette) *Orchestrator {
	return &Orchestrator{
		session: session,
		palette: palette,
		renderers: []Renderer{
			NewSlideRenderer(session, palette),
			NewProgressRenderer(session, palette),
			NewStatusBarRenderer(session, palette),
			NewOverlayRenderer(session, palette),
		},
	}
}

// Draw renders a complete frame and flushes it to the terminal.
func (o *Orchestrator) Draw(screen tcell.Screen) {
	base := tcell.StyleDefault.Background(o.palette.Background)
	screen.Fill(' ', base)
	for _, r := range o.renderers {
		r.Render(screen)
	}
	screen.Show()
}
