package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/deckplay/modes"
)

// ProgressRenderer draws the progress row: a bar filled to exactly
// (index+1)/slideCount with the slide counter and percentage beside
// it.
type ProgressRenderer struct {
	session *modes.Session
	palette *Palette
}

// NewProgressRenderer creates a progress renderer
func NewProgressRenderer(session *modes.Session, palette *Palette) *ProgressRenderer {
	return &ProgressRenderer{session: session, palette: palette}
}

// barFill returns how many of width cells are filled at progress.
func barFill(width int, progress float64) int {
	filled := int(float64(width)*progress + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return filled
}

// Render implements the row above the status bar.
func (r *ProgressRenderer) Render(screen tcell.Screen) {
	p := r.palette
	width := r.session.Width
	y := r.session.Height - 2
	if y < 0 {
		return
	}

	ctrl := r.session.Ctrl
	progress := ctrl.Progress()
	label := fmt.Sprintf(" %d/%d %3.0f%% ", ctrl.Index()+1, ctrl.Deck().SlideCount(), progress*100)
	labelWidth := runewidth.StringWidth(label)

	barWidth := width - labelWidth
	if barWidth < 0 {
		barWidth = 0
	}
	filled := barFill(barWidth, progress)

	base := tcell.StyleDefault.Background(p.Background)
	for x := 0; x < barWidth; x++ {
		style := base.Foreground(p.Surface)
		if x < filled {
			style = base.Foreground(p.Teal)
		}
		screen.SetContent(x, y, '█', nil, style)
	}
	drawString(screen, barWidth, y, base.Foreground(p.Dim), label)
}
