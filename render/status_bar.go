package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/deckplay/modes"
)

const keyHint = "? help · t contents · : jump · m mute · q quit"

// StatusBarRenderer draws the bottom row: mode chip, audio state,
// deck title, and the key hint.
type StatusBarRenderer struct {
	session *modes.Session
	palette *Palette
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(session *modes.Session, palette *Palette) *StatusBarRenderer {
	return &StatusBarRenderer{session: session, palette: palette}
}

// modeColor returns the chip background for the active mode.
func (r *StatusBarRenderer) modeColor() tcell.Color {
	switch r.session.Mode {
	case modes.ModeJump:
		return r.palette.Pink
	case modes.ModeContents:
		return r.palette.Teal
	case modes.ModeHelp:
		return r.palette.Green
	default:
		return r.palette.Purple
	}
}

// Render implements the bottom screen row.
func (r *StatusBarRenderer) Render(screen tcell.Screen) {
	p := r.palette
	s := r.session
	width := s.Width
	y := s.Height - 1
	if y < 0 {
		return
	}

	barStyle := tcell.StyleDefault.Background(p.Surface)
	fillRow(screen, y, width, barStyle)

	// Mode chip.
	chipStyle := tcell.StyleDefault.Background(r.modeColor()).Foreground(tcell.ColorBlack).Bold(true)
	x := drawString(screen, 0, y, chipStyle, " "+s.Mode.String()+" ")

	// Audio indicator.
	audioStyle := tcell.StyleDefault.Background(p.Green).Foreground(tcell.ColorBlack)
	audioText := " ♪ "
	if s.Audio.Muted() {
		audioStyle = tcell.StyleDefault.Background(p.Warn).Foreground(tcell.ColorBlack)
		audioText = " M "
	}
	x = drawString(screen, x, y, audioStyle, audioText)

	// Typed slide number while jumping.
	if s.Mode == modes.ModeJump {
		x = drawString(screen, x+1, y, barStyle.Foreground(p.Pink).Bold(true), ":"+s.JumpText+"█")
	}

	// Deck title, then the hint right-aligned when it fits.
	title := s.Ctrl.Deck().Title
	hintWidth := runewidth.StringWidth(keyHint)
	titleRoom := width - x - hintWidth - 4
	if titleRoom > 4 {
		drawStringClipped(screen, x+2, y, titleRoom, barStyle.Foreground(p.Dim), title)
	}
	if hintWidth < width-x-1 {
		drawString(screen, width-hintWidth-1, y, barStyle.Foreground(p.Dim), keyHint)
	}
}
