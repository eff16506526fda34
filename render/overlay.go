package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/modes"
)

// helpRows lists the key bindings shown in the help overlay.
var helpRows = [][2]string{
	{"Right  l  Space  PgDn", "next slide"},
	{"Left  h  PgUp  Bksp", "previous slide"},
	{"Click right / left half", "next / previous slide"},
	{"Home  /  End", "first / last slide"},
	{":  g", "jump to slide number"},
	{"t", "table of contents"},
	{"Tab  j  k", "focus quiz item"},
	{"1-9  a-d", "answer focused item"},
	{"Enter", "reveal answer, then next"},
	{"m", "toggle sound"},
	{"?  F1", "this help"},
	{"q  Ctrl+C", "quit"},
}

// OverlayRenderer draws the centered modal window for the help and
// contents modes on top of the slide.
type OverlayRenderer struct {
	session *modes.Session
	palette *Palette
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(session *modes.Session, palette *Palette) *OverlayRenderer {
	return &OverlayRenderer{session: session, palette: palette}
}

// IsVisible returns true when the overlay should be rendered
func (r *OverlayRenderer) IsVisible() bool {
	return r.session.Mode == modes.ModeHelp || r.session.Mode == modes.ModeContents
}

// Render draws the overlay window.
func (r *OverlayRenderer) Render(screen tcell.Screen) {
	if !r.IsVisible() {
		return
	}
	p := r.palette
	width, height := r.session.Width, r.session.Height

	boxWidth := width * 4 / 5
	boxHeight := height * 4 / 5
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxHeight < 15 {
		boxHeight = 15
	}
	if boxWidth > width {
		boxWidth = width
	}
	if boxHeight > height {
		boxHeight = height
	}
	x := (width - boxWidth) / 2
	y := (height - boxHeight) / 2

	bg := tcell.StyleDefault.Background(p.Surface)
	fillRect(screen, x, y, boxWidth, boxHeight, bg)

	title := "Help"
	if r.session.Mode == modes.ModeContents {
		title = "Contents"
	}
	drawFrame(screen, x, y, boxWidth, boxHeight, bg.Foreground(p.Purple), title)

	innerX := x + 3
	innerY := y + 2
	innerWidth := boxWidth - 6
	innerHeight := boxHeight - 4

	if r.session.Mode == modes.ModeHelp {
		r.renderHelp(screen, innerX, innerY, innerWidth, innerHeight)
	} else {
		r.renderContents(screen, innerX, innerY, innerWidth, innerHeight)
	}
}

// renderHelp draws the two-column key binding list.
func (r *OverlayRenderer) renderHelp(screen tcell.Screen, x, y, width, height int) {
	p := r.palette
	keyStyle := tcell.StyleDefault.Background(p.Surface).Foreground(p.Teal)
	textStyle := tcell.StyleDefault.Background(p.Surface).Foreground(p.Text)

	keyCol := 0
	for _, row := range helpRows {
		if w := len(row[0]); w > keyCol {
			keyCol = w
		}
	}
	keyCol += 3

	for i, row := range helpRows {
		if i >= height {
			break
		}
		drawStringClipped(screen, x, y+i, keyCol, keyStyle, row[0])
		drawStringClipped(screen, x+keyCol, y+i, width-keyCol, textStyle, row[1])
	}
}

// renderContents draws the module picker with the selection
// highlighted. Long lists scroll around the selection.
func (r *OverlayRenderer) renderContents(screen tcell.Screen, x, y, width, height int) {
	p := r.palette
	s := r.session
	mods := s.Ctrl.Deck().Modules()

	start := 0
	if len(mods) > height {
		start = s.ContentsPos - height/2
		if start < 0 {
			start = 0
		}
		if start > len(mods)-height {
			start = len(mods) - height
		}
	}

	current := s.ModuleIndex()
	for row := 0; row < height && start+row < len(mods); row++ {
		i := start + row
		m := mods[i]

		marker := "  "
		if i == current {
			marker = "• "
		}
		line := fmt.Sprintf("%s%3d  %s", marker, m.Slide+1, m.Title)

		style := tcell.StyleDefault.Background(p.Surface).Foreground(p.Text)
		if i == s.ContentsPos {
			style = tcell.StyleDefault.Background(p.Purple).Foreground(tcell.ColorBlack).Bold(true)
			for fx := x; fx < x+width; fx++ {
				screen.SetContent(fx, y+row, ' ', nil, style)
			}
		}
		drawStringClipped(screen, x, y+row, width, style, line)
	}
}
