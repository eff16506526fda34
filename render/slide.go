package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/deck"
	"github.com/lixenwraith/deckplay/modes"
)

// sideMargin is the horizontal padding around slide content.
const sideMargin = 3

// SlideRenderer draws the current slide into the area above the
// progress and status rows. Exactly one slide is visible at a time.
type SlideRenderer struct {
	session *modes.Session
	palette *Palette
}

// NewSlideRenderer creates a slide renderer
func NewSlideRenderer(session *modes.Session, palette *Palette) *SlideRenderer {
	return &SlideRenderer{session: session, palette: palette}
}

// Render draws the slide at the controller's current index.
func (r *SlideRenderer) Render(screen tcell.Screen) {
	slide := r.session.Ctrl.Slide()
	if slide == nil {
		return
	}

	width := r.session.Width
	height := r.session.Height - 2 // progress and status rows
	if height < 1 || width <= 2*sideMargin {
		return
	}

	switch slide.Kind {
	case deck.KindTitle:
		r.renderTitle(screen, slide, width, height)
	case deck.KindDiscussion:
		r.renderDiscussion(screen, slide, width, height)
	case deck.KindQuiz:
		r.renderQuiz(screen, slide, width, height)
	case deck.KindAgreement:
		r.renderAgreement(screen, slide, width, height)
	default:
		r.renderContent(screen, slide, width, height)
	}
}

// heading draws the icon and title row shared by the boxed layouts.
func (r *SlideRenderer) heading(screen tcell.Screen, slide *deck.Slide, width, y int) int {
	p := r.palette
	titleStyle := tcell.StyleDefault.Background(p.Background).Foreground(p.Purple).Bold(true)
	text := slide.Title
	if slide.Icon != "" {
		text = slide.Icon + " " + slide.Title
	}
	drawStringClipped(screen, sideMargin, y, width-2*sideMargin, titleStyle, text)

	ruleStyle := tcell.StyleDefault.Background(p.Background).Foreground(p.Surface)
	for x := sideMargin; x < width-sideMargin; x++ {
		screen.SetContent(x, y+1, '─', nil, ruleStyle)
	}
	return y + 3
}

// renderTitle centers a module title card vertically.
func (r *SlideRenderer) renderTitle(screen tcell.Screen, slide *deck.Slide, width, height int) {
	p := r.palette
	base := tcell.StyleDefault.Background(p.Background)

	var rows []struct {
		text  string
		style tcell.Style
	}
	add := func(text string, style tcell.Style) {
		rows = append(rows, struct {
			text  string
			style tcell.Style
		}{text, style})
	}

	if slide.Module != "" {
		add(slide.Module, base.Foreground(p.Dim))
		add("", base)
	}
	title := slide.Title
	if slide.Icon != "" {
		title = slide.Icon + "  " + slide.Title
	}
	add(title, base.Foreground(p.Purple).Bold(true))
	if len(slide.Body) > 0 {
		add("", base)
		for _, line := range slide.Body {
			for _, wrapped := range wrapText(line, width-2*sideMargin) {
				add(wrapped, base.Foreground(p.Teal))
			}
		}
	}

	startY := (height - len(rows)) / 2
	if startY < 0 {
		startY = 0
	}
	for i, row := range rows {
		y := startY + i
		if y >= height {
			break
		}
		drawString(screen, centerX(width, row.text), y, row.style, row.text)
	}
}

// renderContent lays out body paragraphs, bullets, callouts, and the
// footnote in reading order.
func (r *SlideRenderer) renderContent(screen tcell.Screen, slide *deck.Slide, width, height int) {
	p := r.palette
	base := tcell.StyleDefault.Background(p.Background)
	contentWidth := width - 2*sideMargin

	y := r.heading(screen, slide, width, 1)

	for _, para := range slide.Body {
		for _, line := range wrapText(para, contentWidth) {
			if y >= height {
				return
			}
			drawString(screen, sideMargin, y, base.Foreground(p.Text), line)
			y++
		}
		y++
	}

	for _, b := range slide.Bullets {
		indent := 0
		if b.Icon != "" {
			if y >= height {
				return
			}
			indent = drawString(screen, sideMargin, y, base.Foreground(p.Text), b.Icon+" ") - sideMargin
		}
		first := true
		for _, line := range wrapText(b.Text, contentWidth-indent) {
			if y >= height {
				return
			}
			drawString(screen, sideMargin+indent, y, base.Foreground(p.Text), line)
			if first && indent == 0 {
				indent = 3
				first = false
			}
			y++
		}
	}

	for _, c := range slide.Callouts {
		y++
		y = r.renderCallout(screen, &c, width, height, y)
	}

	if slide.Note != "" {
		y++
		for _, line := range wrapText(slide.Note, contentWidth) {
			if y >= height {
				return
			}
			drawString(screen, sideMargin, y, base.Foreground(p.Dim).Italic(true), line)
			y++
		}
	}
}

// renderCallout draws one labeled highlight box and returns the row
// after it.
func (r *SlideRenderer) renderCallout(screen tcell.Screen, c *deck.Callout, width, height, y int) int {
	p := r.palette
	fg, bg := p.CalloutColors(c.Kind)
	boxWidth := width - 2*sideMargin
	lines := wrapText(c.Text, boxWidth-4)

	boxHeight := len(lines) + 2
	if c.Label != "" {
		boxHeight++
	}
	if y+boxHeight > height {
		boxHeight = height - y
	}
	if boxHeight <= 0 {
		return y
	}
	fillRect(screen, sideMargin, y, boxWidth, boxHeight, tcell.StyleDefault.Background(bg))

	// Accent stripe down the left edge.
	stripe := tcell.StyleDefault.Background(bg).Foreground(fg)
	for row := 0; row < boxHeight; row++ {
		screen.SetContent(sideMargin, y+row, '▌', nil, stripe)
	}

	rowY := y + 1
	if c.Label != "" && rowY < y+boxHeight {
		drawStringClipped(screen, sideMargin+2, rowY, boxWidth-4, stripe.Bold(true), c.Label)
		rowY++
	}
	textStyle := tcell.StyleDefault.Background(bg).Foreground(p.Text)
	for _, line := range lines {
		if rowY >= y+boxHeight || rowY >= height {
			break
		}
		drawString(screen, sideMargin+2, rowY, textStyle, line)
		rowY++
	}
	return y + boxHeight
}

// renderDiscussion centers the prompt in a bordered card.
func (r *SlideRenderer) renderDiscussion(screen tcell.Screen, slide *deck.Slide, width, height int) {
	p := r.palette

	boxWidth := width * 3 / 4
	if boxWidth < 20 {
		boxWidth = width - 2
	}
	lines := wrapText(slide.Prompt, boxWidth-6)
	boxHeight := len(lines) + 4
	if boxHeight > height {
		boxHeight = height
	}
	x := (width - boxWidth) / 2
	y := (height - boxHeight) / 2
	if y < 0 {
		y = 0
	}

	fillRect(screen, x, y, boxWidth, boxHeight, tcell.StyleDefault.Background(p.Surface))
	border := tcell.StyleDefault.Background(p.Surface).Foreground(p.Pink)
	drawFrame(screen, x, y, boxWidth, boxHeight, border, "💬 Let's Talk")

	textStyle := tcell.StyleDefault.Background(p.Surface).Foreground(p.Text)
	for i, line := range lines {
		rowY := y + 2 + i
		if rowY >= y+boxHeight-1 {
			break
		}
		drawString(screen, x+3, rowY, textStyle, line)
	}
}

// renderQuiz draws every item on the slide with its reveal state. The
// focused item carries a marker; hidden items show a key hint.
func (r *SlideRenderer) renderQuiz(screen tcell.Screen, slide *deck.Slide, width, height int) {
	p := r.palette
	base := tcell.StyleDefault.Background(p.Background)
	contentWidth := width - 2*sideMargin

	y := r.heading(screen, slide, width, 1)

	for i := range slide.Items {
		item := &slide.Items[i]
		focused := i == r.session.QuizFocus
		revealed := r.session.Ctrl.Revealed(item.ID)
		choice, hasChoice := r.session.Ctrl.Choice(item.ID)

		marker := "  "
		markerStyle := base.Foreground(p.Pink).Bold(true)
		if focused {
			marker = "▶ "
		}
		if y >= height {
			return
		}
		x := drawString(screen, sideMargin, y, markerStyle, marker)
		qStyle := base.Foreground(p.Text).Bold(true)
		for j, line := range wrapText(fmt.Sprintf("Q%d. %s", i+1, item.Question), contentWidth-2) {
			if y >= height {
				return
			}
			if j > 0 {
				x = sideMargin + 2
			}
			drawString(screen, x, y, qStyle, line)
			y++
		}

		for oi, opt := range item.Options {
			if y >= height {
				return
			}
			label := fmt.Sprintf("%d) %s", oi+1, opt)
			style := base.Foreground(p.Dim)
			switch {
			case !revealed:
				style = base.Foreground(p.Text)
			case oi == item.Correct:
				label = "✓ " + label
				style = base.Foreground(p.Green).Bold(true)
			case hasChoice && oi == choice:
				label = "✗ " + label
				style = base.Foreground(p.Warn)
			}
			for j, line := range wrapText(label, contentWidth-6) {
				if y >= height {
					return
				}
				indent := sideMargin + 4
				if j > 0 {
					indent += 2
				}
				drawString(screen, indent, y, style, line)
				y++
			}
		}

		if revealed && item.Explanation != "" {
			for _, line := range wrapText("→ "+item.Explanation, contentWidth-4) {
				if y >= height {
					return
				}
				drawString(screen, sideMargin+4, y, base.Foreground(p.Teal), line)
				y++
			}
		} else if focused {
			if y >= height {
				return
			}
			drawString(screen, sideMargin+4, y, base.Foreground(p.Dim), "1-9/a-d answer · Enter reveal · Tab next")
			y++
		}
		y++
	}
}

// renderAgreement draws the checklist slide.
func (r *SlideRenderer) renderAgreement(screen tcell.Screen, slide *deck.Slide, width, height int) {
	p := r.palette
	base := tcell.StyleDefault.Background(p.Background)
	contentWidth := width - 2*sideMargin

	y := r.heading(screen, slide, width, 1)

	for _, para := range slide.Body {
		for _, line := range wrapText(para, contentWidth) {
			if y >= height {
				return
			}
			drawString(screen, sideMargin, y, base.Foreground(p.Teal), line)
			y++
		}
		y++
	}

	for _, entry := range slide.Checklist {
		if y >= height {
			return
		}
		x := drawString(screen, sideMargin, y, base.Foreground(p.Green), "☐ ")
		indent := x - sideMargin
		for j, line := range wrapText(entry, contentWidth-indent) {
			if y >= height {
				return
			}
			if j > 0 {
				x = sideMargin + indent
			}
			drawString(screen, x, y, base.Foreground(p.Text), line)
			y++
			x = sideMargin + indent
		}
	}
}
