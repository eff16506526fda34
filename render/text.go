package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawString draws s at (x, y), advancing by display width so emoji
// and other wide runes keep columns aligned. Returns the x position
// after the last cell drawn.
func drawString(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawStringClipped draws s truncated to maxWidth display cells.
func drawStringClipped(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, s string) int {
	return drawString(screen, x, y, style, runewidth.Truncate(s, maxWidth, "…"))
}

// fillRow paints one row of background cells.
func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// fillRect paints a rectangle of background cells.
func fillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}
}

// drawFrame draws a double-line border around the rectangle with an
// optional title centered in the top edge.
func drawFrame(screen tcell.Screen, x, y, w, h int, style tcell.Style, title string) {
	if w < 2 || h < 2 {
		return
	}
	screen.SetContent(x, y, '╔', nil, style)
	screen.SetContent(x+w-1, y, '╗', nil, style)
	screen.SetContent(x, y+h-1, '╚', nil, style)
	screen.SetContent(x+w-1, y+h-1, '╝', nil, style)
	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, '═', nil, style)
		screen.SetContent(x+i, y+h-1, '═', nil, style)
	}
	for i := 1; i < h-1; i++ {
		screen.SetContent(x, y+i, '║', nil, style)
		screen.SetContent(x+w-1, y+i, '║', nil, style)
	}
	if title != "" {
		label := " " + title + " "
		lw := runewidth.StringWidth(label)
		if lw < w-2 {
			drawString(screen, x+(w-lw)/2, y, style, label)
		}
	}
}

// wrapText word-wraps s to the given display width. Words wider than
// the width get their own line and are clipped at draw time.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		lineWidth := runewidth.StringWidth(line)
		for _, word := range words[1:] {
			ww := runewidth.StringWidth(word)
			if lineWidth+1+ww <= width {
				line += " " + word
				lineWidth += 1 + ww
				continue
			}
			lines = append(lines, line)
			line = word
			lineWidth = ww
		}
		lines = append(lines, line)
	}
	return lines
}

// centerX returns the x offset that centers s in width.
func centerX(width int, s string) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	return x
}
