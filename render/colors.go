package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/deck"
)

// RGB color definitions from the course palette
var (
	RgbBackground = tcell.NewRGBColor(0x1a, 0x1a, 0x2e) // Deep navy page background
	RgbSurface    = tcell.NewRGBColor(0x16, 0x21, 0x3e) // Card surface
	RgbText       = tcell.NewRGBColor(0xff, 0xff, 0xff) // Body text
	RgbDim        = tcell.NewRGBColor(0xa7, 0xa9, 0xbe) // Secondary text
	RgbPurple     = tcell.NewRGBColor(0xa8, 0x55, 0xf7) // Headings
	RgbTeal       = tcell.NewRGBColor(0x06, 0xb6, 0xd4) // Accents, explanations
	RgbPink       = tcell.NewRGBColor(0xe0, 0x56, 0xa0) // Discussion prompts
	RgbWarn       = tcell.NewRGBColor(0xff, 0x6b, 0x6b) // Warnings, wrong answers
	RgbGreen      = tcell.NewRGBColor(0x2c, 0xb6, 0x7d) // Tips, correct answers
	RgbRealTalkBg = tcell.NewRGBColor(0x1f, 0x1a, 0x3e) // Real-talk callout fill
	RgbTipGreenBg = tcell.NewRGBColor(0x15, 0x2a, 0x1f) // Green callout fill
	RgbWarnBoxBg  = tcell.NewRGBColor(0x2e, 0x1a, 0x1a) // Warning callout fill
)

// Palette holds the resolved colors for one color capability level.
type Palette struct {
	Background tcell.Color
	Surface    tcell.Color
	Text       tcell.Color
	Dim        tcell.Color
	Purple     tcell.Color
	Teal       tcell.Color
	Pink       tcell.Color
	Warn       tcell.Color
	Green      tcell.Color
	RealTalkBg tcell.Color
	TipGreenBg tcell.Color
	WarnBoxBg  tcell.Color
}

// TrueColorPalette returns the course palette at full color depth.
func TrueColorPalette() *Palette {
	return &Palette{
		Background: RgbBackground,
		Surface:    RgbSurface,
		Text:       RgbText,
		Dim:        RgbDim,
		Purple:     RgbPurple,
		Teal:       RgbTeal,
		Pink:       RgbPink,
		Warn:       RgbWarn,
		Green:      RgbGreen,
		RealTalkBg: RgbRealTalkBg,
		TipGreenBg: RgbTipGreenBg,
		WarnBoxBg:  RgbWarnBoxBg,
	}
}

// Xterm256Palette returns the nearest xterm-256 approximations for
// terminals without direct color support.
func Xterm256Palette() *Palette {
	return &Palette{
		Background: tcell.Color234,
		Surface:    tcell.Color235,
		Text:       tcell.ColorWhite,
		Dim:        tcell.Color248,
		Purple:     tcell.Color135,
		Teal:       tcell.Color38,
		Pink:       tcell.Color168,
		Warn:       tcell.Color203,
		Green:      tcell.Color35,
		RealTalkBg: tcell.Color236,
		TipGreenBg: tcell.Color22,
		WarnBoxBg:  tcell.Color52,
	}
}

// DetectPalette resolves the -color flag. "auto" picks true color
// when the terminal advertises it via COLORTERM.
func DetectPalette(mode string) *Palette {
	switch mode {
	case "truecolor":
		return TrueColorPalette()
	case "256":
		return Xterm256Palette()
	default:
		ct := strings.ToLower(os.Getenv("COLORTERM"))
		if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
			return TrueColorPalette()
		}
		return Xterm256Palette()
	}
}

// CalloutColors returns the border and fill colors for a callout kind.
func (p *Palette) CalloutColors(kind deck.CalloutKind) (fg, bg tcell.Color) {
	switch kind {
	case deck.CalloutRealTalk:
		return p.Purple, p.RealTalkBg
	case deck.CalloutWarn:
		return p.Warn, p.WarnBoxBg
	default:
		return p.Green, p.TipGreenBg
	}
}
