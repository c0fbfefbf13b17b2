package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Job-site palette: safety orange for headings, concrete grey for muted text.
var (
	ColorGreen  = lipgloss.Color("#7fb069")
	ColorYellow = lipgloss.Color("#f2c14e")
	ColorRed    = lipgloss.Color("#e4572e")
	ColorBlue   = lipgloss.Color("#6c9bc7")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorDim    = lipgloss.Color("#8a8f98")
	ColorFg     = lipgloss.Color("#e8e6e3")
	ColorHeader = lipgloss.Color("#ff7f11")
)

var (
	StyleGreen  = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed    = fg(ColorRed)
	StyleBlue   = fg(ColorBlue)
	StylePurple = fg(ColorPurple)
	StyleDim    = fg(ColorDim)
	StyleFg     = fg(ColorFg)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold   = fg(ColorFg).Bold(true)
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Tone is the semantic color of a status pill.
type Tone uint8

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneWarn
	ToneBad
	ToneInfo
)

// Style returns the foreground style for t.
func (t Tone) Style() lipgloss.Style {
	switch t {
	case ToneGood:
		return StyleGreen
	case ToneWarn:
		return StyleYellow
	case ToneBad:
		return StyleRed
	case ToneInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders an upper-cased section title over a dim rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(title), StyleDim.Render(strings.Repeat("─", len(title))))
}

func Dim(text string) string { return StyleDim.Render(text) }

func Bold(text string) string { return StyleBold.Render(text) }
