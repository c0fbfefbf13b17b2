package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard draws a compact bordered card. Highlighted cards get the accent
// border.
func RenderCard(content string, width int, highlighted bool) string {
	border := ColorDim
	if highlighted {
		border = ColorHeader
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(1).
		PaddingRight(1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

// KeyValue renders an aligned "Label  value" line for detail panels.
func KeyValue(label, value string) string {
	if value == "" {
		value = Dim("--")
	}
	return StyleDim.Render(padRight(label, 12)) + value
}

// Initials renders avatar initials as a small badge.
func Initials(s string) string {
	return StylePurple.Bold(true).Render("(" + s + ")")
}

// Truncate shortens s to at most n visible cells, marking the cut with "…".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-w)
}
