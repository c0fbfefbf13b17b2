package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatCard is one summary figure shown above a list.
type StatCard struct {
	Label string
	Value string
	Tone  Tone
}

// RenderStatCards lays cards out in a row when they fit within width and
// stacks them in two columns otherwise.
func RenderStatCards(cards []StatCard, width int) string {
	if len(cards) == 0 {
		return ""
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		value := StyleBold.Render(c.Value)
		if c.Tone != ToneNeutral {
			value = c.Tone.Style().Bold(true).Render(c.Value)
		}
		body := StyleDim.Render(strings.ToUpper(c.Label)) + "\n" + value
		rendered[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1).
			Width(cardWidth(cards)).
			Render(body)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width <= 0 || lipgloss.Width(row) <= width {
		return row
	}

	var rows []string
	for i := 0; i < len(rendered); i += 2 {
		end := min(i+2, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardWidth(cards []StatCard) int {
	w := 12
	for _, c := range cards {
		w = max(w, lipgloss.Width(c.Label)+2, lipgloss.Width(c.Value)+2)
	}
	return w
}
