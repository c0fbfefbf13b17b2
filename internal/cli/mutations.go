package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastPruneInterval is how often the toast strip re-renders while toasts
// are showing.
const toastPruneInterval = 500 * time.Millisecond

// mutation is one service call that publishes a notification on success.
type mutation func(ctx context.Context) (*contract.MutationResult, error)

// runMutation executes m as a command and reports the outcome.
func runMutation(m mutation) tea.Cmd {
	return func() tea.Msg {
		res, err := m(context.Background())
		return mutationDoneMsg{result: res, err: err}
	}
}

// confirmDeleteView is a yes/no dialog that runs del only when confirmed.
func confirmDeleteView(state *SharedState, prompt string, del mutation) View {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	return newWizardView(state, "Confirm Delete", form, func() tea.Cmd {
		return confirmedDelete(confirmed, del)
	})
}

// confirmedDelete runs del after a confirmation dialog closes.
func confirmedDelete(confirmed bool, del mutation) tea.Cmd {
	if !confirmed {
		return note("Cancelled.")
	}
	return runMutation(del)
}

func toastTick() tea.Cmd {
	return tea.Tick(toastPruneInterval, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// renderToasts draws active notifications newest first.
func renderToasts(active []notify.Notification, width int) string {
	if len(active) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(active))
	for _, n := range active {
		border := formatter.ColorGreen
		title := formatter.StyleGreen.Bold(true).Render(n.Title)
		if n.Variant == notify.VariantDestructive {
			border = formatter.ColorRed
			title = formatter.StyleRed.Bold(true).Render(n.Title)
		}
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)
		if width > 0 {
			style = style.MaxWidth(width)
		}
		boxes = append(boxes, style.Render(title+"\n"+n.Body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}
