package cli

import (
	"time"

	"github.com/alexanderramin/foreman/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg opens a dialog above the active tab.
type pushViewMsg struct {
	view View
}

// popViewMsg closes the top dialog.
type popViewMsg struct{}

// replaceViewMsg swaps the top dialog for another one.
type replaceViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a dialog finishes or is cancelled.
// The appModel handles it atomically: pop the dialog, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every tab to reload its data.
type refreshViewMsg struct{}

// mutationDoneMsg reports the outcome of a service call made from the
// dashboard.
type mutationDoneMsg struct {
	result *contract.MutationResult
	err    error
}

// openDetailMsg selects a record for the side panel.
type openDetailMsg struct {
	kind ViewID
	id   string
}

// noteMsg shows a one-line note in the status area until the next key.
type noteMsg struct {
	text string
}

// toastTickMsg re-renders the toast strip so expired entries disappear.
type toastTickMsg time.Time

// targetedMsg is a message meant for one tab regardless of which is active.
type targetedMsg interface {
	target() ViewID
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func openDetail(kind ViewID, id string) tea.Cmd {
	return func() tea.Msg { return openDetailMsg{kind: kind, id: id} }
}

func note(text string) tea.Cmd {
	return func() tea.Msg { return noteMsg{text: text} }
}

// closeThen pops the top dialog and runs next.
func closeThen(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}
