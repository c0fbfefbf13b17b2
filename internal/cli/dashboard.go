package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runDashboard starts the full-screen dashboard and blocks until it exits.
func runDashboard(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
