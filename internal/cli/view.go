package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI. The first five are the
// top-level tabs, in tab order.
type ViewID int

const (
	ViewJobs ViewID = iota
	ViewLeads
	ViewEstimates
	ViewInvoices
	ViewSettings
	ViewActionMenu
	ViewForm
	ViewPayment
)

const tabCount = int(ViewSettings) + 1

var tabLabels = [tabCount]string{"Jobs", "Leads", "Estimates", "Invoices", "Settings"}

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// detailView is implemented by tabs that can show one record in the side
// panel. Detail returns "" when no loaded record has that id.
type detailView interface {
	Detail(id string) string
}

// inputCapturer is implemented by tabs that sometimes own the keyboard,
// such as while the search box is open.
type inputCapturer interface {
	CapturesInput() bool
}

func viewCapturesInput(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
