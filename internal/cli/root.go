package cli

import (
	"github.com/alexanderramin/foreman/internal/config"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands and
// the dashboard.
type App struct {
	Jobs      service.JobService
	Leads     service.LeadService
	Estimates service.EstimateService
	Invoices  service.InvoiceService
	Settings  service.SettingsService

	// Toasts is the bus the services publish to; the dashboard renders its
	// active entries.
	Toasts *notify.Bus
	Config config.Config

	// IsInteractive reports whether the bare command should start the
	// dashboard. Nil means never.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "foreman" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "foreman",
		Short:         "Jobs, leads, estimates and invoices for a construction business",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newJobsCmd(app),
		newLeadsCmd(app),
		newEstimatesCmd(app),
		newInvoicesCmd(app),
		newSettingsCmd(app),
	)

	return root
}
