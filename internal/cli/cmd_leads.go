package cli

import (
	"fmt"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/spf13/cobra"
)

func newLeadsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leads",
		Aliases: []string{"lead"},
		Short:   "Sales pipeline",
	}

	cmd.AddCommand(
		newLeadsListCmd(app),
		newLeadsShowCmd(app),
		newLeadsAddCmd(app),
		newLeadsUpdateCmd(app),
		newLeadsRemoveCmd(app),
		stubCmd("convert", "Convert a lead into a job and drop it from the pipeline",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Leads.Convert(cmd.Context(), id)
			}),
		stubCmd("contact", "Start contacting a lead",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Leads.Contact(cmd.Context(), id)
			}),
	)

	return cmd
}

var leadHeaders = []string{"ID", "NAME", "COMPANY", "STATUS", "VALUE", "SOURCE", "LAST CONTACT"}

func leadRows(leads []*domain.Lead) [][]string {
	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []string{
			l.ID, l.Name, l.Company, formatter.LeadPill(l.Status), l.Value.String(), l.Source.String(), l.LastContact,
		})
	}
	return rows
}

func newLeadsListCmd(app *App) *cobra.Command {
	status := newStatusFlag(domain.ParseLeadStatus, domain.LeadStatuses())
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Leads.List(cmd.Context(), contract.LeadListRequest{Status: status.sel, Query: query})
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), "leads", leadCards(resp.Summary), leadHeaders, leadRows(resp.Leads), 4)
			return nil
		},
	}

	addListFlags(cmd, status, &query)
	return cmd
}

func newLeadsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Leads.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), leadDetail(l))
			return nil
		},
	}
}

// leadFlags binds the lead form to flags. Status and source arrive as text
// and are parsed in resolve.
type leadFlags struct {
	in         contract.LeadInput
	statusName string
	sourceName string
}

func (f *leadFlags) register(cmd *cobra.Command, defaults bool) {
	statusDefault, sourceDefault := "", ""
	if defaults {
		statusDefault, sourceDefault = domain.LeadWarm.String(), domain.SourceWebsite.String()
	}
	cmd.Flags().StringVar(&f.in.Name, "name", "", "Contact name")
	cmd.Flags().StringVar(&f.in.Company, "company", "", "Company")
	cmd.Flags().StringVar(&f.in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.in.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.in.Location, "location", "", "City, state")
	cmd.Flags().StringVar(&f.in.Value, "value", "", `Estimated value, e.g. "$85,000"`)
	cmd.Flags().StringVar(&f.statusName, "status", statusDefault, "Hot, Warm or Cold")
	cmd.Flags().StringVar(&f.sourceName, "source", sourceDefault, "Website, Referral, Cold Call or LinkedIn")
}

// resolve parses status and source. Blank names keep the values already in
// f.in.
func (f *leadFlags) resolve() error {
	if f.statusName != "" {
		s, err := domain.ParseLeadStatus(f.statusName)
		if err != nil {
			return err
		}
		f.in.Status = s
	}
	if f.sourceName != "" {
		src, err := domain.ParseLeadSource(f.sourceName)
		if err != nil {
			return err
		}
		f.in.Source = src
	}
	return nil
}

func newLeadsAddCmd(app *App) *cobra.Command {
	var f leadFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead to the pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.resolve(); err != nil {
				return err
			}
			res, err := app.Leads.Create(cmd.Context(), f.in)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f.register(cmd, true)
	return cmd
}

// leadInputFrom returns the editable fields of l as form input.
func leadInputFrom(l *domain.Lead) contract.LeadInput {
	return contract.LeadInput{
		Name:     l.Name,
		Company:  l.Company,
		Email:    l.Email,
		Phone:    l.Phone,
		Location: l.Location,
		Value:    l.Value.String(),
		Status:   l.Status,
		Source:   l.Source,
	}
}

func newLeadsUpdateCmd(app *App) *cobra.Command {
	var f leadFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a lead; flags not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Leads.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			in := leadInputFrom(current)
			flags := cmd.Flags()
			overlay := map[string]*string{
				"name": &in.Name, "company": &in.Company, "email": &in.Email,
				"phone": &in.Phone, "location": &in.Location, "value": &in.Value,
			}
			for name, dst := range overlay {
				if flags.Changed(name) {
					*dst, _ = flags.GetString(name)
				}
			}
			f.in = in
			if err := f.resolve(); err != nil {
				return err
			}

			res, err := app.Leads.Update(cmd.Context(), args[0], f.in)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f.register(cmd, false)
	return cmd
}

func newLeadsRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a lead",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			res, err := app.Leads.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	addConfirmFlag(cmd, &yes)
	return cmd
}
