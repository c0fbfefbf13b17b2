package cli

import (
	"fmt"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/spf13/cobra"
)

func newInvoicesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Billing and payments",
	}

	cmd.AddCommand(
		newInvoicesListCmd(app),
		newInvoicesShowCmd(app),
		newInvoicesAddCmd(app),
		newInvoicesPayCmd(app),
		stubCmd("download", "Download an invoice as PDF",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Invoices.Download(cmd.Context(), id)
			}),
		stubCmd("remind", "Send a payment reminder",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Invoices.SendReminder(cmd.Context(), id)
			}),
		newInvoicesRemoveCmd(app),
	)

	return cmd
}

var invoiceHeaders = []string{"ID", "CLIENT", "PROJECT", "AMOUNT", "PAID", "STATUS", "DUE"}

func invoiceRows(invoices []*domain.Invoice) [][]string {
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.ID, inv.Client, inv.Project, inv.Amount.String(), inv.Paid.String(), formatter.InvoicePill(inv.Status), inv.DueDate,
		})
	}
	return rows
}

func newInvoicesListCmd(app *App) *cobra.Command {
	status := newStatusFlag(domain.ParseInvoiceStatus, domain.InvoiceStatuses())
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Invoices.List(cmd.Context(), contract.InvoiceListRequest{Status: status.sel, Query: query})
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), "invoices", invoiceCards(resp.Summary), invoiceHeaders, invoiceRows(resp.Invoices), 3, 4)
			return nil
		},
	}

	addListFlags(cmd, status, &query)
	return cmd
}

func newInvoicesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Invoices.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), invoiceDetail(inv))
			return nil
		},
	}
}

func newInvoicesAddCmd(app *App) *cobra.Command {
	var req contract.CreateInvoiceRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Issue a new invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Invoices.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&req.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&req.Amount, "amount", "", `Invoiced amount, e.g. "$85,000"`)
	cmd.Flags().StringVar(&req.DueDate, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newInvoicesPayCmd(app *App) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Record a payment against an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Invoices.RecordPayment(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", `Payment received, e.g. "$12,500"`)
	return cmd
}

func newInvoicesRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an invoice",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			res, err := app.Invoices.Delete(cmd.Context(), args[0])
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
