package cli

import (
	"fmt"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/spf13/cobra"
)

func newEstimatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "estimates",
		Aliases: []string{"estimate", "est"},
		Short:   "Quotes sent to clients",
	}

	cmd.AddCommand(
		newEstimatesListCmd(app),
		newEstimatesShowCmd(app),
		newEstimatesAddCmd(app),
		stubCmd("send", "Send a draft estimate to the client",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Estimates.Send(cmd.Context(), id)
			}),
		stubCmd("duplicate", "Copy an estimate into a new draft",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Estimates.Duplicate(cmd.Context(), id)
			}),
		stubCmd("download", "Download an estimate as PDF",
			func(cmd *cobra.Command, id string) (*contract.MutationResult, error) {
				return app.Estimates.Download(cmd.Context(), id)
			}),
		newEstimatesRemoveCmd(app),
	)

	return cmd
}

var estimateHeaders = []string{"ID", "CLIENT", "PROJECT", "AMOUNT", "STATUS", "DATE", "VALID UNTIL"}

func estimateRows(estimates []*domain.Estimate) [][]string {
	rows := make([][]string, 0, len(estimates))
	for _, e := range estimates {
		rows = append(rows, []string{
			e.ID, e.Client, e.Project, e.Amount.String(), formatter.EstimatePill(e.Status), e.Date, e.ValidUntil,
		})
	}
	return rows
}

func newEstimatesListCmd(app *App) *cobra.Command {
	status := newStatusFlag(domain.ParseEstimateStatus, domain.EstimateStatuses())
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Estimates.List(cmd.Context(), contract.EstimateListRequest{Status: status.sel, Query: query})
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), "estimates", estimateCards(resp.Summary), estimateHeaders, estimateRows(resp.Estimates), 3)
			return nil
		},
	}

	addListFlags(cmd, status, &query)
	return cmd
}

func newEstimatesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Estimates.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), estimateDetail(e))
			return nil
		},
	}
}

func newEstimatesAddCmd(app *App) *cobra.Command {
	var req contract.CreateEstimateRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a draft estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Estimates.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&req.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&req.Amount, "amount", "", `Quoted amount, e.g. "$45,000"`)
	cmd.Flags().StringVar(&req.ValidUntil, "valid-until", "", "Expiry date (YYYY-MM-DD)")

	return cmd
}

func newEstimatesRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an estimate",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			res, err := app.Estimates.Delete(cmd.Context(), args[0])
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
