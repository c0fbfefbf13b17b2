package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/spf13/cobra"
)

func newJobsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Active and planned jobs",
	}

	cmd.AddCommand(
		newJobsListCmd(app),
		newJobsShowCmd(app),
		newJobsAddCmd(app),
	)

	return cmd
}

func jobRows(jobs []*domain.Job) [][]string {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.ID, j.Name, j.Client, formatter.JobPill(j.Status), j.Value.String(), strconv.Itoa(j.Completion) + "%",
		})
	}
	return rows
}

var jobHeaders = []string{"ID", "JOB", "CLIENT", "STATUS", "VALUE", "DONE"}

func newJobsListCmd(app *App) *cobra.Command {
	status := newStatusFlag(domain.ParseJobStatus, domain.JobStatuses())
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Jobs.List(cmd.Context(), contract.JobListRequest{Status: status.sel, Query: query})
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), "jobs", jobCards(resp.Summary), jobHeaders, jobRows(resp.Jobs), 4, 5)
			return nil
		},
	}

	addListFlags(cmd, status, &query)
	return cmd
}

func newJobsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one job with its team and milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := app.Jobs.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), jobDetail(j))
			return nil
		},
	}
}

func newJobsAddCmd(app *App) *cobra.Command {
	var req contract.CreateJobRequest
	var statusName string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseJobStatus(statusName)
			if err != nil {
				return err
			}
			req.Status = s

			res, err := app.Jobs.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Job name")
	cmd.Flags().StringVar(&req.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&req.Value, "value", "", `Contract value, e.g. "$125,000"`)
	cmd.Flags().StringVar(&statusName, "status", domain.JobPlanning.String(), "In Progress, Planning, Completed or On Hold")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Location, "location", "", "Site address")
	cmd.Flags().StringVar(&req.Description, "description", "", "Scope of work")

	return cmd
}
