package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/listview"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/spf13/cobra"
)

// errNotConfirmed is returned by destructive commands run without --yes.
var errNotConfirmed = errors.New("refusing to delete without --yes")

// printResult writes the notification a mutation published.
func printResult(w io.Writer, res *contract.MutationResult) {
	fmt.Fprintln(w, notificationLine(res.Notification))
}

func notificationLine(n notify.Notification) string {
	if n.Variant == notify.VariantDestructive {
		return formatter.StyleRed.Render("! "+n.Title) + "  " + n.Body
	}
	return formatter.StyleGreen.Render("✔ "+n.Title) + "  " + n.Body
}

// printList writes summary cards followed by a table, or a dim note when
// nothing matched.
func printList(w io.Writer, noun string, cards []formatter.StatCard, headers []string, rows [][]string, rightAligned ...int) {
	fmt.Fprintln(w, formatter.RenderStatCards(cards, 0))
	if len(rows) == 0 {
		fmt.Fprintln(w, formatter.Dim("No "+noun+" match."))
		return
	}
	fmt.Fprint(w, formatter.RenderTable(headers, rows, rightAligned...))
}

func addListFlags[S listview.Status](cmd *cobra.Command, status *statusFlag[S], query *string) {
	cmd.Flags().Var(status, "status", status.usage())
	cmd.Flags().StringVarP(query, "query", "q", "", "Case-insensitive search text")
}

func addConfirmFlag(cmd *cobra.Command, yes *bool) {
	cmd.Flags().BoolVarP(yes, "yes", "y", false, "Confirm the deletion")
}

// stubCmd builds a command that runs fn against one record id and prints
// the resulting notification.
func stubCmd(use, short string, fn func(cmd *cobra.Command, id string) (*contract.MutationResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := fn(cmd, args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
