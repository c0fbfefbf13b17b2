package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// immediate closes the action menu and runs m.
func immediate(m mutation) tea.Cmd {
	return closeThen(runMutation(m))
}

// ── jobs ─────────────────────────────────────────────────────────────────────

func newJobsView(state *SharedState) View {
	return newListView(state, listSource[*domain.Job, domain.JobStatus]{
		id:       ViewJobs,
		noun:     "jobs",
		statuses: domain.JobStatuses(),
		load: func(ctx context.Context, app *App, req contract.JobListRequest) ([]*domain.Job, []formatter.StatCard, error) {
			resp, err := app.Jobs.List(ctx, req)
			if err != nil {
				return nil, nil, err
			}
			return resp.Jobs, jobCards(resp.Summary), nil
		},
		get: func(ctx context.Context, app *App, id string) (*domain.Job, error) {
			return app.Jobs.Get(ctx, id)
		},
		recordID: func(j *domain.Job) string { return j.ID },
		label:    func(j *domain.Job) string { return j.Name },
		columns: []table.Column{
			{Title: "#", Width: 3},
			{Title: "Job", Width: 24},
			{Title: "Client", Width: 18},
			{Title: "Status", Width: 11},
			{Title: "Value", Width: 11},
			{Title: "Done", Width: 5},
			{Title: "Ends", Width: 13},
		},
		row: func(j *domain.Job) table.Row {
			return table.Row{j.ID, j.Name, j.Client, j.Status.String(), j.Value.String(),
				strconv.Itoa(j.Completion) + "%", j.EndDate}
		},
		card: func(j *domain.Job) string {
			return formatter.Bold(j.Name) + "  " + formatter.JobPill(j.Status) + "\n" +
				formatter.Dim(j.Client) + "\n" +
				j.Value.String() + formatter.Dim("  "+j.Timeline()) + "\n" +
				formatter.RenderProgress(j.Completion, 20)
		},
		detail:  jobDetail,
		actions: jobActions,
		create: func(state *SharedState) tea.Cmd {
			f := newJobFields()
			return pushView(formView(state, "New Job", f.form(), func() mutation { return f.submit(state.App) }))
		},
	})
}

func jobActions(state *SharedState, j *domain.Job) []menuAction {
	app, id := state.App, j.ID
	return []menuAction{
		{label: "View Details", key: "v", fn: func() tea.Cmd { return closeThen(openDetail(ViewJobs, id)) }},
		{label: "Edit", key: "e", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Jobs.Edit(ctx, id) })
		}},
		{label: "View All Jobs", key: "w", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Jobs.ViewAll(ctx), nil })
		}},
		// Job delete only raises the destructive "are you sure" notification.
		{label: "Delete", key: "x", destructive: true, fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Jobs.Delete(ctx, id) })
		}},
	}
}

// ── leads ────────────────────────────────────────────────────────────────────

func newLeadsView(state *SharedState) View {
	return newListView(state, listSource[*domain.Lead, domain.LeadStatus]{
		id:       ViewLeads,
		noun:     "leads",
		statuses: domain.LeadStatuses(),
		load: func(ctx context.Context, app *App, req contract.LeadListRequest) ([]*domain.Lead, []formatter.StatCard, error) {
			resp, err := app.Leads.List(ctx, req)
			if err != nil {
				return nil, nil, err
			}
			return resp.Leads, leadCards(resp.Summary), nil
		},
		get: func(ctx context.Context, app *App, id string) (*domain.Lead, error) {
			return app.Leads.Get(ctx, id)
		},
		recordID: func(l *domain.Lead) string { return l.ID },
		label:    func(l *domain.Lead) string { return l.Name },
		columns: []table.Column{
			{Title: "Name", Width: 18},
			{Title: "Company", Width: 20},
			{Title: "Status", Width: 7},
			{Title: "Value", Width: 10},
			{Title: "Source", Width: 10},
			{Title: "Contacted", Width: 12},
		},
		row: func(l *domain.Lead) table.Row {
			return table.Row{l.Name, l.Company, l.Status.String(), l.Value.String(), l.Source.String(), l.LastContact}
		},
		card: func(l *domain.Lead) string {
			return formatter.Initials(l.Initials()) + " " + formatter.Bold(l.Name) + "  " + formatter.LeadPill(l.Status) + "\n" +
				formatter.Dim(l.Company+" · "+l.Email) + "\n" +
				l.Value.String() + formatter.Dim("  "+l.Source.String()+"  "+l.LastContact)
		},
		detail:  leadDetail,
		actions: leadActions,
		create: func(state *SharedState) tea.Cmd {
			f := newLeadFields()
			return pushView(formView(state, "New Lead", f.form(), func() mutation { return f.submit(state.App) }))
		},
	})
}

func leadActions(state *SharedState, l *domain.Lead) []menuAction {
	app, id, name := state.App, l.ID, l.Name
	edit := editLeadFields(l)
	return []menuAction{
		{label: "View Details", key: "v", fn: func() tea.Cmd { return closeThen(openDetail(ViewLeads, id)) }},
		{label: "Edit", key: "e", fn: func() tea.Cmd {
			return replaceView(formView(state, "Edit Lead", edit.form(), func() mutation { return edit.submit(app) }))
		}},
		{label: "Contact", key: "t", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Leads.Contact(ctx, id) })
		}},
		{label: "Convert to Job", key: "c", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Leads.Convert(ctx, id) })
		}},
		{label: "Delete", key: "x", destructive: true, fn: func() tea.Cmd {
			return replaceView(confirmDeleteView(state, fmt.Sprintf("Delete lead %q?", name),
				func(ctx context.Context) (*contract.MutationResult, error) { return app.Leads.Delete(ctx, id) }))
		}},
	}
}

// ── estimates ────────────────────────────────────────────────────────────────

func newEstimatesView(state *SharedState) View {
	return newListView(state, listSource[*domain.Estimate, domain.EstimateStatus]{
		id:       ViewEstimates,
		noun:     "estimates",
		statuses: domain.EstimateStatuses(),
		load: func(ctx context.Context, app *App, req contract.EstimateListRequest) ([]*domain.Estimate, []formatter.StatCard, error) {
			resp, err := app.Estimates.List(ctx, req)
			if err != nil {
				return nil, nil, err
			}
			return resp.Estimates, estimateCards(resp.Summary), nil
		},
		get: func(ctx context.Context, app *App, id string) (*domain.Estimate, error) {
			return app.Estimates.Get(ctx, id)
		},
		recordID: func(e *domain.Estimate) string { return e.ID },
		label:    func(e *domain.Estimate) string { return e.ID + " " + e.Project },
		columns: []table.Column{
			{Title: "Estimate", Width: 12},
			{Title: "Client", Width: 18},
			{Title: "Project", Width: 20},
			{Title: "Amount", Width: 10},
			{Title: "Status", Width: 8},
			{Title: "Valid Until", Width: 12},
		},
		row: func(e *domain.Estimate) table.Row {
			return table.Row{e.ID, e.Client, e.Project, e.Amount.String(), e.Status.String(), e.ValidUntil}
		},
		card: func(e *domain.Estimate) string {
			return formatter.Bold(e.ID) + "  " + formatter.EstimatePill(e.Status) + "\n" +
				e.Project + formatter.Dim(" · "+e.Client) + "\n" +
				e.Amount.String() + formatter.Dim("  valid until "+e.ValidUntil)
		},
		detail:  estimateDetail,
		actions: estimateActions,
		create: func(state *SharedState) tea.Cmd {
			f := &estimateFields{}
			return pushView(formView(state, "New Estimate", f.form(), func() mutation { return f.submit(state.App) }))
		},
	})
}

func estimateActions(state *SharedState, e *domain.Estimate) []menuAction {
	app, id := state.App, e.ID
	actions := []menuAction{
		{label: "View Details", key: "v", fn: func() tea.Cmd {
			return closeThen(tea.Batch(openDetail(ViewEstimates, id), runMutation(
				func(ctx context.Context) (*contract.MutationResult, error) { return app.Estimates.View(ctx, id) })))
		}},
	}
	if e.CanSend() {
		actions = append(actions, menuAction{label: "Send to Client", key: "s", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Estimates.Send(ctx, id) })
		}})
	}
	return append(actions, []menuAction{
		{label: "Duplicate", key: "d", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Estimates.Duplicate(ctx, id) })
		}},
		{label: "Download PDF", key: "p", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Estimates.Download(ctx, id) })
		}},
		{label: "Delete", key: "x", destructive: true, fn: func() tea.Cmd {
			return replaceView(confirmDeleteView(state, "Delete estimate "+id+"?",
				func(ctx context.Context) (*contract.MutationResult, error) { return app.Estimates.Delete(ctx, id) }))
		}},
	}...)
}

// ── invoices ─────────────────────────────────────────────────────────────────

func newInvoicesView(state *SharedState) View {
	return newListView(state, listSource[*domain.Invoice, domain.InvoiceStatus]{
		id:       ViewInvoices,
		noun:     "invoices",
		statuses: domain.InvoiceStatuses(),
		load: func(ctx context.Context, app *App, req contract.InvoiceListRequest) ([]*domain.Invoice, []formatter.StatCard, error) {
			resp, err := app.Invoices.List(ctx, req)
			if err != nil {
				return nil, nil, err
			}
			return resp.Invoices, invoiceCards(resp.Summary), nil
		},
		get: func(ctx context.Context, app *App, id string) (*domain.Invoice, error) {
			return app.Invoices.Get(ctx, id)
		},
		recordID: func(inv *domain.Invoice) string { return inv.ID },
		label:    func(inv *domain.Invoice) string { return inv.ID + " " + inv.Project },
		columns: []table.Column{
			{Title: "Invoice", Width: 12},
			{Title: "Client", Width: 18},
			{Title: "Amount", Width: 10},
			{Title: "Paid", Width: 10},
			{Title: "Status", Width: 8},
			{Title: "Issued", Width: 12},
			{Title: "Due", Width: 12},
		},
		row: func(inv *domain.Invoice) table.Row {
			return table.Row{inv.ID, inv.Client, inv.Amount.String(), inv.Paid.String(), inv.Status.String(), inv.IssueDate, inv.DueDate}
		},
		card: func(inv *domain.Invoice) string {
			return formatter.Bold(inv.ID) + "  " + formatter.InvoicePill(inv.Status) + "\n" +
				inv.Project + formatter.Dim(" · "+inv.Client) + "\n" +
				inv.Paid.String() + formatter.Dim(" of ") + inv.Amount.String() + formatter.Dim("  due "+inv.DueDate)
		},
		detail:  invoiceDetail,
		actions: invoiceActions,
		create: func(state *SharedState) tea.Cmd {
			f := &invoiceFields{}
			return pushView(formView(state, "New Invoice", f.form(), func() mutation { return f.submit(state.App) }))
		},
	})
}

func invoiceActions(state *SharedState, inv *domain.Invoice) []menuAction {
	app, id := state.App, inv.ID
	return []menuAction{
		{label: "View Invoice", key: "v", fn: func() tea.Cmd {
			return closeThen(tea.Batch(openDetail(ViewInvoices, id), runMutation(
				func(ctx context.Context) (*contract.MutationResult, error) { return app.Invoices.View(ctx, id) })))
		}},
		{label: "Record Payment", key: "r", fn: func() tea.Cmd {
			return replaceView(newPaymentView(state, inv))
		}},
		{label: "Send Reminder", key: "m", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Invoices.SendReminder(ctx, id) })
		}},
		{label: "Download PDF", key: "p", fn: func() tea.Cmd {
			return immediate(func(ctx context.Context) (*contract.MutationResult, error) { return app.Invoices.Download(ctx, id) })
		}},
		{label: "Delete", key: "x", destructive: true, fn: func() tea.Cmd {
			return replaceView(confirmDeleteView(state, "Delete invoice "+id+"?",
				func(ctx context.Context) (*contract.MutationResult, error) { return app.Invoices.Delete(ctx, id) }))
		}},
	}
}
