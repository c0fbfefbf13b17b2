package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/domain"
)

// Detail renderers produce the body of the side panel and of the "show"
// commands.

func jobDetail(j *domain.Job) string {
	var b strings.Builder
	b.WriteString(formatter.Bold(j.Name) + "\n")
	b.WriteString(formatter.JobPill(j.Status) + "\n\n")
	b.WriteString(formatter.KeyValue("Job", "#"+j.ID) + "\n")
	b.WriteString(formatter.KeyValue("Client", j.Client) + "\n")
	b.WriteString(formatter.KeyValue("Value", j.Value.String()) + "\n")
	b.WriteString(formatter.KeyValue("Timeline", j.Timeline()) + "\n")
	b.WriteString(formatter.KeyValue("Location", j.Location) + "\n")
	b.WriteString(formatter.KeyValue("Progress", formatter.RenderProgress(j.Completion, 16)) + "\n")

	if j.Description != "" {
		b.WriteString("\n" + formatter.Header("Description") + "\n")
		b.WriteString(j.Description + "\n")
	}
	if len(j.Team) > 0 {
		b.WriteString("\n" + formatter.Header("Team") + "\n")
		for _, member := range j.Team {
			name, _, _ := strings.Cut(member, " (")
			b.WriteString(formatter.Initials(domain.Initials(name)) + " " + member + "\n")
		}
	}
	if len(j.Milestones) > 0 {
		b.WriteString("\n" + formatter.Header("Milestones") + "\n")
		for _, m := range j.Milestones {
			b.WriteString(formatter.Pill(m.Name, formatter.MilestoneTone(m.Status)) +
				formatter.Dim("  "+m.Date+"  "+m.Status.String()) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func leadDetail(l *domain.Lead) string {
	var b strings.Builder
	b.WriteString(formatter.Initials(l.Initials()) + " " + formatter.Bold(l.Name) + "\n")
	b.WriteString(formatter.LeadPill(l.Status) + "\n\n")
	b.WriteString(formatter.KeyValue("Company", l.Company) + "\n")
	b.WriteString(formatter.KeyValue("Email", l.Email) + "\n")
	b.WriteString(formatter.KeyValue("Phone", l.Phone) + "\n")
	b.WriteString(formatter.KeyValue("Location", l.Location) + "\n")
	b.WriteString(formatter.KeyValue("Value", l.Value.String()) + "\n")
	b.WriteString(formatter.KeyValue("Source", l.Source.String()) + "\n")
	b.WriteString(formatter.KeyValue("Last contact", l.LastContact))
	return b.String()
}

func estimateDetail(e *domain.Estimate) string {
	var b strings.Builder
	b.WriteString(formatter.Bold(e.ID) + "\n")
	b.WriteString(formatter.EstimatePill(e.Status) + "\n\n")
	b.WriteString(formatter.KeyValue("Client", e.Client) + "\n")
	b.WriteString(formatter.KeyValue("Project", e.Project) + "\n")
	b.WriteString(formatter.KeyValue("Amount", e.Amount.String()) + "\n")
	b.WriteString(formatter.KeyValue("Created", e.Date) + "\n")
	b.WriteString(formatter.KeyValue("Valid until", e.ValidUntil))
	return b.String()
}

func invoiceDetail(inv *domain.Invoice) string {
	pct := 0
	if inv.Amount > 0 {
		pct = int(inv.Paid * 100 / inv.Amount)
	}
	var b strings.Builder
	b.WriteString(formatter.Bold(inv.ID) + "\n")
	b.WriteString(formatter.InvoicePill(inv.Status) + "\n\n")
	b.WriteString(formatter.KeyValue("Client", inv.Client) + "\n")
	b.WriteString(formatter.KeyValue("Project", inv.Project) + "\n")
	b.WriteString(formatter.KeyValue("Amount", inv.Amount.String()) + "\n")
	b.WriteString(formatter.KeyValue("Paid", inv.Paid.String()) + "\n")
	b.WriteString(formatter.KeyValue("Outstanding", inv.Outstanding().String()) + "\n")
	b.WriteString(formatter.KeyValue("Collected", formatter.RenderProgress(pct, 16)) + "\n")
	b.WriteString(formatter.KeyValue("Issued", inv.IssueDate) + "\n")
	b.WriteString(formatter.KeyValue("Due", inv.DueDate))
	return b.String()
}

func settingsDetail(s *domain.Settings) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Profile") + "\n")
	b.WriteString(formatter.KeyValue("Name", s.Profile.FullName()) + "\n")
	b.WriteString(formatter.KeyValue("Email", s.Profile.Email) + "\n")
	b.WriteString(formatter.KeyValue("Phone", s.Profile.Phone) + "\n\n")

	b.WriteString(formatter.Header("Company") + "\n")
	b.WriteString(formatter.KeyValue("Name", s.Company.Name) + "\n")
	b.WriteString(formatter.KeyValue("Address", s.Company.Address) + "\n")
	b.WriteString(formatter.KeyValue("Tax ID", s.Company.TaxID) + "\n")
	b.WriteString(formatter.KeyValue("License", s.Company.License) + "\n\n")

	b.WriteString(formatter.Header("Notifications") + "\n")
	b.WriteString(formatter.KeyValue("Email", onOff(s.Notifications.Email)) + "\n")
	b.WriteString(formatter.KeyValue("New leads", onOff(s.Notifications.Leads)) + "\n")
	b.WriteString(formatter.KeyValue("Invoices", onOff(s.Notifications.Invoices)) + "\n")
	b.WriteString(formatter.KeyValue("Tasks", onOff(s.Notifications.Tasks)) + "\n\n")

	b.WriteString(formatter.Header("Security") + "\n")
	b.WriteString(formatter.KeyValue("Two-factor", onOff(s.TwoFactorEnabled)) + "\n\n")

	b.WriteString(formatter.Header("Team ("+strconv.Itoa(len(s.Team))+")") + "\n")
	for _, m := range s.Team {
		b.WriteString(formatter.Initials(m.Initials()) + " " + formatter.Bold(m.Name) + " " +
			formatter.Dim(m.Email) + "  " + formatter.StyleBlue.Render(m.Role.String()) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func onOff(v bool) string {
	if v {
		return formatter.StyleGreen.Render("on")
	}
	return formatter.Dim("off")
}
