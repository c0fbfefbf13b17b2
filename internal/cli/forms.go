package cli

import (
	"context"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Each dialog binds its huh fields to a fields struct. submit turns the
// collected values into the service call, so the same path runs whether
// the form was filled by keyboard or by a test.

// formView wraps form in a dialog that runs the mutation built by submit
// once the form completes.
func formView(state *SharedState, title string, form *huh.Form, submit func() mutation) View {
	return newWizardView(state, title, form, func() tea.Cmd {
		return runMutation(submit())
	})
}

// ── jobs ─────────────────────────────────────────────────────────────────────

type jobFields struct {
	contract.CreateJobRequest
}

func newJobFields() *jobFields {
	return &jobFields{contract.CreateJobRequest{Status: domain.JobPlanning}}
}

func (f *jobFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Job Name", &f.Name),
			requiredInput("Client", &f.Client),
			huh.NewInput().Title("Value").Placeholder("$125,000").Value(&f.Value).Validate(validateMoney),
			huh.NewSelect[domain.JobStatus]().
				Title("Status").
				Options(enumOptions(domain.JobStatuses())...).
				Value(&f.Status),
		),
		huh.NewGroup(
			dateInput("Start Date (blank for today)", &f.StartDate),
			dateInput("End Date", &f.EndDate),
			huh.NewInput().Title("Location").Value(&f.Location),
			huh.NewText().Title("Description").Value(&f.Description),
		),
	)
}

func (f *jobFields) submit(app *App) mutation {
	req := f.CreateJobRequest
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Jobs.Create(ctx, req)
	}
}

// ── leads ────────────────────────────────────────────────────────────────────

type leadFields struct {
	contract.LeadInput
	// id is empty when creating.
	id string
}

func newLeadFields() *leadFields {
	return &leadFields{LeadInput: contract.LeadInput{Status: domain.LeadWarm, Source: domain.SourceWebsite}}
}

// editLeadFields prefills the form with the lead's current values.
func editLeadFields(l *domain.Lead) *leadFields {
	return &leadFields{LeadInput: leadInputFrom(l), id: l.ID}
}

func (f *leadFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Name", &f.Name),
			requiredInput("Company", &f.Company),
			requiredInput("Email", &f.Email),
			huh.NewInput().Title("Phone").Value(&f.Phone),
			huh.NewInput().Title("Location").Value(&f.Location),
		),
		huh.NewGroup(
			huh.NewInput().Title("Estimated Value").Placeholder("$85,000").Value(&f.Value).Validate(validateMoney),
			huh.NewSelect[domain.LeadStatus]().
				Title("Status").
				Options(enumOptions(domain.LeadStatuses())...).
				Value(&f.Status),
			huh.NewSelect[domain.LeadSource]().
				Title("Source").
				Options(enumOptions(domain.LeadSources())...).
				Value(&f.Source),
		),
	)
}

func (f *leadFields) submit(app *App) mutation {
	in, id := f.LeadInput, f.id
	return func(ctx context.Context) (*contract.MutationResult, error) {
		if id == "" {
			return app.Leads.Create(ctx, in)
		}
		return app.Leads.Update(ctx, id, in)
	}
}

// ── estimates and invoices ───────────────────────────────────────────────────

type estimateFields struct {
	contract.CreateEstimateRequest
}

func (f *estimateFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Client", &f.Client),
			requiredInput("Project", &f.Project),
			huh.NewInput().Title("Amount").Placeholder("$45,000").Value(&f.Amount).Validate(validateMoney),
			requiredDateInput("Valid Until", &f.ValidUntil),
		),
	)
}

func (f *estimateFields) submit(app *App) mutation {
	req := f.CreateEstimateRequest
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Estimates.Create(ctx, req)
	}
}

type invoiceFields struct {
	contract.CreateInvoiceRequest
}

func (f *invoiceFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Client", &f.Client),
			requiredInput("Project", &f.Project),
			huh.NewInput().Title("Amount").Placeholder("$45,000").Value(&f.Amount).Validate(validateMoney),
			requiredDateInput("Due Date", &f.DueDate),
		),
	)
}

func (f *invoiceFields) submit(app *App) mutation {
	req := f.CreateInvoiceRequest
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Invoices.Create(ctx, req)
	}
}

// ── settings ─────────────────────────────────────────────────────────────────

type profileFields struct {
	domain.Profile
}

func (f *profileFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("First Name", &f.FirstName),
			requiredInput("Last Name", &f.LastName),
			requiredInput("Email", &f.Email),
			huh.NewInput().Title("Phone").Value(&f.Phone),
		),
	)
}

func (f *profileFields) submit(app *App) mutation {
	p := f.Profile
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Settings.SaveProfile(ctx, p)
	}
}

type companyFields struct {
	domain.Company
}

func (f *companyFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Company Name", &f.Name),
			huh.NewInput().Title("Address").Value(&f.Address),
			huh.NewInput().Title("Tax ID").Value(&f.TaxID),
			huh.NewInput().Title("License Number").Value(&f.License),
		),
	)
}

func (f *companyFields) submit(app *App) mutation {
	c := f.Company
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Settings.SaveCompany(ctx, c)
	}
}

// Notification channel keys used by the multi-select.
const (
	channelEmail    = "email"
	channelLeads    = "leads"
	channelInvoices = "invoices"
	channelTasks    = "tasks"
)

type notificationFields struct {
	enabled []string
}

func newNotificationFields(p domain.NotificationPrefs) *notificationFields {
	f := &notificationFields{}
	for _, ch := range []struct {
		key string
		on  bool
	}{
		{channelEmail, p.Email},
		{channelLeads, p.Leads},
		{channelInvoices, p.Invoices},
		{channelTasks, p.Tasks},
	} {
		if ch.on {
			f.enabled = append(f.enabled, ch.key)
		}
	}
	return f
}

func (f *notificationFields) prefs() domain.NotificationPrefs {
	var p domain.NotificationPrefs
	for _, k := range f.enabled {
		switch k {
		case channelEmail:
			p.Email = true
		case channelLeads:
			p.Leads = true
		case channelInvoices:
			p.Invoices = true
		case channelTasks:
			p.Tasks = true
		}
	}
	return p
}

func (f *notificationFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Notify me about").
				Options(
					huh.NewOption("Email notifications", channelEmail),
					huh.NewOption("New leads", channelLeads),
					huh.NewOption("Invoice updates", channelInvoices),
					huh.NewOption("Task reminders", channelTasks),
				).
				Value(&f.enabled),
		),
	)
}

func (f *notificationFields) submit(app *App) mutation {
	p := f.prefs()
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Settings.SaveNotifications(ctx, p)
	}
}

type passwordFields struct {
	domain.PasswordChange
}

func (f *passwordFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Current Password", &f.Current).EchoMode(huh.EchoModePassword),
			requiredInput("New Password", &f.New).EchoMode(huh.EchoModePassword),
			requiredInput("Confirm Password", &f.Confirm).EchoMode(huh.EchoModePassword),
		),
	)
}

func (f *passwordFields) submit(app *App) mutation {
	pc := f.PasswordChange
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Settings.ChangePassword(ctx, pc)
	}
}

type inviteFields struct {
	email string
}

func (f *inviteFields) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Email", &f.email).Placeholder("colleague@example.com"),
		),
	)
}

func (f *inviteFields) submit(app *App) mutation {
	email := f.email
	return func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Settings.InviteMember(ctx, email)
	}
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title + " (YYYY-MM-DD)").
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// requiredDateInput is dateInput for a date the record cannot be saved without.
func requiredDateInput(title string, value *string) *huh.Input {
	return dateInput(title, value).Validate(validateRequiredDate(title))
}
