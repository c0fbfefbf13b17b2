package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/foreman/internal/config"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/fixtures"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/repository"
	"github.com/alexanderramin/foreman/internal/service"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory store seeded with the default
// fixtures.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	set, err := fixtures.Parse(fixtures.Default, nil)
	require.NoError(t, err)
	require.NoError(t, fixtures.Seed(context.Background(), uow, set))

	bus := notify.NewBus(10, time.Hour)
	return &App{
		Jobs:      service.NewJobService(repository.NewSQLiteJobRepo(database), uow, bus),
		Leads:     service.NewLeadService(repository.NewSQLiteLeadRepo(database), uow, bus),
		Estimates: service.NewEstimateService(repository.NewSQLiteEstimateRepo(database), uow, bus),
		Invoices:  service.NewInvoiceService(repository.NewSQLiteInvoiceRepo(database), uow, bus),
		Settings:  service.NewSettingsService(repository.NewSQLiteSettingsRepo(database), uow, bus),
		Toasts:    bus,
		Config:    config.DefaultConfig(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "invoices")
}

// --- list filters ---

func TestJobsList_AllAndStatus(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Downtown Office Renovation")
	assert.Contains(t, out, "TOTAL JOBS")
	assert.Contains(t, out, "$1,600k")

	out, err = executeCmd(t, app, "jobs", "list", "--status", "planning")
	require.NoError(t, err)
	assert.Contains(t, out, "Residential Complex - Phase 2")
	assert.NotContains(t, out, "Warehouse Expansion")
}

func TestLeadsList_Query(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "leads", "list", "-q", "chen")
	require.NoError(t, err)
	assert.Contains(t, out, "Robert Chen")
	assert.NotContains(t, out, "Sarah Mitchell")
}

func TestLeadsList_NoMatches(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "leads", "list", "--query", "nobody-here")
	require.NoError(t, err)
	assert.Contains(t, out, "No leads match.")
}

func TestInvoicesList_StatusPaid(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "invoices", "list", "--status", "Paid")
	require.NoError(t, err)
	assert.Contains(t, out, "INV-2024-101")
	assert.Contains(t, out, "INV-2024-105")
	assert.NotContains(t, out, "INV-2024-103")
}

func TestInvoicesList_UnknownStatusRejected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "invoices", "list", "--status", "Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid invoice status")
}

func TestEstimatesList_StatusAndQueryCombine(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "estimates", "list", "--status", "Sent", "--query", "torres")
	require.NoError(t, err)
	assert.Contains(t, out, "EST-2024-004")
	assert.NotContains(t, out, "EST-2024-001")
}

// --- show ---

func TestJobsShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "jobs", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "John Smith (PM)")
	assert.Contains(t, out, "Jan 15, 2024 - Apr 30, 2024")
	assert.Contains(t, out, "Final Inspection")
}

func TestJobsShow_Unknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "jobs", "show", "99")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Construction Pro LLC")
	assert.Contains(t, out, "Jane Smith")
}

// --- mutations ---

func TestJobsAdd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "jobs", "add",
		"--name", "Bridge Repair", "--client", "County Roads", "--value", "$300,000")
	require.NoError(t, err)
	assert.Contains(t, out, "Job Created")
	assert.Contains(t, out, "Bridge Repair has been added for County Roads")

	resp, err := app.Jobs.List(context.Background(), contract.NewListRequest[domain.JobStatus]())
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 6)
	assert.Equal(t, domain.JobPlanning, resp.Jobs[0].Status)
}

func TestJobsAdd_MissingNameRejected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "jobs", "add", "--client", "County Roads", "--value", "100")
	require.ErrorIs(t, err, domain.ErrRequired)
	assert.Equal(t, 0, app.Toasts.Published())
}

func TestLeadsUpdate_OnlyChangedFlags(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "leads", "update", "2", "--status", "Hot")
	require.NoError(t, err)
	assert.Contains(t, out, "Robert Chen's information has been updated")

	l, err := app.Leads.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, domain.LeadHot, l.Status)
	assert.Equal(t, "Chen Properties", l.Company)
	assert.Equal(t, domain.Dollars(85_000), l.Value)
}

func TestRemove_RequiresYes(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "estimates", "remove", "EST-2024-001")
	require.ErrorIs(t, err, errNotConfirmed)

	_, err = app.Estimates.Get(context.Background(), "EST-2024-001")
	require.NoError(t, err, "estimate must survive an unconfirmed remove")

	out, err := executeCmd(t, app, "estimates", "rm", "EST-2024-001", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimate Deleted")

	_, err = app.Estimates.Get(context.Background(), "EST-2024-001")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEstimatesSend_InvalidTransition(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "estimates", "send", "EST-2024-003")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestInvoicesPay(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "invoices", "pay", "INV-2024-104", "--amount", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "$60 recorded for INV-2024-104")

	inv, err := app.Invoices.Get(context.Background(), "INV-2024-104")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePartial, inv.Status)
	assert.Equal(t, domain.Dollars(60), inv.Paid)
}

func TestInvoicesPay_RejectsNonPositive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "invoices", "pay", "INV-2024-104", "--amount", "0")
	require.ErrorIs(t, err, domain.ErrInvalidMoney)
	assert.Equal(t, 0, app.Toasts.Published())
}

func TestStubCommandsPrintNotification(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"invoices", "remind", "INV-2024-103"}, "INV-2024-103"},
		{[]string{"invoices", "download", "INV-2024-101"}, "INV-2024-101"},
		{[]string{"estimates", "download", "EST-2024-002"}, "EST-2024-002 is being downloaded"},
		{[]string{"leads", "contact", "1"}, "Initiating contact with Sarah Mitchell"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0]+" "+tt.args[1], func(t *testing.T) {
			out, err := executeCmd(t, app, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
