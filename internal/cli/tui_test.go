package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnJobs(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewJobs, d.ActiveTab())
	view := d.View()
	assert.Contains(t, view, "[1 Jobs]")
	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, "TOTAL JOBS")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("q")
	assert.True(t, d.Quitting)
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("ctrl+c")
	assert.True(t, d.Quitting)
}

func TestTUI_TabNavigation(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("2")
	assert.Equal(t, ViewLeads, d.ActiveTab())
	assert.Contains(t, d.View(), "Robert Chen")

	d.Press("tab")
	assert.Equal(t, ViewEstimates, d.ActiveTab())
	assert.Contains(t, d.View(), "EST-2024-001")

	d.Press("5")
	assert.Equal(t, ViewSettings, d.ActiveTab())
	assert.Contains(t, d.View(), "Construction Pro LLC")

	d.Press("tab")
	assert.Equal(t, ViewJobs, d.ActiveTab(), "tab wraps around")

	d.Press("shift+tab")
	assert.Equal(t, ViewSettings, d.ActiveTab())

	d.Press("4")
	assert.Equal(t, ViewInvoices, d.ActiveTab())
	assert.Contains(t, d.View(), "INV-2024-103")
}

func TestTUI_FilterCycling(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("2")

	d.Press("f")
	view := d.View()
	assert.Contains(t, view, "status: Hot")
	assert.Contains(t, view, "Sarah Mitchell")
	assert.NotContains(t, view, "Robert Chen")

	d.Press("f", "f")
	view = d.View()
	assert.Contains(t, view, "status: Cold")
	assert.Contains(t, view, "Emily Davis")
	assert.NotContains(t, view, "Sarah Mitchell")

	d.Press("f")
	view = d.View()
	assert.Contains(t, view, "status: All")
	assert.Contains(t, view, "Sarah Mitchell")
	assert.Contains(t, view, "Robert Chen")
}

func TestTUI_SearchNarrowsLiveAndCapturesKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("2")

	d.Press("/")
	d.Type("chen")
	view := d.View()
	assert.Contains(t, view, "Robert Chen")
	assert.NotContains(t, view, "Sarah Mitchell")

	// Keys reach the search box, not the global bindings.
	d.Type("q2")
	assert.False(t, d.Quitting)
	assert.Equal(t, ViewLeads, d.ActiveTab())
	assert.Contains(t, d.View(), "No leads match your filters.")

	d.Press("backspace", "backspace", "enter")
	view = d.View()
	assert.Contains(t, view, "search: chen")
	assert.Contains(t, view, "Robert Chen")

	d.Press("/", "esc")
	view = d.View()
	assert.NotContains(t, view, "search:")
	assert.Contains(t, view, "Sarah Mitchell")
}

func TestTUI_LateLoadForOlderQueryIsDropped(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("2", "/")
	d.Type("chen")

	stale := contract.NewListRequest[domain.LeadStatus]().WithQuery("c")
	resp, err := app.Leads.List(context.Background(), stale)
	require.NoError(t, err)
	require.Greater(t, len(resp.Leads), 1)

	d.Send(listLoadedMsg[*domain.Lead, domain.LeadStatus]{
		id:    ViewLeads,
		req:   stale,
		items: resp.Leads,
		cards: leadCards(resp.Summary),
	})

	view := d.View()
	assert.Contains(t, view, "Robert Chen")
	assert.NotContains(t, view, "Sarah Mitchell")
	assert.NotContains(t, view, "Michael Torres")
}

func TestTUI_DetailPanelSurvivesNarrowingFilter(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("2", "enter")
	require.Equal(t, selection{Kind: ViewLeads, ID: "1"}, d.Selected())
	assert.Contains(t, d.View(), "sarah@mitchelldev.com")

	d.Press("/")
	d.Type("chen")
	d.Press("enter")

	view := d.View()
	assert.Contains(t, view, "search: chen")
	assert.Contains(t, view, "sarah@mitchelldev.com", "panel keeps the selected lead")
	assert.Equal(t, "1", d.Selected().ID)
}

func TestTUI_WideTableNarrowCards(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	wide := d.View()
	assert.Contains(t, wide, "Ends")
	assert.NotContains(t, wide, "Jan 15, 2024 - Apr 30, 2024")

	d.Resize(80, 40)
	narrow := d.View()
	assert.NotContains(t, narrow, "Ends")
	assert.Contains(t, narrow, "Jan 15, 2024 - Apr 30, 2024")
	assert.Contains(t, narrow, "Acme Corp")
}

func TestTUI_DetailPanelOpenAndClose(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("enter")
	assert.Equal(t, selection{Kind: ViewJobs, ID: "1"}, d.Selected())
	view := d.View()
	assert.Contains(t, view, "John Smith (PM)")
	assert.Contains(t, view, "Timeline")

	d.Press("esc")
	assert.Empty(t, d.Selected().ID)
	assert.NotContains(t, d.View(), "John Smith (PM)")
}

func TestTUI_DetailPanelFollowsCursor(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("2", "down", "enter")

	assert.Equal(t, selection{Kind: ViewLeads, ID: "2"}, d.Selected())
	assert.Contains(t, d.View(), "robert@chenprops.com")
}

func TestTUI_DetailPanelClearedOnTabSwitch(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("enter")
	require.NotEmpty(t, d.Selected().ID)

	d.Press("2")
	assert.Empty(t, d.Selected().ID)
	assert.NotContains(t, d.View(), "Timeline")
}

func TestTUI_DetailPanelMissingRecordRendersNothing(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(openDetailMsg{kind: ViewJobs, id: "999"})
	assert.Equal(t, "999", d.Selected().ID)
	view := d.View()
	assert.NotContains(t, view, "Timeline")
	assert.NotContains(t, view, "esc: close panel")
}

func TestTUI_ActionMenuOpensAndCloses(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("4", "a")

	assert.Equal(t, ViewActionMenu, d.OverlayID())
	view := d.View()
	assert.Contains(t, view, "Record Payment")
	assert.Contains(t, view, "Send Reminder")

	d.Press("esc")
	assert.Equal(t, ViewID(-1), d.OverlayID())
	assert.Equal(t, ViewInvoices, d.ActiveTab())
}

func TestTUI_JobDeleteRaisesDestructiveToastOnly(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("a", "x")
	assert.Equal(t, ViewID(-1), d.OverlayID())
	assert.Contains(t, d.View(), "Are you sure you want to delete Downtown Office Renovation?")

	resp, err := app.Jobs.List(context.Background(), contract.NewListRequest[domain.JobStatus]())
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 5)
}

func TestTUI_DismissNewestToast(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("a", "x")
	require.Contains(t, d.View(), "Are you sure you want to delete Downtown Office Renovation?")
	assert.Contains(t, d.View(), "x: dismiss")

	d.Press("x")
	view := d.View()
	assert.NotContains(t, view, "Are you sure you want to delete Downtown Office Renovation?")
	assert.NotContains(t, view, "x: dismiss")
	assert.Empty(t, app.Toasts.Active())
	assert.Equal(t, 1, app.Toasts.Published())
}

func TestTUI_EstimateSendFromMenu(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("3", "down", "a", "s")

	assert.Contains(t, d.View(), "EST-2024-002 has been sent to the client")
	est, err := app.Estimates.Get(context.Background(), "EST-2024-002")
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateSent, est.Status)
}

func TestTUI_AcceptedEstimateMenuOmitsSend(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("3", "down", "down", "a")

	require.Equal(t, ViewActionMenu, d.OverlayID())
	view := d.View()
	assert.Contains(t, view, "EST-2024-003")
	assert.NotContains(t, view, "Send to Client")
	assert.Contains(t, view, "Duplicate")

	d.Press("s")
	assert.Equal(t, ViewActionMenu, d.OverlayID())
	assert.Empty(t, d.Note())
	assert.Equal(t, 0, app.Toasts.Published())

	est, err := app.Estimates.Get(context.Background(), "EST-2024-003")
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateAccepted, est.Status)
}

func TestTUI_EstimateViewDetailsOpensPanelAndToast(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("3", "a", "v")

	assert.Equal(t, selection{Kind: ViewEstimates, ID: "EST-2024-001"}, d.Selected())
	view := d.View()
	assert.Contains(t, view, "Opening EST-2024-001")
	assert.Contains(t, view, "Valid until")
}

func TestTUI_PaymentFlow(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("4", "down", "down", "down", "a", "r")

	require.Equal(t, ViewPayment, d.OverlayID())
	assert.Contains(t, d.View(), "$210,000")

	d.Type("60")
	d.Press("enter")

	assert.Equal(t, ViewID(-1), d.OverlayID())
	assert.Contains(t, d.View(), "$60 recorded for INV-2024-104")

	inv, err := app.Invoices.Get(context.Background(), "INV-2024-104")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePartial, inv.Status)
	assert.Equal(t, domain.Dollars(60), inv.Paid)
}

func TestTUI_PaymentRejectsInvalidAmounts(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("4", "a", "r")
	require.Equal(t, ViewPayment, d.OverlayID())

	d.Press("enter")
	assert.Equal(t, ViewPayment, d.OverlayID())
	assert.Contains(t, d.View(), "amount is required")

	d.Type("0")
	d.Press("enter")
	assert.Equal(t, ViewPayment, d.OverlayID())
	assert.Contains(t, d.View(), "payment must be greater than $0")

	d.Press("backspace")
	d.Type("abc")
	d.Press("enter")
	assert.Equal(t, ViewPayment, d.OverlayID())
	assert.Contains(t, d.View(), "enter an amount like")

	d.Press("esc")
	assert.Equal(t, ViewID(-1), d.OverlayID())
	assert.Equal(t, 0, app.Toasts.Published())
}

func TestTUI_DeleteConfirmCancelledWithEsc(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("2", "a", "x")

	require.Equal(t, ViewForm, d.OverlayID())
	assert.Contains(t, d.View(), `Delete lead "Sarah Mitchell"?`)

	d.Press("esc")
	assert.Equal(t, ViewID(-1), d.OverlayID())
	assert.Equal(t, "Cancelled.", d.Note())

	_, err := app.Leads.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0, app.Toasts.Published())
}

func TestTUI_CreateFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("n")
	require.Equal(t, ViewForm, d.OverlayID())
	assert.Contains(t, d.View(), "New Job")

	d.Press("esc")
	assert.Equal(t, ViewID(-1), d.OverlayID())
}

func TestTUI_SettingsEnableTwoFactor(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Press("5", "t")

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.TwoFactorEnabled)
	assert.Contains(t, d.View(), "Two-factor")
	assert.Equal(t, 1, app.Toasts.Published())
}

func TestTUI_MutationErrorShowsNote(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(mutationDoneMsg{err: errors.New("store unavailable")})
	assert.Contains(t, d.View(), "store unavailable")

	d.Press("down")
	assert.Empty(t, d.Note(), "any key clears the note")
}
