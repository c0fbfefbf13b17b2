package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/repository"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateService_List_SummaryOverFixtures(t *testing.T) {
	h := newHarness(t)

	resp, err := h.estimates.List(context.Background(), contract.NewListRequest[domain.EstimateStatus]())
	require.NoError(t, err)

	assert.Len(t, resp.Estimates, 5)
	assert.Equal(t, contract.EstimateSummary{
		Count:      5,
		TotalValue: domain.Dollars(560_000),
		Sent:       2,
		Accepted:   1,
	}, resp.Summary)
}

func TestEstimateService_List_SearchesIDClientProject(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"est-2024-004", []string{"EST-2024-004"}},
		{"KITCHEN", []string{"EST-2024-003"}},
		{"properties", []string{"EST-2024-002"}},
		{"nothing matches this", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			req := contract.NewListRequest[domain.EstimateStatus]().WithQuery(tc.query)
			resp, err := h.estimates.List(ctx, req)
			require.NoError(t, err)
			ids := []string{}
			for _, e := range resp.Estimates {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestEstimateService_List_SummaryFollowsFilter(t *testing.T) {
	h := newHarness(t)

	req := contract.NewListRequest[domain.EstimateStatus]().WithStatus(domain.EstimateSent)
	resp, err := h.estimates.List(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Summary.Count)
	assert.Equal(t, domain.Dollars(335_000), resp.Summary.TotalValue)
	assert.Equal(t, 2, resp.Summary.Sent)
	assert.Zero(t, resp.Summary.Accepted)
}

func TestEstimateService_Create(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.estimates.Create(ctx, contract.CreateEstimateRequest{
		Client:     "Acme Corp",
		Project:    "Lobby Refresh",
		Amount:     "$12,500.50",
		ValidUntil: "2026-04-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "EST-2026-006", res.ID)
	assert.Equal(t, "Estimate Created", res.Notification.Title)
	assert.Equal(t, "EST-2026-006 has been created", res.Notification.Body)

	resp, err := h.estimates.List(ctx, contract.NewListRequest[domain.EstimateStatus]())
	require.NoError(t, err)
	first := resp.Estimates[0]
	assert.Equal(t, &domain.Estimate{
		ID:         "EST-2026-006",
		Client:     "Acme Corp",
		Project:    "Lobby Refresh",
		Amount:     1_250_050,
		Status:     domain.EstimateDraft,
		Date:       "Mar 5, 2026",
		ValidUntil: "Apr 5, 2026",
	}, first)

	ev := h.observer.last()
	assert.Equal(t, "create-estimate", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "EST-2026-006", ev.Fields["id"])
}

func TestEstimateService_Create_RejectsMissingFields(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  contract.CreateEstimateRequest
		want error
	}{
		{"no client", contract.CreateEstimateRequest{Project: "p", Amount: "1", ValidUntil: "x"}, domain.ErrRequired},
		{"no amount", contract.CreateEstimateRequest{Client: "c", Project: "p", ValidUntil: "x"}, domain.ErrRequired},
		{"bad amount", contract.CreateEstimateRequest{Client: "c", Project: "p", Amount: "lots", ValidUntil: "x"}, domain.ErrInvalidMoney},
		{"no valid until", contract.CreateEstimateRequest{Client: "c", Project: "p", Amount: "1"}, domain.ErrRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.estimates.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Zero(t, h.bus.Published(), "failed creates publish nothing")
	resp, err := h.estimates.List(ctx, contract.NewListRequest[domain.EstimateStatus]())
	require.NoError(t, err)
	assert.Len(t, resp.Estimates, 5)
}

func TestEstimateService_Send(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.estimates.Send(ctx, "EST-2024-002")
	require.NoError(t, err)
	assert.Equal(t, "EST-2024-002 has been sent to the client", res.Notification.Body)

	est, err := h.estimates.Get(ctx, "EST-2024-002")
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateSent, est.Status)

	// Re-sending keeps it Sent.
	_, err = h.estimates.Send(ctx, "EST-2024-002")
	require.NoError(t, err)
}

func TestEstimateService_Send_ClosedEstimatesRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, id := range []string{"EST-2024-003", "EST-2024-005"} {
		_, err := h.estimates.Send(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, id)
	}
	assert.Zero(t, h.bus.Published())

	est, err := h.estimates.Get(ctx, "EST-2024-003")
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateAccepted, est.Status)
}

func TestEstimateService_Duplicate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.estimates.Duplicate(ctx, "EST-2024-003")
	require.NoError(t, err)
	assert.Equal(t, "Created EST-2026-006 from EST-2024-003", res.Notification.Body)

	src, err := h.estimates.Get(ctx, "EST-2024-003")
	require.NoError(t, err)
	dup, err := h.estimates.Get(ctx, res.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.EstimateDraft, dup.Status)
	assert.Equal(t, src.Client, dup.Client)
	assert.Equal(t, src.Project, dup.Project)
	assert.Equal(t, src.Amount, dup.Amount)
	assert.Equal(t, "Mar 5, 2026", dup.Date)
	assert.Equal(t, domain.EstimateAccepted, src.Status, "source is untouched")
}

func TestEstimateService_IDsStayUniqueAfterDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first, err := h.estimates.Duplicate(ctx, "EST-2024-001")
	require.NoError(t, err)
	_, err = h.estimates.Delete(ctx, first.ID)
	require.NoError(t, err)

	second, err := h.estimates.Duplicate(ctx, "EST-2024-001")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "EST-2026-007", second.ID)
}

func TestEstimateService_Delete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.estimates.Delete(ctx, "EST-2024-004")
	require.NoError(t, err)
	assert.Equal(t, "Estimate Deleted", res.Notification.Title)

	_, err = h.estimates.Get(ctx, "EST-2024-004")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = h.estimates.Delete(ctx, "EST-2024-004")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 1, h.bus.Published())
}

func TestEstimateService_Stubs(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.estimates.Download(ctx, "EST-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Downloading PDF", res.Notification.Title)

	res, err = h.estimates.View(ctx, "EST-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Opening EST-2024-001", res.Notification.Body)

	_, err = h.estimates.Download(ctx, "EST-1999-999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEstimateService_Create_RollsBackOnInsertFailure(t *testing.T) {
	pinClock(t, testNow)
	database := testutil.NewTestDB(t)
	injected := errors.New("injected insert failure")

	// Exec #1 seeds id_sequences, exec #2 inserts the estimate.
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	h := newHarnessWithUoW(t, database, failing)
	ctx := context.Background()

	_, err := h.estimates.Create(ctx, contract.CreateEstimateRequest{
		Client: "Acme Corp", Project: "Atrium", Amount: "$1,000", ValidUntil: "Apr 1, 2026",
	})
	require.ErrorIs(t, err, injected)
	assert.Zero(t, h.bus.Published())
	assert.False(t, h.observer.last().Success)

	// The allocation rolled back with the insert, so the next id is still 001.
	n, err := repository.NewSQLiteSequenceRepo(database).NextNumber(ctx, repository.SeqEstimates)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
