package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/fixtures"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/repository"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)

type harness struct {
	db        *sql.DB
	uow       db.UnitOfWork
	bus       *notify.Bus
	observer  *recordingObserver
	jobs      JobService
	leads     LeadService
	estimates EstimateService
	invoices  InvoiceService
	settings  SettingsService
}

// newHarness wires every service over a store seeded with the default
// fixtures and pins the service clock to testNow.
func newHarness(t *testing.T) *harness {
	t.Helper()
	pinClock(t, testNow)

	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	set, err := fixtures.Parse(fixtures.Default, nil)
	require.NoError(t, err)
	require.NoError(t, fixtures.Seed(context.Background(), uow, set))

	return newHarnessWithUoW(t, database, uow)
}

func newHarnessWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *harness {
	t.Helper()
	bus := notify.NewBus(10, time.Hour, notify.WithClock(func() time.Time { return testNow }))
	obs := &recordingObserver{}
	return &harness{
		db:        database,
		uow:       uow,
		bus:       bus,
		observer:  obs,
		jobs:      NewJobService(repository.NewSQLiteJobRepo(database), uow, bus, obs),
		leads:     NewLeadService(repository.NewSQLiteLeadRepo(database), uow, bus, obs),
		estimates: NewEstimateService(repository.NewSQLiteEstimateRepo(database), uow, bus, obs),
		invoices:  NewInvoiceService(repository.NewSQLiteInvoiceRepo(database), uow, bus, obs),
		settings:  NewSettingsService(repository.NewSQLiteSettingsRepo(database), uow, bus, obs),
	}
}

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := clock
	clock = func() time.Time { return at }
	t.Cleanup(func() { clock = prev })
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}
