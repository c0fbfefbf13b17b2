package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepo_PaymentPersists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	inv := testutil.NewTestInvoice("Metro Hospital", "Medical Center",
		testutil.WithInvoiceID("INV-1"),
		testutil.WithAmounts(domain.Dollars(100), 0),
	)
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, inv.ApplyPayment(domain.Dollars(60)))
	require.NoError(t, repo.Update(ctx, inv))

	fetched, err := repo.GetByID(ctx, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Dollars(60), fetched.Paid)
	assert.Equal(t, domain.InvoicePartial, fetched.Status)
}

func TestInvoiceRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	a := testutil.NewTestInvoice("Acme Corp", "Office Renovation")
	b := testutil.NewTestInvoice("Davis Family", "Kitchen Remodel", testutil.WithInvoiceStatus(domain.InvoiceOverdue))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b, list[0])
	assert.Equal(t, a, list[1])
}

func TestInvoiceRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteInvoiceRepo(db).GetByID(context.Background(), "INV-2024-404")
	assert.ErrorIs(t, err, ErrNotFound)
}
