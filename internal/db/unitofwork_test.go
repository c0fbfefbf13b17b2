package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertInvoice(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO invoices (id, pos, client, project, status) VALUES (?, 1, 'Metro Hospital', 'Medical Center', 'Pending')`, id)
	return err
}

func invoiceExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM invoices WHERE id = ?`, id).Scan(&n))
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertInvoice(ctx, tx, "INV-2024-201")
	})
	require.NoError(t, err)
	assert.True(t, invoiceExists(t, database, "INV-2024-201"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertInvoice(ctx, tx, "INV-2024-202"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, invoiceExists(t, database, "INV-2024-202"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertInvoice(ctx, tx, "INV-2024-203")
			panic("boom")
		})
	})
	assert.False(t, invoiceExists(t, database, "INV-2024-203"))
}

func TestOpenDB_MemorySharedAcrossCalls(t *testing.T) {
	database, uow := openUoW(t)

	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertInvoice(ctx, tx, "INV-2024-204")
	}))

	// A second statement after the tx must see the same in-memory database.
	assert.True(t, invoiceExists(t, database, "INV-2024-204"))
}
