package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
)

// SequenceKind names a collection whose ids come from id_sequences.
type SequenceKind string

const (
	SeqJobs      SequenceKind = "jobs"
	SeqLeads     SequenceKind = "leads"
	SeqEstimates SequenceKind = "estimates"
	SeqInvoices  SequenceKind = "invoices"
)

// table is the collection a kind numbers. Only these fixed names are ever
// interpolated into SQL.
func (k SequenceKind) table() (string, error) {
	switch k {
	case SeqJobs, SeqLeads, SeqEstimates, SeqInvoices:
		return string(k), nil
	default:
		return "", fmt.Errorf("unknown sequence kind %q", string(k))
	}
}

// SQLiteSequenceRepo allocates id numbers atomically. The first allocation
// for a kind seeds its counter from the highest number already stored, so
// a deleted record's number is never handed out again.
type SQLiteSequenceRepo struct {
	db db.DBTX
}

func NewSQLiteSequenceRepo(conn db.DBTX) *SQLiteSequenceRepo {
	return &SQLiteSequenceRepo{db: conn}
}

func (r *SQLiteSequenceRepo) NextNumber(ctx context.Context, kind SequenceKind) (int, error) {
	table, err := kind.table()
	if err != nil {
		return 0, err
	}

	seedQuery := `INSERT OR IGNORE INTO id_sequences (kind, next_num)
		SELECT ?, COALESCE(MAX(num), 0) + 1 FROM ` + table
	if _, err := r.db.ExecContext(ctx, seedQuery, string(kind)); err != nil {
		return 0, fmt.Errorf("seeding %s sequence: %w", kind, err)
	}

	var next int
	allocQuery := `UPDATE id_sequences
		SET next_num = next_num + 1
		WHERE kind = ?
		RETURNING next_num - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, string(kind)).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next %s number: %w", kind, err)
	}
	return next, nil
}
