package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
)

type SQLiteEstimateRepo struct {
	db db.DBTX
}

func NewSQLiteEstimateRepo(conn db.DBTX) *SQLiteEstimateRepo {
	return &SQLiteEstimateRepo{db: conn}
}

const estimateColumns = `id, client, project, amount_cents, status, date, valid_until`

func (r *SQLiteEstimateRepo) Create(ctx context.Context, e *domain.Estimate) error {
	query := `INSERT INTO estimates (id, num, pos, client, project, amount_cents, status, date, valid_until)
		VALUES (?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM estimates), ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		trailingNumber(e.ID),
		e.Client,
		e.Project,
		int64(e.Amount),
		e.Status.String(),
		e.Date,
		e.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("inserting estimate: %w", err)
	}
	return nil
}

func (r *SQLiteEstimateRepo) GetByID(ctx context.Context, id string) (*domain.Estimate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id = ?`, id)
	e, err := scanEstimate(row)
	if err != nil {
		return nil, notFoundOr(err, "estimate", id)
	}
	return e, nil
}

func (r *SQLiteEstimateRepo) List(ctx context.Context) ([]*domain.Estimate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+estimateColumns+` FROM estimates ORDER BY pos DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}
	defer rows.Close()

	estimates := []*domain.Estimate{}
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning estimate row: %w", err)
		}
		estimates = append(estimates, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estimates: %w", err)
	}
	return estimates, nil
}

func (r *SQLiteEstimateRepo) Update(ctx context.Context, e *domain.Estimate) error {
	query := `UPDATE estimates SET client = ?, project = ?, amount_cents = ?, status = ?, date = ?, valid_until = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Client,
		e.Project,
		int64(e.Amount),
		e.Status.String(),
		e.Date,
		e.ValidUntil,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating estimate: %w", err)
	}
	return requireAffected(res, "estimate", e.ID)
}

func (r *SQLiteEstimateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting estimate: %w", err)
	}
	return requireAffected(res, "estimate", id)
}

func scanEstimate(s rowScanner) (*domain.Estimate, error) {
	var e domain.Estimate
	var statusStr string
	var amount int64
	if err := s.Scan(&e.ID, &e.Client, &e.Project, &amount, &statusStr, &e.Date, &e.ValidUntil); err != nil {
		return nil, err
	}
	status, err := domain.ParseEstimateStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", e.ID, err)
	}
	e.Status = status
	e.Amount = domain.Money(amount)
	return &e, nil
}
