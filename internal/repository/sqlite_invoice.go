package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
)

type SQLiteInvoiceRepo struct {
	db db.DBTX
}

func NewSQLiteInvoiceRepo(conn db.DBTX) *SQLiteInvoiceRepo {
	return &SQLiteInvoiceRepo{db: conn}
}

const invoiceColumns = `id, client, project, amount_cents, paid_cents, status, issue_date, due_date`

func (r *SQLiteInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (id, num, pos, client, project, amount_cents, paid_cents, status, issue_date, due_date)
		VALUES (?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM invoices), ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID,
		trailingNumber(inv.ID),
		inv.Client,
		inv.Project,
		int64(inv.Amount),
		int64(inv.Paid),
		inv.Status.String(),
		inv.IssueDate,
		inv.DueDate,
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, notFoundOr(err, "invoice", id)
	}
	return inv, nil
}

func (r *SQLiteInvoiceRepo) List(ctx context.Context) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY pos DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}
	return invoices, nil
}

func (r *SQLiteInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	query := `UPDATE invoices SET client = ?, project = ?, amount_cents = ?, paid_cents = ?, status = ?,
		issue_date = ?, due_date = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		inv.Client,
		inv.Project,
		int64(inv.Amount),
		int64(inv.Paid),
		inv.Status.String(),
		inv.IssueDate,
		inv.DueDate,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}
	return requireAffected(res, "invoice", inv.ID)
}

func (r *SQLiteInvoiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}
	return requireAffected(res, "invoice", id)
}

func scanInvoice(s rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var statusStr string
	var amount, paid int64
	if err := s.Scan(
		&inv.ID, &inv.Client, &inv.Project, &amount, &paid,
		&statusStr, &inv.IssueDate, &inv.DueDate,
	); err != nil {
		return nil, err
	}
	status, err := domain.ParseInvoiceStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", inv.ID, err)
	}
	inv.Status = status
	inv.Amount = domain.Money(amount)
	inv.Paid = domain.Money(paid)
	return &inv, nil
}
