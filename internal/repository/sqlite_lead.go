package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
)

type SQLiteLeadRepo struct {
	db db.DBTX
}

func NewSQLiteLeadRepo(conn db.DBTX) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: conn}
}

const leadColumns = `id, name, company, email, phone, location, status, value_cents, source, last_contact`

func (r *SQLiteLeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	query := `INSERT INTO leads (id, num, pos, name, company, email, phone, location, status, value_cents, source, last_contact)
		VALUES (?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM leads), ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		trailingNumber(l.ID),
		l.Name,
		l.Company,
		l.Email,
		l.Phone,
		l.Location,
		l.Status.String(),
		int64(l.Value),
		l.Source.String(),
		l.LastContact,
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *SQLiteLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	l, err := scanLead(row)
	if err != nil {
		return nil, notFoundOr(err, "lead", id)
	}
	return l, nil
}

func (r *SQLiteLeadRepo) List(ctx context.Context) ([]*domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY pos DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	leads := []*domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lead row: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}
	return leads, nil
}

// Update rewrites every editable field in place; the lead keeps its
// position in the list.
func (r *SQLiteLeadRepo) Update(ctx context.Context, l *domain.Lead) error {
	query := `UPDATE leads SET name = ?, company = ?, email = ?, phone = ?, location = ?,
		status = ?, value_cents = ?, source = ?, last_contact = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		l.Company,
		l.Email,
		l.Phone,
		l.Location,
		l.Status.String(),
		int64(l.Value),
		l.Source.String(),
		l.LastContact,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	return requireAffected(res, "lead", l.ID)
}

func (r *SQLiteLeadRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	return requireAffected(res, "lead", id)
}

func scanLead(s rowScanner) (*domain.Lead, error) {
	var l domain.Lead
	var statusStr, sourceStr string
	var value int64
	if err := s.Scan(
		&l.ID, &l.Name, &l.Company, &l.Email, &l.Phone, &l.Location,
		&statusStr, &value, &sourceStr, &l.LastContact,
	); err != nil {
		return nil, err
	}
	var err error
	if l.Status, err = domain.ParseLeadStatus(statusStr); err != nil {
		return nil, fmt.Errorf("lead %s: %w", l.ID, err)
	}
	if l.Source, err = domain.ParseLeadSource(sourceStr); err != nil {
		return nil, fmt.Errorf("lead %s: %w", l.ID, err)
	}
	l.Value = domain.Money(value)
	return &l, nil
}
