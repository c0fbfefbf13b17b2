package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
)

// SQLiteSettingsRepo stores the single settings row plus the team roster.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT first_name, last_name, email, phone,
		company_name, company_address, tax_id, license,
		notify_email, notify_leads, notify_invoices, notify_tasks, two_factor
		FROM settings WHERE id = 'default'`

	var s domain.Settings
	var nEmail, nLeads, nInvoices, nTasks, twoFactor int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Profile.FirstName, &s.Profile.LastName, &s.Profile.Email, &s.Profile.Phone,
		&s.Company.Name, &s.Company.Address, &s.Company.TaxID, &s.Company.License,
		&nEmail, &nLeads, &nInvoices, &nTasks, &twoFactor,
	)
	if err != nil {
		return nil, notFoundOr(err, "settings", "default")
	}
	s.Notifications = domain.NotificationPrefs{
		Email:    intToBool(nEmail),
		Leads:    intToBool(nLeads),
		Invoices: intToBool(nInvoices),
		Tasks:    intToBool(nTasks),
	}
	s.TwoFactorEnabled = intToBool(twoFactor)

	rows, err := r.db.QueryContext(ctx, `SELECT name, role, email FROM team_members ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.TeamMember
		var roleStr string
		if err := rows.Scan(&m.Name, &roleStr, &m.Email); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		if m.Role, err = domain.ParseTeamRole(roleStr); err != nil {
			return nil, fmt.Errorf("team member %s: %w", m.Name, err)
		}
		s.Team = append(s.Team, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	return &s, nil
}

// Save overwrites the settings row and replaces the team roster.
func (r *SQLiteSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, first_name, last_name, email, phone,
		company_name, company_address, tax_id, license,
		notify_email, notify_leads, notify_invoices, notify_tasks, two_factor)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.Profile.FirstName, s.Profile.LastName, s.Profile.Email, s.Profile.Phone,
		s.Company.Name, s.Company.Address, s.Company.TaxID, s.Company.License,
		boolToInt(s.Notifications.Email),
		boolToInt(s.Notifications.Leads),
		boolToInt(s.Notifications.Invoices),
		boolToInt(s.Notifications.Tasks),
		boolToInt(s.TwoFactorEnabled),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
		return fmt.Errorf("clearing team members: %w", err)
	}
	for i, m := range s.Team {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO team_members (ord, name, role, email) VALUES (?, ?, ?, ?)`,
			i, m.Name, m.Role.String(), m.Email); err != nil {
			return fmt.Errorf("inserting team member %s: %w", m.Name, err)
		}
	}
	return nil
}
