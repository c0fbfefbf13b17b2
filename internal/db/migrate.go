package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// List tables carry pos (insertion order, newest highest) and num (the
// numeric part of the id, used to seed id_sequences).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id          TEXT PRIMARY KEY,
		num         INTEGER NOT NULL DEFAULT 0,
		pos         INTEGER NOT NULL,
		name        TEXT NOT NULL,
		client      TEXT NOT NULL,
		status      TEXT NOT NULL,
		value_cents INTEGER NOT NULL DEFAULT 0,
		start_date  TEXT NOT NULL DEFAULT '',
		end_date    TEXT NOT NULL DEFAULT '',
		completion  INTEGER NOT NULL DEFAULT 0 CHECK (completion BETWEEN 0 AND 100),
		location    TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS job_team_members (
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		ord    INTEGER NOT NULL,
		name   TEXT NOT NULL,
		PRIMARY KEY (job_id, ord)
	)`,

	`CREATE TABLE IF NOT EXISTS job_milestones (
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		ord    INTEGER NOT NULL,
		name   TEXT NOT NULL,
		status TEXT NOT NULL,
		date   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (job_id, ord)
	)`,

	`CREATE TABLE IF NOT EXISTS leads (
		id           TEXT PRIMARY KEY,
		num          INTEGER NOT NULL DEFAULT 0,
		pos          INTEGER NOT NULL,
		name         TEXT NOT NULL,
		company      TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL,
		value_cents  INTEGER NOT NULL DEFAULT 0,
		source       TEXT NOT NULL,
		last_contact TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS estimates (
		id           TEXT PRIMARY KEY,
		num          INTEGER NOT NULL DEFAULT 0,
		pos          INTEGER NOT NULL,
		client       TEXT NOT NULL,
		project      TEXT NOT NULL,
		amount_cents INTEGER NOT NULL DEFAULT 0,
		status       TEXT NOT NULL,
		date         TEXT NOT NULL DEFAULT '',
		valid_until  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id           TEXT PRIMARY KEY,
		num          INTEGER NOT NULL DEFAULT 0,
		pos          INTEGER NOT NULL,
		client       TEXT NOT NULL,
		project      TEXT NOT NULL,
		amount_cents INTEGER NOT NULL DEFAULT 0,
		paid_cents   INTEGER NOT NULL DEFAULT 0,
		status       TEXT NOT NULL,
		issue_date   TEXT NOT NULL DEFAULT '',
		due_date     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id              TEXT PRIMARY KEY DEFAULT 'default',
		first_name      TEXT NOT NULL DEFAULT '',
		last_name       TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		company_name    TEXT NOT NULL DEFAULT '',
		company_address TEXT NOT NULL DEFAULT '',
		tax_id          TEXT NOT NULL DEFAULT '',
		license         TEXT NOT NULL DEFAULT '',
		notify_email    INTEGER NOT NULL DEFAULT 1,
		notify_leads    INTEGER NOT NULL DEFAULT 1,
		notify_invoices INTEGER NOT NULL DEFAULT 1,
		notify_tasks    INTEGER NOT NULL DEFAULT 0,
		two_factor      INTEGER NOT NULL DEFAULT 0
	)`,

	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS team_members (
		ord   INTEGER PRIMARY KEY,
		name  TEXT NOT NULL,
		role  TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS id_sequences (
		kind     TEXT PRIMARY KEY,
		next_num INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_pos ON jobs(pos)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_pos ON leads(pos)`,
	`CREATE INDEX IF NOT EXISTS idx_estimates_pos ON estimates(pos)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_pos ON invoices(pos)`,
}
