package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
)

// SQLiteJobRepo implements JobRepo. Team members and milestones live in
// child tables and are loaded with the job.
type SQLiteJobRepo struct {
	db db.DBTX
}

func NewSQLiteJobRepo(conn db.DBTX) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: conn}
}

const jobColumns = `id, name, client, status, value_cents, start_date, end_date, completion, location, description`

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (id, num, pos, name, client, status, value_cents, start_date, end_date, completion, location, description)
		VALUES (?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM jobs), ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		trailingNumber(j.ID),
		j.Name,
		j.Client,
		j.Status.String(),
		int64(j.Value),
		j.StartDate,
		j.EndDate,
		j.Completion,
		j.Location,
		j.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}

	for i, name := range j.Team {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO job_team_members (job_id, ord, name) VALUES (?, ?, ?)`, j.ID, i, name); err != nil {
			return fmt.Errorf("inserting team member for job %s: %w", j.ID, err)
		}
	}
	for i, m := range j.Milestones {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO job_milestones (job_id, ord, name, status, date) VALUES (?, ?, ?, ?, ?)`,
			j.ID, i, m.Name, m.Status.String(), m.Date); err != nil {
			return fmt.Errorf("inserting milestone for job %s: %w", j.ID, err)
		}
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		return nil, notFoundOr(err, "job", id)
	}
	if err := r.loadChildren(ctx, map[string]*domain.Job{j.ID: j}, `WHERE job_id = ?`, id); err != nil {
		return nil, err
	}
	return j, nil
}

func (r *SQLiteJobRepo) List(ctx context.Context) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY pos DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	jobs := []*domain.Job{}
	byID := map[string]*domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		jobs = append(jobs, j)
		byID[j.ID] = j
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	// Release the cursor before the child queries; an in-memory store has
	// a single connection.
	rows.Close()

	if err := r.loadChildren(ctx, byID, ``); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *SQLiteJobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return requireAffected(res, "job", id)
}

// loadChildren fills Team and Milestones for the jobs in byID, reading the
// child rows selected by where.
func (r *SQLiteJobRepo) loadChildren(ctx context.Context, byID map[string]*domain.Job, where string, args ...any) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT job_id, name FROM job_team_members `+where+` ORDER BY job_id, ord`, args...)
	if err != nil {
		return fmt.Errorf("listing job team members: %w", err)
	}
	for rows.Next() {
		var jobID, name string
		if err := rows.Scan(&jobID, &name); err != nil {
			rows.Close()
			return fmt.Errorf("scanning team member: %w", err)
		}
		if j, ok := byID[jobID]; ok {
			j.Team = append(j.Team, name)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating team members: %w", err)
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx,
		`SELECT job_id, name, status, date FROM job_milestones `+where+` ORDER BY job_id, ord`, args...)
	if err != nil {
		return fmt.Errorf("listing job milestones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var jobID, statusStr string
		var m domain.Milestone
		if err := rows.Scan(&jobID, &m.Name, &statusStr, &m.Date); err != nil {
			return fmt.Errorf("scanning milestone: %w", err)
		}
		if m.Status, err = domain.ParseMilestoneStatus(statusStr); err != nil {
			return fmt.Errorf("milestone of job %s: %w", jobID, err)
		}
		if j, ok := byID[jobID]; ok {
			j.Milestones = append(j.Milestones, m)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating milestones: %w", err)
	}
	return nil
}

func scanJob(s rowScanner) (*domain.Job, error) {
	var j domain.Job
	var statusStr string
	var value int64
	if err := s.Scan(
		&j.ID, &j.Name, &j.Client, &statusStr, &value,
		&j.StartDate, &j.EndDate, &j.Completion,
		&j.Location, &j.Description,
	); err != nil {
		return nil, err
	}
	status, err := domain.ParseJobStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", j.ID, err)
	}
	j.Status = status
	j.Value = domain.Money(value)
	return &j, nil
}
