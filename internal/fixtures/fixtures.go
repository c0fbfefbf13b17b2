// Package fixtures holds the records a fresh foreman session starts with
// and loads them into the store.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/repository"
	"gopkg.in/yaml.v3"
)

// Default is the embedded seed file.
//
//go:embed seed.yaml
var Default []byte

// Set is a parsed fixture file. Each slice is in display order.
type Set struct {
	Jobs      []*domain.Job
	Leads     []*domain.Lead
	Estimates []*domain.Estimate
	Invoices  []*domain.Invoice
	Settings  *domain.Settings
}

type file struct {
	Jobs      []jobRecord      `yaml:"jobs"`
	Leads     []leadRecord     `yaml:"leads"`
	Estimates []estimateRecord `yaml:"estimates"`
	Invoices  []invoiceRecord  `yaml:"invoices"`
	Settings  *settingsRecord  `yaml:"settings"`
}

type milestoneRecord struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Date   string `yaml:"date"`
}

type jobRecord struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Client      string            `yaml:"client"`
	Status      string            `yaml:"status"`
	Value       string            `yaml:"value"`
	StartDate   string            `yaml:"start_date"`
	EndDate     string            `yaml:"end_date"`
	Completion  int               `yaml:"completion"`
	Location    string            `yaml:"location"`
	Description string            `yaml:"description"`
	Team        []string          `yaml:"team"`
	Milestones  []milestoneRecord `yaml:"milestones"`
}

type leadRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Company     string `yaml:"company"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Location    string `yaml:"location"`
	Status      string `yaml:"status"`
	Value       string `yaml:"value"`
	Source      string `yaml:"source"`
	LastContact string `yaml:"last_contact"`
}

type estimateRecord struct {
	ID         string `yaml:"id"`
	Client     string `yaml:"client"`
	Project    string `yaml:"project"`
	Amount     string `yaml:"amount"`
	Status     string `yaml:"status"`
	Date       string `yaml:"date"`
	ValidUntil string `yaml:"valid_until"`
}

type invoiceRecord struct {
	ID        string `yaml:"id"`
	Client    string `yaml:"client"`
	Project   string `yaml:"project"`
	Amount    string `yaml:"amount"`
	Paid      string `yaml:"paid"`
	Status    string `yaml:"status"`
	IssueDate string `yaml:"issue_date"`
	DueDate   string `yaml:"due_date"`
}

type settingsRecord struct {
	Profile struct {
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Email     string `yaml:"email"`
		Phone     string `yaml:"phone"`
	} `yaml:"profile"`
	Company struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
		TaxID   string `yaml:"tax_id"`
		License string `yaml:"license"`
	} `yaml:"company"`
	Notifications struct {
		Email    bool `yaml:"email"`
		Leads    bool `yaml:"leads"`
		Invoices bool `yaml:"invoices"`
		Tasks    bool `yaml:"tasks"`
	} `yaml:"notifications"`
	TwoFactor bool `yaml:"two_factor"`
	Team      []struct {
		Name  string `yaml:"name"`
		Role  string `yaml:"role"`
		Email string `yaml:"email"`
	} `yaml:"team"`
}

// LoadFile reads a fixture file from disk, or the embedded seed when path
// is empty.
func LoadFile(path string, logger *slog.Logger) (*Set, error) {
	if path == "" {
		return Parse(Default, logger)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return Parse(data, logger)
}

// Parse decodes a fixture file. Unknown status names are errors. Money that
// does not parse becomes zero and is logged, so one bad amount cannot keep
// the dashboard from starting.
func Parse(data []byte, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	p := parser{logger: logger}
	set := &Set{}
	for _, r := range f.Jobs {
		j, err := p.job(r)
		if err != nil {
			return nil, err
		}
		set.Jobs = append(set.Jobs, j)
	}
	for _, r := range f.Leads {
		l, err := p.lead(r)
		if err != nil {
			return nil, err
		}
		set.Leads = append(set.Leads, l)
	}
	for _, r := range f.Estimates {
		e, err := p.estimate(r)
		if err != nil {
			return nil, err
		}
		set.Estimates = append(set.Estimates, e)
	}
	for _, r := range f.Invoices {
		inv, err := p.invoice(r)
		if err != nil {
			return nil, err
		}
		set.Invoices = append(set.Invoices, inv)
	}
	if f.Settings != nil {
		s, err := p.settings(f.Settings)
		if err != nil {
			return nil, err
		}
		set.Settings = s
	}
	return set, nil
}

type parser struct {
	logger *slog.Logger
}

func (p parser) money(kind, id, field, raw string) domain.Money {
	m, err := domain.ParseMoney(raw)
	if err != nil {
		p.logger.Warn("fixture amount treated as zero",
			"kind", kind, "id", id, "field", field, "value", raw, "error", err)
		return 0
	}
	return m
}

func (p parser) job(r jobRecord) (*domain.Job, error) {
	status, err := domain.ParseJobStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", r.ID, err)
	}
	j := &domain.Job{
		ID:          r.ID,
		Name:        r.Name,
		Client:      r.Client,
		Status:      status,
		Value:       p.money("job", r.ID, "value", r.Value),
		StartDate:   domain.NormalizeDate(r.StartDate),
		EndDate:     domain.NormalizeDate(r.EndDate),
		Completion:  r.Completion,
		Location:    r.Location,
		Description: r.Description,
		Team:        r.Team,
	}
	for _, m := range r.Milestones {
		ms, err := domain.ParseMilestoneStatus(m.Status)
		if err != nil {
			return nil, fmt.Errorf("job %s milestone %q: %w", r.ID, m.Name, err)
		}
		j.Milestones = append(j.Milestones, domain.Milestone{
			Name:   m.Name,
			Status: ms,
			Date:   domain.NormalizeDate(m.Date),
		})
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("job %s: %w", r.ID, err)
	}
	return j, nil
}

func (p parser) lead(r leadRecord) (*domain.Lead, error) {
	status, err := domain.ParseLeadStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("lead %s: %w", r.ID, err)
	}
	source, err := domain.ParseLeadSource(r.Source)
	if err != nil {
		return nil, fmt.Errorf("lead %s: %w", r.ID, err)
	}
	return &domain.Lead{
		ID:          r.ID,
		Name:        r.Name,
		Company:     r.Company,
		Email:       r.Email,
		Phone:       r.Phone,
		Location:    r.Location,
		Status:      status,
		Value:       p.money("lead", r.ID, "value", r.Value),
		Source:      source,
		LastContact: r.LastContact,
	}, nil
}

func (p parser) estimate(r estimateRecord) (*domain.Estimate, error) {
	status, err := domain.ParseEstimateStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", r.ID, err)
	}
	return &domain.Estimate{
		ID:         r.ID,
		Client:     r.Client,
		Project:    r.Project,
		Amount:     p.money("estimate", r.ID, "amount", r.Amount),
		Status:     status,
		Date:       domain.NormalizeDate(r.Date),
		ValidUntil: domain.NormalizeDate(r.ValidUntil),
	}, nil
}

func (p parser) invoice(r invoiceRecord) (*domain.Invoice, error) {
	status, err := domain.ParseInvoiceStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", r.ID, err)
	}
	return &domain.Invoice{
		ID:        r.ID,
		Client:    r.Client,
		Project:   r.Project,
		Amount:    p.money("invoice", r.ID, "amount", r.Amount),
		Paid:      p.money("invoice", r.ID, "paid", r.Paid),
		Status:    status,
		IssueDate: domain.NormalizeDate(r.IssueDate),
		DueDate:   domain.NormalizeDate(r.DueDate),
	}, nil
}

func (p parser) settings(r *settingsRecord) (*domain.Settings, error) {
	s := &domain.Settings{
		Profile: domain.Profile{
			FirstName: r.Profile.FirstName,
			LastName:  r.Profile.LastName,
			Email:     r.Profile.Email,
			Phone:     r.Profile.Phone,
		},
		Company: domain.Company{
			Name:    r.Company.Name,
			Address: r.Company.Address,
			TaxID:   r.Company.TaxID,
			License: r.Company.License,
		},
		Notifications: domain.NotificationPrefs{
			Email:    r.Notifications.Email,
			Leads:    r.Notifications.Leads,
			Invoices: r.Notifications.Invoices,
			Tasks:    r.Notifications.Tasks,
		},
		TwoFactorEnabled: r.TwoFactor,
	}
	for _, m := range r.Team {
		role, err := domain.ParseTeamRole(m.Role)
		if err != nil {
			return nil, fmt.Errorf("team member %s: %w", m.Name, err)
		}
		s.Team = append(s.Team, domain.TeamMember{Name: m.Name, Role: role, Email: m.Email})
	}
	return s, nil
}

// Seed writes set into the store in one transaction. Records go in last
// to first so each list reads back in display order.
func Seed(ctx context.Context, uow db.UnitOfWork, set *Set) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		jobs := repository.NewSQLiteJobRepo(tx)
		for i := len(set.Jobs) - 1; i >= 0; i-- {
			if err := jobs.Create(ctx, set.Jobs[i]); err != nil {
				return fmt.Errorf("seeding job %s: %w", set.Jobs[i].ID, err)
			}
		}
		leads := repository.NewSQLiteLeadRepo(tx)
		for i := len(set.Leads) - 1; i >= 0; i-- {
			if err := leads.Create(ctx, set.Leads[i]); err != nil {
				return fmt.Errorf("seeding lead %s: %w", set.Leads[i].ID, err)
			}
		}
		estimates := repository.NewSQLiteEstimateRepo(tx)
		for i := len(set.Estimates) - 1; i >= 0; i-- {
			if err := estimates.Create(ctx, set.Estimates[i]); err != nil {
				return fmt.Errorf("seeding estimate %s: %w", set.Estimates[i].ID, err)
			}
		}
		invoices := repository.NewSQLiteInvoiceRepo(tx)
		for i := len(set.Invoices) - 1; i >= 0; i-- {
			if err := invoices.Create(ctx, set.Invoices[i]); err != nil {
				return fmt.Errorf("seeding invoice %s: %w", set.Invoices[i].ID, err)
			}
		}
		if set.Settings != nil {
			if err := repository.NewSQLiteSettingsRepo(tx).Save(ctx, set.Settings); err != nil {
				return fmt.Errorf("seeding settings: %w", err)
			}
		}
		return nil
	})
}
