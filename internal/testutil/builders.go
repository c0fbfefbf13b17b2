package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/foreman/internal/domain"
)

var testIDCounter atomic.Int64

func nextTestNum() int64 {
	return testIDCounter.Add(1) + 900
}

type JobOption func(*domain.Job)

func WithJobID(id string) JobOption {
	return func(j *domain.Job) { j.ID = id }
}

func WithJobStatus(s domain.JobStatus) JobOption {
	return func(j *domain.Job) { j.Status = s }
}

func WithJobValue(m domain.Money) JobOption {
	return func(j *domain.Job) { j.Value = m }
}

func WithCompletion(pct int) JobOption {
	return func(j *domain.Job) { j.Completion = pct }
}

func WithTeam(names ...string) JobOption {
	return func(j *domain.Job) { j.Team = names }
}

func WithMilestones(ms ...domain.Milestone) JobOption {
	return func(j *domain.Job) { j.Milestones = ms }
}

func NewTestJob(name, client string, opts ...JobOption) *domain.Job {
	j := &domain.Job{
		ID:        fmt.Sprint(nextTestNum()),
		Name:      name,
		Client:    client,
		Status:    domain.JobPlanning,
		Value:     domain.Dollars(50_000),
		StartDate: "Mar 1, 2024",
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

type LeadOption func(*domain.Lead)

func WithLeadID(id string) LeadOption {
	return func(l *domain.Lead) { l.ID = id }
}

func WithLeadStatus(s domain.LeadStatus) LeadOption {
	return func(l *domain.Lead) { l.Status = s }
}

func WithLeadValue(m domain.Money) LeadOption {
	return func(l *domain.Lead) { l.Value = m }
}

func NewTestLead(name, company string, opts ...LeadOption) *domain.Lead {
	l := &domain.Lead{
		ID:          fmt.Sprint(nextTestNum()),
		Name:        name,
		Company:     company,
		Email:       "contact@example.com",
		Phone:       "(555) 000-0000",
		Location:    "Springfield",
		Status:      domain.LeadWarm,
		Value:       domain.Dollars(25_000),
		Source:      domain.SourceWebsite,
		LastContact: domain.LastContactNew,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type EstimateOption func(*domain.Estimate)

func WithEstimateID(id string) EstimateOption {
	return func(e *domain.Estimate) { e.ID = id }
}

func WithEstimateStatus(s domain.EstimateStatus) EstimateOption {
	return func(e *domain.Estimate) { e.Status = s }
}

func WithEstimateAmount(m domain.Money) EstimateOption {
	return func(e *domain.Estimate) { e.Amount = m }
}

func NewTestEstimate(client, project string, opts ...EstimateOption) *domain.Estimate {
	e := &domain.Estimate{
		ID:         fmt.Sprintf("EST-2024-%03d", nextTestNum()),
		Client:     client,
		Project:    project,
		Amount:     domain.Dollars(10_000),
		Status:     domain.EstimateDraft,
		Date:       "Jan 10, 2024",
		ValidUntil: "Feb 10, 2024",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type InvoiceOption func(*domain.Invoice)

func WithInvoiceID(id string) InvoiceOption {
	return func(inv *domain.Invoice) { inv.ID = id }
}

func WithInvoiceStatus(s domain.InvoiceStatus) InvoiceOption {
	return func(inv *domain.Invoice) { inv.Status = s }
}

func WithAmounts(amount, paid domain.Money) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.Amount = amount
		inv.Paid = paid
	}
}

func NewTestInvoice(client, project string, opts ...InvoiceOption) *domain.Invoice {
	inv := &domain.Invoice{
		ID:        fmt.Sprintf("INV-2024-%03d", nextTestNum()),
		Client:    client,
		Project:   project,
		Amount:    domain.Dollars(10_000),
		Status:    domain.InvoicePending,
		IssueDate: "Jan 5, 2024",
		DueDate:   "Feb 5, 2024",
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}
