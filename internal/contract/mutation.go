package contract

import (
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/notify"
)

// Form inputs carry monetary values as raw text so the form and flag layers
// can hand over exactly what the user typed; services parse it.

type CreateJobRequest struct {
	Name        string
	Client      string
	Value       string
	Status      domain.JobStatus
	StartDate   string
	EndDate     string
	Location    string
	Description string
}

type LeadInput struct {
	Name     string
	Company  string
	Email    string
	Phone    string
	Location string
	Value    string
	Status   domain.LeadStatus
	Source   domain.LeadSource
}

type CreateEstimateRequest struct {
	Client     string
	Project    string
	Amount     string
	ValidUntil string
}

type CreateInvoiceRequest struct {
	Client  string
	Project string
	Amount  string
	DueDate string
}

// MutationResult pairs the affected record id with the notification the
// mutation published.
type MutationResult struct {
	ID           string
	Notification notify.Notification
}
