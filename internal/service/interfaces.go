package service

import (
	"context"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
)

// Every mutation publishes exactly one notification when it succeeds and
// none when it fails. The published notification is returned in the
// MutationResult.

type JobService interface {
	List(ctx context.Context, req contract.JobListRequest) (*contract.JobListResponse, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, req contract.CreateJobRequest) (*contract.MutationResult, error)
	// Edit and Delete only announce the action; jobs are never changed or
	// removed by them.
	Edit(ctx context.Context, id string) (*contract.MutationResult, error)
	Delete(ctx context.Context, id string) (*contract.MutationResult, error)
	ViewAll(ctx context.Context) *contract.MutationResult
}

type LeadService interface {
	List(ctx context.Context, req contract.LeadListRequest) (*contract.LeadListResponse, error)
	Get(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, in contract.LeadInput) (*contract.MutationResult, error)
	Update(ctx context.Context, id string, in contract.LeadInput) (*contract.MutationResult, error)
	Delete(ctx context.Context, id string) (*contract.MutationResult, error)
	Contact(ctx context.Context, id string) (*contract.MutationResult, error)
	// Convert removes the lead. No job is created.
	Convert(ctx context.Context, id string) (*contract.MutationResult, error)
}

type EstimateService interface {
	List(ctx context.Context, req contract.EstimateListRequest) (*contract.EstimateListResponse, error)
	Get(ctx context.Context, id string) (*domain.Estimate, error)
	Create(ctx context.Context, req contract.CreateEstimateRequest) (*contract.MutationResult, error)
	Send(ctx context.Context, id string) (*contract.MutationResult, error)
	Duplicate(ctx context.Context, id string) (*contract.MutationResult, error)
	Delete(ctx context.Context, id string) (*contract.MutationResult, error)
	Download(ctx context.Context, id string) (*contract.MutationResult, error)
	View(ctx context.Context, id string) (*contract.MutationResult, error)
}

type InvoiceService interface {
	List(ctx context.Context, req contract.InvoiceListRequest) (*contract.InvoiceListResponse, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
	Create(ctx context.Context, req contract.CreateInvoiceRequest) (*contract.MutationResult, error)
	RecordPayment(ctx context.Context, id, amount string) (*contract.MutationResult, error)
	Delete(ctx context.Context, id string) (*contract.MutationResult, error)
	Download(ctx context.Context, id string) (*contract.MutationResult, error)
	SendReminder(ctx context.Context, id string) (*contract.MutationResult, error)
	View(ctx context.Context, id string) (*contract.MutationResult, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	SaveProfile(ctx context.Context, p domain.Profile) (*contract.MutationResult, error)
	SaveCompany(ctx context.Context, c domain.Company) (*contract.MutationResult, error)
	SaveNotifications(ctx context.Context, prefs domain.NotificationPrefs) (*contract.MutationResult, error)
	// ChangePassword checks the form is filled in; nothing is stored.
	ChangePassword(ctx context.Context, pc domain.PasswordChange) (*contract.MutationResult, error)
	EnableTwoFactor(ctx context.Context) (*contract.MutationResult, error)
	InviteMember(ctx context.Context, email string) (*contract.MutationResult, error)
}
