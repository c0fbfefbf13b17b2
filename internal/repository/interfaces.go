package repository

import (
	"context"

	"github.com/alexanderramin/foreman/internal/domain"
)

// List methods return records most recent first. Create always places the
// new record at the front.

type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

type LeadRepo interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	Delete(ctx context.Context, id string) error
}

type EstimateRepo interface {
	Create(ctx context.Context, e *domain.Estimate) error
	GetByID(ctx context.Context, id string) (*domain.Estimate, error)
	List(ctx context.Context) ([]*domain.Estimate, error)
	Update(ctx context.Context, e *domain.Estimate) error
	Delete(ctx context.Context, id string) error
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

// SequenceRepo hands out the numeric part of new record ids.
type SequenceRepo interface {
	NextNumber(ctx context.Context, kind SequenceKind) (int, error)
}
