package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/listview"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/repository"
)

type estimateService struct {
	estimates repository.EstimateRepo
	uow       db.UnitOfWork
	bus       notify.Publisher
	observer  UseCaseObserver
}

func NewEstimateService(
	estimates repository.EstimateRepo,
	uow db.UnitOfWork,
	bus notify.Publisher,
	observers ...UseCaseObserver,
) EstimateService {
	return &estimateService{
		estimates: estimates,
		uow:       uow,
		bus:       bus,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *estimateService) List(ctx context.Context, req contract.EstimateListRequest) (*contract.EstimateListResponse, error) {
	all, err := s.estimates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}
	visible := listview.Filter(all, estimateSpec, req.Status, req.Query)
	return &contract.EstimateListResponse{
		Estimates: visible,
		Summary:   summarizeEstimates(visible),
	}, nil
}

func (s *estimateService) Get(ctx context.Context, id string) (*domain.Estimate, error) {
	return s.estimates.GetByID(ctx, id)
}

func (s *estimateService) Create(ctx context.Context, req contract.CreateEstimateRequest) (res *contract.MutationResult, err error) {
	fields := map[string]any{"client": req.Client}
	done := observe(ctx, s.observer, "create-estimate", fields)
	defer func() { done(err) }()

	est := &domain.Estimate{
		Client:     strings.TrimSpace(req.Client),
		Project:    strings.TrimSpace(req.Project),
		Status:     domain.EstimateDraft,
		Date:       today(),
		ValidUntil: domain.NormalizeDate(req.ValidUntil),
	}
	if err = est.Validate(); err != nil {
		return nil, err
	}
	if est.Amount, err = parseRequiredMoney("amount", req.Amount); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteSequenceRepo(tx).NextNumber(ctx, repository.SeqEstimates)
		if err != nil {
			return err
		}
		est.ID = formatID(repository.SeqEstimates, n)
		return repository.NewSQLiteEstimateRepo(tx).Create(ctx, est)
	})
	if err != nil {
		return nil, fmt.Errorf("creating estimate: %w", err)
	}
	fields["id"] = est.ID

	n := s.bus.Publish("Estimate Created", est.ID+" has been created")
	return &contract.MutationResult{ID: est.ID, Notification: n}, nil
}

// Send marks a Draft estimate as sent to the client.
func (s *estimateService) Send(ctx context.Context, id string) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, "send-estimate", map[string]any{"id": id})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEstimateRepo(tx)
		est, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := est.Send(); err != nil {
			return err
		}
		return repo.Update(ctx, est)
	})
	if err != nil {
		return nil, fmt.Errorf("sending estimate: %w", err)
	}

	n := s.bus.Publish("Estimate Sent", id+" has been sent to the client")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *estimateService) Duplicate(ctx context.Context, id string) (res *contract.MutationResult, err error) {
	fields := map[string]any{"source_id": id}
	done := observe(ctx, s.observer, "duplicate-estimate", fields)
	defer func() { done(err) }()

	var dup *domain.Estimate
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEstimateRepo(tx)
		src, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		n, err := repository.NewSQLiteSequenceRepo(tx).NextNumber(ctx, repository.SeqEstimates)
		if err != nil {
			return err
		}
		dup = src.Duplicate(formatID(repository.SeqEstimates, n), today())
		return repo.Create(ctx, dup)
	})
	if err != nil {
		return nil, fmt.Errorf("duplicating estimate: %w", err)
	}
	fields["id"] = dup.ID

	n := s.bus.Publish("Estimate Duplicated", fmt.Sprintf("Created %s from %s", dup.ID, id))
	return &contract.MutationResult{ID: dup.ID, Notification: n}, nil
}

func (s *estimateService) Delete(ctx context.Context, id string) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, "delete-estimate", map[string]any{"id": id})
	defer func() { done(err) }()

	if err = s.estimates.Delete(ctx, id); err != nil {
		return nil, err
	}
	n := s.bus.Publish("Estimate Deleted", id+" has been deleted")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

// Download only announces the PDF; no file is produced.
func (s *estimateService) Download(ctx context.Context, id string) (*contract.MutationResult, error) {
	if _, err := s.estimates.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n := s.bus.Publish("Downloading PDF", id+" is being downloaded")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *estimateService) View(ctx context.Context, id string) (*contract.MutationResult, error) {
	if _, err := s.estimates.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n := s.bus.Publish("View Details", "Opening "+id)
	return &contract.MutationResult{ID: id, Notification: n}, nil
}
