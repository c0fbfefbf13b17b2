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

type leadService struct {
	leads    repository.LeadRepo
	uow      db.UnitOfWork
	bus      notify.Publisher
	observer UseCaseObserver
}

func NewLeadService(
	leads repository.LeadRepo,
	uow db.UnitOfWork,
	bus notify.Publisher,
	observers ...UseCaseObserver,
) LeadService {
	return &leadService{
		leads:    leads,
		uow:      uow,
		bus:      bus,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *leadService) List(ctx context.Context, req contract.LeadListRequest) (*contract.LeadListResponse, error) {
	all, err := s.leads.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	visible := listview.Filter(all, leadSpec, req.Status, req.Query)
	return &contract.LeadListResponse{
		Leads:   visible,
		Summary: summarizeLeads(visible),
	}, nil
}

func (s *leadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

// applyLeadInput copies the form onto l and checks it. LastContact and ID are
// left alone.
func applyLeadInput(l *domain.Lead, in contract.LeadInput) error {
	l.Name = strings.TrimSpace(in.Name)
	l.Company = strings.TrimSpace(in.Company)
	l.Email = strings.TrimSpace(in.Email)
	l.Phone = strings.TrimSpace(in.Phone)
	l.Location = strings.TrimSpace(in.Location)
	l.Status = in.Status
	l.Source = in.Source
	if err := l.Validate(); err != nil {
		return err
	}
	value, err := parseRequiredMoney("value", in.Value)
	if err != nil {
		return err
	}
	l.Value = value
	return nil
}

func (s *leadService) Create(ctx context.Context, in contract.LeadInput) (res *contract.MutationResult, err error) {
	fields := map[string]any{"company": in.Company}
	done := observe(ctx, s.observer, "create-lead", fields)
	defer func() { done(err) }()

	lead := &domain.Lead{LastContact: domain.LastContactNew}
	if err = applyLeadInput(lead, in); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteSequenceRepo(tx).NextNumber(ctx, repository.SeqLeads)
		if err != nil {
			return err
		}
		lead.ID = formatID(repository.SeqLeads, n)
		return repository.NewSQLiteLeadRepo(tx).Create(ctx, lead)
	})
	if err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}
	fields["id"] = lead.ID

	n := s.bus.Publish("Lead Added", lead.Name+" has been added to your pipeline")
	return &contract.MutationResult{ID: lead.ID, Notification: n}, nil
}

// Update replaces every editable field. Any status may follow any other.
func (s *leadService) Update(ctx context.Context, id string, in contract.LeadInput) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, "update-lead", map[string]any{"id": id, "status": in.Status.String()})
	defer func() { done(err) }()

	var lead *domain.Lead
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLeadRepo(tx)
		var err error
		if lead, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := applyLeadInput(lead, in); err != nil {
			return err
		}
		return repo.Update(ctx, lead)
	})
	if err != nil {
		return nil, fmt.Errorf("updating lead: %w", err)
	}

	n := s.bus.Publish("Lead Updated", lead.Name+"'s information has been updated")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *leadService) Delete(ctx context.Context, id string) (*contract.MutationResult, error) {
	return s.remove(ctx, "delete-lead", id, "Lead Deleted", "%s has been removed from your pipeline")
}

// Convert drops the lead from the pipeline. Whether a job should also be
// created is undecided, so none is.
func (s *leadService) Convert(ctx context.Context, id string) (*contract.MutationResult, error) {
	return s.remove(ctx, "convert-lead", id, "Lead Converted", "%s has been converted to an active job")
}

func (s *leadService) remove(ctx context.Context, useCase, id, title, bodyFormat string) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, useCase, map[string]any{"id": id})
	defer func() { done(err) }()

	var lead *domain.Lead
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLeadRepo(tx)
		var err error
		if lead, err = repo.GetByID(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	n := s.bus.Publish(title, fmt.Sprintf(bodyFormat, lead.Name))
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *leadService) Contact(ctx context.Context, id string) (*contract.MutationResult, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n := s.bus.Publish("Contact Lead", "Initiating contact with "+lead.Name)
	return &contract.MutationResult{ID: id, Notification: n}, nil
}
