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

type jobService struct {
	jobs     repository.JobRepo
	uow      db.UnitOfWork
	bus      notify.Publisher
	observer UseCaseObserver
}

func NewJobService(
	jobs repository.JobRepo,
	uow db.UnitOfWork,
	bus notify.Publisher,
	observers ...UseCaseObserver,
) JobService {
	return &jobService{
		jobs:     jobs,
		uow:      uow,
		bus:      bus,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *jobService) List(ctx context.Context, req contract.JobListRequest) (*contract.JobListResponse, error) {
	all, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	visible := listview.Filter(all, jobSpec, req.Status, req.Query)
	return &contract.JobListResponse{
		Jobs:    visible,
		Summary: summarizeJobs(visible),
	}, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) Create(ctx context.Context, req contract.CreateJobRequest) (res *contract.MutationResult, err error) {
	fields := map[string]any{"client": req.Client, "status": req.Status.String()}
	done := observe(ctx, s.observer, "create-job", fields)
	defer func() { done(err) }()

	job := &domain.Job{
		Name:        strings.TrimSpace(req.Name),
		Client:      strings.TrimSpace(req.Client),
		Status:      req.Status,
		StartDate:   domain.CoalesceStr(domain.NormalizeDate(req.StartDate), today()),
		EndDate:     domain.NormalizeDate(req.EndDate),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
	}
	if job.Status == domain.JobCompleted {
		job.Completion = 100
	}
	if err = job.Validate(); err != nil {
		return nil, err
	}
	if job.Value, err = parseRequiredMoney("value", req.Value); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteSequenceRepo(tx).NextNumber(ctx, repository.SeqJobs)
		if err != nil {
			return err
		}
		job.ID = formatID(repository.SeqJobs, n)
		return repository.NewSQLiteJobRepo(tx).Create(ctx, job)
	})
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	fields["id"] = job.ID

	n := s.bus.Publish("Job Created", job.Name+" has been added for "+job.Client)
	return &contract.MutationResult{ID: job.ID, Notification: n}, nil
}

func (s *jobService) Edit(ctx context.Context, id string) (*contract.MutationResult, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n := s.bus.Publish("Edit Job", "Editing "+job.Name+"...")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

// Delete warns about deleting the job. The job stays in the store.
func (s *jobService) Delete(ctx context.Context, id string) (*contract.MutationResult, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n := s.bus.Publish("Delete Job", fmt.Sprintf("Are you sure you want to delete %s?", job.Name), notify.Destructive())
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *jobService) ViewAll(ctx context.Context) *contract.MutationResult {
	n := s.bus.Publish("All Jobs", "Opening full jobs list...")
	return &contract.MutationResult{Notification: n}
}
