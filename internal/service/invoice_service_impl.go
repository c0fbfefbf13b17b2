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

type invoiceService struct {
	invoices repository.InvoiceRepo
	uow      db.UnitOfWork
	bus      notify.Publisher
	observer UseCaseObserver
}

func NewInvoiceService(
	invoices repository.InvoiceRepo,
	uow db.UnitOfWork,
	bus notify.Publisher,
	observers ...UseCaseObserver,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		uow:      uow,
		bus:      bus,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *invoiceService) List(ctx context.Context, req contract.InvoiceListRequest) (*contract.InvoiceListResponse, error) {
	all, err := s.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	visible := listview.Filter(all, invoiceSpec, req.Status, req.Query)
	return &contract.InvoiceListResponse{
		Invoices: visible,
		Summary:  summarizeInvoices(visible),
	}, nil
}

func (s *invoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, req contract.CreateInvoiceRequest) (res *contract.MutationResult, err error) {
	fields := map[string]any{"client": req.Client}
	done := observe(ctx, s.observer, "create-invoice", fields)
	defer func() { done(err) }()

	inv := &domain.Invoice{
		Client:    strings.TrimSpace(req.Client),
		Project:   strings.TrimSpace(req.Project),
		Status:    domain.InvoicePending,
		IssueDate: today(),
		DueDate:   domain.NormalizeDate(req.DueDate),
	}
	if err = inv.Validate(); err != nil {
		return nil, err
	}
	if inv.Amount, err = parseRequiredMoney("amount", req.Amount); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteSequenceRepo(tx).NextNumber(ctx, repository.SeqInvoices)
		if err != nil {
			return err
		}
		inv.ID = formatID(repository.SeqInvoices, n)
		return repository.NewSQLiteInvoiceRepo(tx).Create(ctx, inv)
	})
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}
	fields["id"] = inv.ID

	n := s.bus.Publish("Invoice Created", inv.ID+" has been created")
	return &contract.MutationResult{ID: inv.ID, Notification: n}, nil
}

// RecordPayment adds a positive payment to the invoice's paid total.
func (s *invoiceService) RecordPayment(ctx context.Context, id, amount string) (res *contract.MutationResult, err error) {
	fields := map[string]any{"id": id}
	done := observe(ctx, s.observer, "record-payment", fields)
	defer func() { done(err) }()

	payment, err := parseRequiredMoney("payment amount", amount)
	if err != nil {
		return nil, err
	}
	fields["payment_cents"] = int64(payment)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteInvoiceRepo(tx)
		inv, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.ApplyPayment(payment); err != nil {
			return err
		}
		fields["status"] = inv.Status.String()
		return repo.Update(ctx, inv)
	})
	if err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	n := s.bus.Publish("Payment Recorded", fmt.Sprintf("%s recorded for %s", payment, id))
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *invoiceService) Delete(ctx context.Context, id string) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, "delete-invoice", map[string]any{"id": id})
	defer func() { done(err) }()

	if err = s.invoices.Delete(ctx, id); err != nil {
		return nil, err
	}
	n := s.bus.Publish("Invoice Deleted", id+" has been deleted")
	return &contract.MutationResult{ID: id, Notification: n}, nil
}

func (s *invoiceService) Download(ctx context.Context, id string) (*contract.MutationResult, error) {
	return s.announce(ctx, id, "Downloading PDF", id+" is being downloaded")
}

func (s *invoiceService) SendReminder(ctx context.Context, id string) (*contract.MutationResult, error) {
	return s.announce(ctx, id, "Reminder Sent", "Payment reminder sent for "+id)
}

func (s *invoiceService) View(ctx context.Context, id string) (*contract.MutationResult, error) {
	return s.announce(ctx, id, "View Invoice", "Opening "+id)
}

// announce publishes a notification about an existing invoice without
// changing it.
func (s *invoiceService) announce(ctx context.Context, id, title, body string) (*contract.MutationResult, error) {
	if _, err := s.invoices.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n := s.bus.Publish(title, body)
	return &contract.MutationResult{ID: id, Notification: n}, nil
}
