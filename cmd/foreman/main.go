package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/foreman/internal/cli"
	"github.com/alexanderramin/foreman/internal/config"
	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/fixtures"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/repository"
	"github.com/alexanderramin/foreman/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Every run starts from the fixture set; nothing is persisted.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	set, err := fixtures.LoadFile(cfg.FixturesPath, logger)
	if err != nil {
		return err
	}
	if err := fixtures.Seed(context.Background(), uow, set); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	bus := notify.NewBus(cfg.ToastLimit, cfg.ToastTTL)
	observer := service.NewSlogUseCaseObserver(logger)

	app := &cli.App{
		Jobs:      service.NewJobService(repository.NewSQLiteJobRepo(database), uow, bus, observer),
		Leads:     service.NewLeadService(repository.NewSQLiteLeadRepo(database), uow, bus, observer),
		Estimates: service.NewEstimateService(repository.NewSQLiteEstimateRepo(database), uow, bus, observer),
		Invoices:  service.NewInvoiceService(repository.NewSQLiteInvoiceRepo(database), uow, bus, observer),
		Settings:  service.NewSettingsService(repository.NewSQLiteSettingsRepo(database), uow, bus, observer),
		Toasts:    bus,
		Config:    cfg,
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// openLogger returns a JSON slog logger writing to cfg.LogFile, or one that
// discards everything when no file is configured.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, func() { f.Close() }, nil
}
