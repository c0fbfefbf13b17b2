package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/db"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/notify"
	"github.com/alexanderramin/foreman/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	bus      notify.Publisher
	observer UseCaseObserver
}

func NewSettingsService(
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	bus notify.Publisher,
	observers ...UseCaseObserver,
) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		bus:      bus,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

// modify runs a read-modify-write of the settings row and publishes on
// success.
func (s *settingsService) modify(ctx context.Context, useCase, title, body string, fn func(*domain.Settings)) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, useCase, nil)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSettingsRepo(tx)
		current, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		fn(current)
		return repo.Save(ctx, current)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", useCase, err)
	}
	n := s.bus.Publish(title, body)
	return &contract.MutationResult{Notification: n}, nil
}

func (s *settingsService) SaveProfile(ctx context.Context, p domain.Profile) (*contract.MutationResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.modify(ctx, "save-profile", "Profile Saved", "Your profile settings have been updated successfully",
		func(cur *domain.Settings) { cur.Profile = p })
}

func (s *settingsService) SaveCompany(ctx context.Context, c domain.Company) (*contract.MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.modify(ctx, "save-company", "Company Settings Saved", "Company information has been updated successfully",
		func(cur *domain.Settings) { cur.Company = c })
}

func (s *settingsService) SaveNotifications(ctx context.Context, prefs domain.NotificationPrefs) (*contract.MutationResult, error) {
	return s.modify(ctx, "save-notifications", "Notifications Saved", "Your notification preferences have been updated",
		func(cur *domain.Settings) { cur.Notifications = prefs })
}

func (s *settingsService) EnableTwoFactor(ctx context.Context) (*contract.MutationResult, error) {
	return s.modify(ctx, "enable-2fa", "2FA Enabled", "Two-factor authentication has been enabled",
		func(cur *domain.Settings) { cur.TwoFactorEnabled = true })
}

func (s *settingsService) ChangePassword(ctx context.Context, pc domain.PasswordChange) (res *contract.MutationResult, err error) {
	done := observe(ctx, s.observer, "change-password", nil)
	defer func() { done(err) }()

	if err = pc.Validate(); err != nil {
		return nil, err
	}
	n := s.bus.Publish("Password Updated", "Your password has been changed successfully")
	return &contract.MutationResult{Notification: n}, nil
}

// InviteMember announces an invitation. The roster is not changed until
// the invitee accepts, which happens outside foreman.
func (s *settingsService) InviteMember(ctx context.Context, email string) (*contract.MutationResult, error) {
	email = strings.TrimSpace(email)
	if err := domain.Require(domain.RequiredField{Name: "email", Value: email}); err != nil {
		return nil, err
	}
	n := s.bus.Publish("Invitation Sent", "An invitation has been sent to "+email)
	return &contract.MutationResult{Notification: n}, nil
}
