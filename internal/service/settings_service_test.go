package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSeeded(t *testing.T) {
	h := newHarness(t)

	s, err := h.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", s.Profile.FullName())
	assert.Equal(t, "Construction Pro LLC", s.Company.Name)
	assert.Equal(t, domain.NotificationPrefs{Email: true, Leads: true, Invoices: true, Tasks: true}, s.Notifications)
	assert.False(t, s.TwoFactorEnabled)
	require.Len(t, s.Team, 3)
	assert.Equal(t, domain.RoleManager, s.Team[1].Role)
}

func TestSettingsService_SaveSections(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.settings.SaveProfile(ctx, domain.Profile{
		FirstName: "Jane", LastName: "Roe", Email: "jane@roe.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Profile Saved", res.Notification.Title)

	res, err = h.settings.SaveCompany(ctx, domain.Company{Name: "Roe Builders"})
	require.NoError(t, err)
	assert.Equal(t, "Company Settings Saved", res.Notification.Title)

	_, err = h.settings.SaveNotifications(ctx, domain.NotificationPrefs{Email: true})
	require.NoError(t, err)

	_, err = h.settings.EnableTwoFactor(ctx)
	require.NoError(t, err)

	s, err := h.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", s.Profile.FullName())
	assert.Equal(t, "Roe Builders", s.Company.Name)
	assert.Empty(t, s.Company.TaxID)
	assert.Equal(t, domain.NotificationPrefs{Email: true}, s.Notifications)
	assert.True(t, s.TwoFactorEnabled)
	assert.Len(t, s.Team, 3, "saving sections leaves the roster alone")
	assert.Equal(t, 4, h.bus.Published())
	assert.Equal(t, "enable-2fa", h.observer.last().Name)
}

func TestSettingsService_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.settings.SaveProfile(ctx, domain.Profile{FirstName: "Jane"})
	assert.ErrorIs(t, err, domain.ErrRequired)

	_, err = h.settings.SaveCompany(ctx, domain.Company{Address: "somewhere"})
	assert.ErrorIs(t, err, domain.ErrRequired)

	_, err = h.settings.ChangePassword(ctx, domain.PasswordChange{Current: "old", New: "new"})
	assert.ErrorIs(t, err, domain.ErrRequired)

	_, err = h.settings.InviteMember(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrRequired)

	assert.Zero(t, h.bus.Published())

	s, err := h.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John", s.Profile.FirstName)
}

func TestSettingsService_PasswordAndInvite(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.settings.ChangePassword(ctx, domain.PasswordChange{Current: "a", New: "b", Confirm: "c"})
	require.NoError(t, err)
	assert.Equal(t, "Password Updated", res.Notification.Title)

	res, err = h.settings.InviteMember(ctx, " new@crew.com ")
	require.NoError(t, err)
	assert.Equal(t, "An invitation has been sent to new@crew.com", res.Notification.Body)

	s, err := h.settings.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Team, 3)
}
