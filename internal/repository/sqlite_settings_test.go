package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_DefaultsAfterMigrate(t *testing.T) {
	db := testutil.NewTestDB(t)
	s, err := NewSQLiteSettingsRepo(db).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.NotificationPrefs{Email: true, Leads: true, Invoices: true, Tasks: false}, s.Notifications)
	assert.False(t, s.TwoFactorEnabled)
	assert.Empty(t, s.Team)
}

func TestSettingsRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	want := &domain.Settings{
		Profile: domain.Profile{FirstName: "John", LastName: "Doe", Email: "john@buildpro.com", Phone: "(555) 123-4567"},
		Company: domain.Company{Name: "BuildPro Construction", Address: "123 Builder Ave", TaxID: "12-3456789", License: "GC-2024-001"},
		Notifications: domain.NotificationPrefs{
			Email: true, Tasks: true,
		},
		TwoFactorEnabled: true,
		Team: []domain.TeamMember{
			{Name: "John Doe", Role: domain.RoleAdmin, Email: "john@buildpro.com"},
			{Name: "Sarah Johnson", Role: domain.RoleManager, Email: "sarah@buildpro.com"},
		},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Saving a shorter roster replaces the old one.
	want.Team = want.Team[:1]
	require.NoError(t, repo.Save(ctx, want))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Team, 1)
}
