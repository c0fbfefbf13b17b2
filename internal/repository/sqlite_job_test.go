package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepo_CreateAndGetByID_WithChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJobRepo(db)
	ctx := context.Background()

	job := testutil.NewTestJob("Office Renovation", "Acme Corp",
		testutil.WithJobID("1"),
		testutil.WithJobStatus(domain.JobInProgress),
		testutil.WithJobValue(domain.Dollars(125_000)),
		testutil.WithCompletion(65),
		testutil.WithTeam("John Smith", "Sarah Johnson"),
		testutil.WithMilestones(
			domain.Milestone{Name: "Demolition", Status: domain.MilestoneCompleted, Date: "Jan 30, 2024"},
			domain.Milestone{Name: "Finishing", Status: domain.MilestonePending, Date: "Apr 30, 2024"},
		),
	)
	require.NoError(t, repo.Create(ctx, job))

	fetched, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, job, fetched)
}

func TestJobRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJobRepo(db)

	_, err := repo.GetByID(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobRepo_List_NewestFirstWithChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJobRepo(db)
	ctx := context.Background()

	first := testutil.NewTestJob("Kitchen Remodel", "Davis Family", testutil.WithTeam("Mike Davis"))
	second := testutil.NewTestJob("Warehouse Expansion", "LogiTech Inc")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
	assert.Equal(t, []string{"Mike Davis"}, jobs[1].Team)
	assert.Empty(t, jobs[0].Team)
}

func TestJobRepo_List_EmptyIsNotNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	jobs, err := NewSQLiteJobRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestJobRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJobRepo(db)
	ctx := context.Background()

	job := testutil.NewTestJob("Retail Store Build-out", "Fashion Forward", testutil.WithTeam("Tom Wilson"))
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.Delete(ctx, job.ID))

	_, err := repo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, job.ID), ErrNotFound)
}
