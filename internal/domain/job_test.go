package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobValidate(t *testing.T) {
	j := &Job{Name: "Warehouse Expansion", Client: "LogiTech Inc", Status: JobPlanning}
	require.NoError(t, j.Validate())

	j.Client = ""
	err := j.Validate()
	require.ErrorIs(t, err, ErrRequired)
	assert.Contains(t, err.Error(), "client")

	j.Client = "LogiTech Inc"
	j.Status = 0
	assert.ErrorIs(t, j.Validate(), ErrRequired)

	j.Status = JobOnHold
	j.Completion = 120
	assert.Error(t, j.Validate())
}

func TestJobTimeline(t *testing.T) {
	assert.Equal(t, "2024-01-15 - 2024-04-30", (&Job{StartDate: "2024-01-15", EndDate: "2024-04-30"}).Timeline())
	assert.Equal(t, "2024-01-15", (&Job{StartDate: "2024-01-15"}).Timeline())
	assert.Equal(t, "", (&Job{}).Timeline())
}

func TestLeadValidate(t *testing.T) {
	l := &Lead{
		Name: "Robert Chen", Company: "Chen Properties", Email: "robert@chenprops.com",
		Phone: "(555) 234-5678", Location: "Portland, OR", Status: LeadWarm, Source: SourceWebsite,
	}
	require.NoError(t, l.Validate())

	l.Email = " "
	err := l.Validate()
	require.ErrorIs(t, err, ErrRequired)
	assert.Contains(t, err.Error(), "email")
}

func TestInitialsAndDates(t *testing.T) {
	assert.Equal(t, "JD", Initials("John Doe"))
	assert.Equal(t, "", Initials("   "))
	assert.Equal(t, "Feb 15, 2024", NormalizeDate("2024-02-15"))
	assert.Equal(t, "next week", NormalizeDate(" next week "))
}
