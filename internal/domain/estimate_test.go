package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateSend(t *testing.T) {
	cases := []struct {
		from    EstimateStatus
		wantErr bool
	}{
		{EstimateDraft, false},
		{EstimateSent, false},
		{EstimateAccepted, true},
		{EstimateRejected, true},
	}
	for _, tc := range cases {
		e := &Estimate{ID: "EST-2024-001", Status: tc.from}
		assert.Equal(t, !tc.wantErr, e.CanSend(), "from=%s", tc.from)
		err := e.Send()
		if tc.wantErr {
			require.Error(t, err, "from=%s", tc.from)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tc.from, e.Status, "status should not change")
			continue
		}
		require.NoError(t, err, "from=%s", tc.from)
		assert.Equal(t, EstimateSent, e.Status)
	}
}

func TestEstimateDuplicate(t *testing.T) {
	src := &Estimate{
		ID:         "EST-2024-003",
		Client:     "Davis Real Estate",
		Project:    "Kitchen Remodel",
		Amount:     Dollars(45000),
		Status:     EstimateAccepted,
		Date:       "Jan 10, 2024",
		ValidUntil: "Feb 10, 2024",
	}
	dup := src.Duplicate("EST-2024-006", "Mar 1, 2024")

	assert.Equal(t, "EST-2024-006", dup.ID)
	assert.Equal(t, EstimateDraft, dup.Status)
	assert.Equal(t, "Mar 1, 2024", dup.Date)
	assert.Equal(t, src.Client, dup.Client)
	assert.Equal(t, src.Project, dup.Project)
	assert.Equal(t, src.Amount, dup.Amount)
	assert.Equal(t, src.ValidUntil, dup.ValidUntil)
	assert.Equal(t, EstimateAccepted, src.Status, "source is untouched")
}
