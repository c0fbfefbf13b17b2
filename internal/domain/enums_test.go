package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_CaseInsensitive(t *testing.T) {
	s, err := ParseJobStatus("in progress")
	require.NoError(t, err)
	assert.Equal(t, JobInProgress, s)

	l, err := ParseLeadStatus(" HOT ")
	require.NoError(t, err)
	assert.Equal(t, LeadHot, l)

	src, err := ParseLeadSource("cold call")
	require.NoError(t, err)
	assert.Equal(t, SourceColdCall, src)
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseInvoiceStatus("Refunded")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseEstimateStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestZeroStatusIsInvalid(t *testing.T) {
	var js JobStatus
	var ls LeadStatus
	var es EstimateStatus
	var is InvoiceStatus
	assert.False(t, js.Valid())
	assert.False(t, ls.Valid())
	assert.False(t, es.Valid())
	assert.False(t, is.Valid())
	assert.Equal(t, "Unknown(0)", is.String())
}

func TestStatusListsRoundTrip(t *testing.T) {
	for _, s := range JobStatuses() {
		back, err := ParseJobStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	for _, s := range InvoiceStatuses() {
		back, err := ParseInvoiceStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	assert.Equal(t, []string{"Draft", "Sent", "Accepted", "Rejected"}, names(EstimateStatuses()))
	assert.Equal(t, []string{"Hot", "Warm", "Cold"}, names(LeadStatuses()))
}

func names[T interface{ String() string }](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}
