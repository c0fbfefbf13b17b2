package contract

import (
	"testing"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewListRequest_MatchesEverything(t *testing.T) {
	req := NewListRequest[domain.LeadStatus]()

	assert.True(t, req.Status.IsAll())
	assert.Empty(t, req.Query)
	for _, s := range domain.LeadStatuses() {
		assert.True(t, req.Status.Matches(s))
	}
}

func TestListRequest_Builders(t *testing.T) {
	base := NewListRequest[domain.InvoiceStatus]()
	req := base.WithStatus(domain.InvoiceOverdue).WithQuery("metro")

	s, ok := req.Status.Status()
	assert.True(t, ok)
	assert.Equal(t, domain.InvoiceOverdue, s)
	assert.Equal(t, "metro", req.Query)

	// value receiver: the original is untouched
	assert.True(t, base.Status.IsAll())
	assert.Empty(t, base.Query)
}
