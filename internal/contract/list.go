package contract

import (
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/listview"
)

// ListRequest narrows a collection by status and free-text query.
type ListRequest[S listview.Status] struct {
	Status listview.Selector[S]
	Query  string
}

// NewListRequest returns a request that matches every record.
func NewListRequest[S listview.Status]() ListRequest[S] {
	return ListRequest[S]{Status: listview.All[S]()}
}

// WithStatus narrows the request to a single status.
func (r ListRequest[S]) WithStatus(s S) ListRequest[S] {
	r.Status = listview.Only(s)
	return r
}

// WithQuery sets the free-text query.
func (r ListRequest[S]) WithQuery(q string) ListRequest[S] {
	r.Query = q
	return r
}

type (
	JobListRequest      = ListRequest[domain.JobStatus]
	LeadListRequest     = ListRequest[domain.LeadStatus]
	EstimateListRequest = ListRequest[domain.EstimateStatus]
	InvoiceListRequest  = ListRequest[domain.InvoiceStatus]
)

type JobListResponse struct {
	Jobs    []*domain.Job
	Summary JobSummary
}

type LeadListResponse struct {
	Leads   []*domain.Lead
	Summary LeadSummary
}

type EstimateListResponse struct {
	Estimates []*domain.Estimate
	Summary   EstimateSummary
}

type InvoiceListResponse struct {
	Invoices []*domain.Invoice
	Summary  InvoiceSummary
}
