package service

import (
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/listview"
)

// Search fields per kind. Jobs also match on their status label.

var jobSpec = listview.Spec[*domain.Job, domain.JobStatus]{
	Status: func(j *domain.Job) domain.JobStatus { return j.Status },
	Fields: []func(*domain.Job) string{
		func(j *domain.Job) string { return j.Name },
		func(j *domain.Job) string { return j.Client },
		func(j *domain.Job) string { return j.Status.String() },
	},
}

var leadSpec = listview.Spec[*domain.Lead, domain.LeadStatus]{
	Status: func(l *domain.Lead) domain.LeadStatus { return l.Status },
	Fields: []func(*domain.Lead) string{
		func(l *domain.Lead) string { return l.Name },
		func(l *domain.Lead) string { return l.Company },
	},
}

var estimateSpec = listview.Spec[*domain.Estimate, domain.EstimateStatus]{
	Status: func(e *domain.Estimate) domain.EstimateStatus { return e.Status },
	Fields: []func(*domain.Estimate) string{
		func(e *domain.Estimate) string { return e.Client },
		func(e *domain.Estimate) string { return e.Project },
		func(e *domain.Estimate) string { return e.ID },
	},
}

var invoiceSpec = listview.Spec[*domain.Invoice, domain.InvoiceStatus]{
	Status: func(inv *domain.Invoice) domain.InvoiceStatus { return inv.Status },
	Fields: []func(*domain.Invoice) string{
		func(inv *domain.Invoice) string { return inv.Client },
		func(inv *domain.Invoice) string { return inv.Project },
		func(inv *domain.Invoice) string { return inv.ID },
	},
}

func summarizeJobs(jobs []*domain.Job) contract.JobSummary {
	counts := listview.CountByStatus(jobs, jobSpec.Status)
	sum := contract.JobSummary{
		Count:      len(jobs),
		Active:     counts[domain.JobInProgress],
		Completed:  counts[domain.JobCompleted],
		TotalValue: listview.Sum(jobs, func(j *domain.Job) domain.Money { return j.Value }),
	}
	if len(jobs) > 0 {
		total := listview.Sum(jobs, func(j *domain.Job) int { return j.Completion })
		sum.AvgCompletion = total / len(jobs)
	}
	return sum
}

func summarizeLeads(leads []*domain.Lead) contract.LeadSummary {
	return contract.LeadSummary{
		Count:         len(leads),
		PipelineValue: listview.Sum(leads, func(l *domain.Lead) domain.Money { return l.Value }),
		Hot:           listview.CountWhere(leads, func(l *domain.Lead) bool { return l.Status == domain.LeadHot }),
	}
}

func summarizeEstimates(estimates []*domain.Estimate) contract.EstimateSummary {
	counts := listview.CountByStatus(estimates, estimateSpec.Status)
	return contract.EstimateSummary{
		Count:      len(estimates),
		TotalValue: listview.Sum(estimates, func(e *domain.Estimate) domain.Money { return e.Amount }),
		Sent:       counts[domain.EstimateSent],
		Accepted:   counts[domain.EstimateAccepted],
	}
}

func summarizeInvoices(invoices []*domain.Invoice) contract.InvoiceSummary {
	sum := contract.InvoiceSummary{
		Count:       len(invoices),
		TotalAmount: listview.Sum(invoices, func(inv *domain.Invoice) domain.Money { return inv.Amount }),
		TotalPaid:   listview.Sum(invoices, func(inv *domain.Invoice) domain.Money { return inv.Paid }),
		Overdue:     listview.CountWhere(invoices, func(inv *domain.Invoice) bool { return inv.Status == domain.InvoiceOverdue }),
	}
	sum.Outstanding = sum.TotalAmount - sum.TotalPaid
	return sum
}
