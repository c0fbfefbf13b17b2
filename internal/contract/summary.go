package contract

import "github.com/alexanderramin/foreman/internal/domain"

// Summaries are always computed over the filtered set the caller sees.

type JobSummary struct {
	Count         int
	Active        int
	Completed     int
	TotalValue    domain.Money
	AvgCompletion int
}

type LeadSummary struct {
	Count         int
	PipelineValue domain.Money
	Hot           int
}

type EstimateSummary struct {
	Count      int
	TotalValue domain.Money
	Sent       int
	Accepted   int
}

type InvoiceSummary struct {
	Count       int
	TotalAmount domain.Money
	TotalPaid   domain.Money
	Outstanding domain.Money
	Overdue     int
}
