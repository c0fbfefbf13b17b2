package cli

import (
	"strconv"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
)

func jobCards(s contract.JobSummary) []formatter.StatCard {
	return []formatter.StatCard{
		{Label: "Total Jobs", Value: strconv.Itoa(s.Count)},
		{Label: "Active", Value: strconv.Itoa(s.Active), Tone: formatter.ToneInfo},
		{Label: "Completed", Value: strconv.Itoa(s.Completed), Tone: formatter.ToneGood},
		{Label: "Total Value", Value: s.TotalValue.Thousands()},
		{Label: "Avg Completion", Value: strconv.Itoa(s.AvgCompletion) + "%"},
	}
}

func leadCards(s contract.LeadSummary) []formatter.StatCard {
	return []formatter.StatCard{
		{Label: "Total Leads", Value: strconv.Itoa(s.Count)},
		{Label: "Pipeline Value", Value: s.PipelineValue.Thousands(), Tone: formatter.ToneGood},
		{Label: "Hot Leads", Value: strconv.Itoa(s.Hot), Tone: formatter.ToneBad},
	}
}

func estimateCards(s contract.EstimateSummary) []formatter.StatCard {
	return []formatter.StatCard{
		{Label: "Total Estimates", Value: strconv.Itoa(s.Count)},
		{Label: "Total Value", Value: s.TotalValue.Thousands()},
		{Label: "Sent", Value: strconv.Itoa(s.Sent), Tone: formatter.ToneInfo},
		{Label: "Accepted", Value: strconv.Itoa(s.Accepted), Tone: formatter.ToneGood},
	}
}

func invoiceCards(s contract.InvoiceSummary) []formatter.StatCard {
	return []formatter.StatCard{
		{Label: "Total Invoiced", Value: s.TotalAmount.Thousands()},
		{Label: "Paid", Value: s.TotalPaid.Thousands(), Tone: formatter.ToneGood},
		{Label: "Outstanding", Value: s.Outstanding.Thousands(), Tone: formatter.ToneWarn},
		{Label: "Overdue", Value: strconv.Itoa(s.Overdue), Tone: formatter.ToneBad},
	}
}
