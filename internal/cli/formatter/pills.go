package formatter

import "github.com/alexanderramin/foreman/internal/domain"

// Status pills pair a glyph with the status label so they still read
// correctly without color.

func JobTone(s domain.JobStatus) Tone {
	switch s {
	case domain.JobInProgress:
		return ToneInfo
	case domain.JobPlanning:
		return ToneWarn
	case domain.JobCompleted:
		return ToneGood
	default:
		return ToneNeutral
	}
}

func LeadTone(s domain.LeadStatus) Tone {
	switch s {
	case domain.LeadHot:
		return ToneBad
	case domain.LeadWarm:
		return ToneWarn
	default:
		return ToneInfo
	}
}

func EstimateTone(s domain.EstimateStatus) Tone {
	switch s {
	case domain.EstimateSent:
		return ToneInfo
	case domain.EstimateAccepted:
		return ToneGood
	case domain.EstimateRejected:
		return ToneBad
	default:
		return ToneNeutral
	}
}

func InvoiceTone(s domain.InvoiceStatus) Tone {
	switch s {
	case domain.InvoicePaid:
		return ToneGood
	case domain.InvoicePartial:
		return ToneWarn
	case domain.InvoiceOverdue:
		return ToneBad
	default:
		return ToneInfo
	}
}

func MilestoneTone(s domain.MilestoneStatus) Tone {
	switch s {
	case domain.MilestoneCompleted:
		return ToneGood
	case domain.MilestoneInProgress:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// Pill renders "● Label" in the tone's color.
func Pill(label string, tone Tone) string {
	glyph := "●"
	if tone == ToneNeutral {
		glyph = "○"
	}
	return tone.Style().Render(glyph + " " + label)
}

func JobPill(s domain.JobStatus) string           { return Pill(s.String(), JobTone(s)) }
func LeadPill(s domain.LeadStatus) string         { return Pill(s.String(), LeadTone(s)) }
func EstimatePill(s domain.EstimateStatus) string { return Pill(s.String(), EstimateTone(s)) }
func InvoicePill(s domain.InvoiceStatus) string   { return Pill(s.String(), InvoiceTone(s)) }
