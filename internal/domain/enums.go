package domain

import (
	"fmt"
	"strings"
)

// Status enums are closed sets. The zero value of each is invalid so an
// unset status is never mistaken for a real one.

type JobStatus uint8

const (
	JobInProgress JobStatus = iota + 1
	JobPlanning
	JobCompleted
	JobOnHold
)

var jobStatusNames = []string{"", "In Progress", "Planning", "Completed", "On Hold"}

func (s JobStatus) String() string { return enumName(jobStatusNames, uint8(s)) }
func (s JobStatus) Valid() bool    { return validEnum(jobStatusNames, uint8(s)) }

// JobStatuses lists job statuses in display order.
func JobStatuses() []JobStatus { return enumValues[JobStatus](jobStatusNames) }

// ParseJobStatus resolves a status name case-insensitively.
func ParseJobStatus(s string) (JobStatus, error) { return parseEnum[JobStatus]("job status", jobStatusNames, s) }

type LeadStatus uint8

const (
	LeadHot LeadStatus = iota + 1
	LeadWarm
	LeadCold
)

var leadStatusNames = []string{"", "Hot", "Warm", "Cold"}

func (s LeadStatus) String() string { return enumName(leadStatusNames, uint8(s)) }
func (s LeadStatus) Valid() bool    { return validEnum(leadStatusNames, uint8(s)) }

func LeadStatuses() []LeadStatus { return enumValues[LeadStatus](leadStatusNames) }

func ParseLeadStatus(s string) (LeadStatus, error) {
	return parseEnum[LeadStatus]("lead status", leadStatusNames, s)
}

type LeadSource uint8

const (
	SourceWebsite LeadSource = iota + 1
	SourceReferral
	SourceColdCall
	SourceLinkedIn
)

var leadSourceNames = []string{"", "Website", "Referral", "Cold Call", "LinkedIn"}

func (s LeadSource) String() string { return enumName(leadSourceNames, uint8(s)) }
func (s LeadSource) Valid() bool    { return validEnum(leadSourceNames, uint8(s)) }

func LeadSources() []LeadSource { return enumValues[LeadSource](leadSourceNames) }

func ParseLeadSource(s string) (LeadSource, error) {
	return parseEnum[LeadSource]("lead source", leadSourceNames, s)
}

type EstimateStatus uint8

const (
	EstimateDraft EstimateStatus = iota + 1
	EstimateSent
	EstimateAccepted
	EstimateRejected
)

var estimateStatusNames = []string{"", "Draft", "Sent", "Accepted", "Rejected"}

func (s EstimateStatus) String() string { return enumName(estimateStatusNames, uint8(s)) }
func (s EstimateStatus) Valid() bool    { return validEnum(estimateStatusNames, uint8(s)) }

func EstimateStatuses() []EstimateStatus { return enumValues[EstimateStatus](estimateStatusNames) }

func ParseEstimateStatus(s string) (EstimateStatus, error) {
	return parseEnum[EstimateStatus]("estimate status", estimateStatusNames, s)
}

type InvoiceStatus uint8

const (
	InvoicePending InvoiceStatus = iota + 1
	InvoicePartial
	InvoicePaid
	InvoiceOverdue
)

var invoiceStatusNames = []string{"", "Pending", "Partial", "Paid", "Overdue"}

func (s InvoiceStatus) String() string { return enumName(invoiceStatusNames, uint8(s)) }
func (s InvoiceStatus) Valid() bool    { return validEnum(invoiceStatusNames, uint8(s)) }

func InvoiceStatuses() []InvoiceStatus { return enumValues[InvoiceStatus](invoiceStatusNames) }

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	return parseEnum[InvoiceStatus]("invoice status", invoiceStatusNames, s)
}

type MilestoneStatus uint8

const (
	MilestoneCompleted MilestoneStatus = iota + 1
	MilestoneInProgress
	MilestonePending
)

var milestoneStatusNames = []string{"", "Completed", "In Progress", "Pending"}

func (s MilestoneStatus) String() string { return enumName(milestoneStatusNames, uint8(s)) }
func (s MilestoneStatus) Valid() bool    { return validEnum(milestoneStatusNames, uint8(s)) }

func ParseMilestoneStatus(s string) (MilestoneStatus, error) {
	return parseEnum[MilestoneStatus]("milestone status", milestoneStatusNames, s)
}

type TeamRole uint8

const (
	RoleAdmin TeamRole = iota + 1
	RoleManager
	RoleMember
)

var teamRoleNames = []string{"", "Admin", "Manager", "Member"}

func (r TeamRole) String() string { return enumName(teamRoleNames, uint8(r)) }
func (r TeamRole) Valid() bool    { return validEnum(teamRoleNames, uint8(r)) }

func ParseTeamRole(s string) (TeamRole, error) {
	return parseEnum[TeamRole]("team role", teamRoleNames, s)
}

func enumName(names []string, v uint8) string {
	if int(v) <= 0 || int(v) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", v)
	}
	return names[v]
}

func validEnum(names []string, v uint8) bool {
	return v > 0 && int(v) < len(names)
}

func enumValues[T ~uint8](names []string) []T {
	out := make([]T, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		out = append(out, T(i))
	}
	return out
}

func parseEnum[T ~uint8](kind string, names []string, s string) (T, error) {
	want := strings.TrimSpace(s)
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i], want) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidStatus, s, kind)
}
