package domain

import "fmt"

type Milestone struct {
	Name   string
	Status MilestoneStatus
	Date   string
}

// Job is an active or planned construction project. Jobs are never moved
// between statuses by any action; their status is set when they are created.
type Job struct {
	ID     string
	Name   string
	Client string
	Status JobStatus
	Value  Money

	StartDate string
	EndDate   string

	// Completion is a percentage in [0, 100].
	Completion int

	Location    string
	Description string
	Team        []string
	Milestones  []Milestone
}

// Validate checks the fields a new job cannot be created without.
func (j *Job) Validate() error {
	if err := Require(
		RequiredField{"name", j.Name},
		RequiredField{"client", j.Client},
	); err != nil {
		return err
	}
	if !j.Status.Valid() {
		return fmt.Errorf("%w: job status", ErrRequired)
	}
	if j.Completion < 0 || j.Completion > 100 {
		return fmt.Errorf("completion %d out of range 0-100", j.Completion)
	}
	return nil
}

// Timeline renders the start/end range shown in the detail panel.
func (j *Job) Timeline() string {
	switch {
	case j.StartDate == "" && j.EndDate == "":
		return ""
	case j.EndDate == "":
		return j.StartDate
	default:
		return j.StartDate + " - " + j.EndDate
	}
}
