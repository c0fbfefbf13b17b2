package domain

import "fmt"

type Estimate struct {
	ID         string
	Client     string
	Project    string
	Amount     Money
	Status     EstimateStatus
	Date       string
	ValidUntil string
}

func (e *Estimate) Validate() error {
	return Require(
		RequiredField{"client", e.Client},
		RequiredField{"project", e.Project},
		RequiredField{"valid until", e.ValidUntil},
	)
}

// CanSend reports whether Send would succeed. Accepted and Rejected are
// only ever set externally.
func (e *Estimate) CanSend() bool {
	return e.Status == EstimateDraft || e.Status == EstimateSent
}

// Send moves a Draft estimate to Sent. Re-sending a Sent estimate is allowed
// and leaves it Sent.
func (e *Estimate) Send() error {
	if !e.CanSend() {
		return fmt.Errorf("%w: cannot send %s estimate %s", ErrInvalidTransition, e.Status, e.ID)
	}
	e.Status = EstimateSent
	return nil
}

// Duplicate returns a new Draft estimate copying client, project, amount
// and validity, under the given id and creation date.
func (e *Estimate) Duplicate(id, date string) *Estimate {
	return &Estimate{
		ID:         id,
		Client:     e.Client,
		Project:    e.Project,
		Amount:     e.Amount,
		Status:     EstimateDraft,
		Date:       date,
		ValidUntil: e.ValidUntil,
	}
}
