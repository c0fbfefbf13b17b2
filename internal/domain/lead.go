package domain

import "fmt"

// LastContactNew is the last-contact label given to a freshly added lead.
const LastContactNew = "Just now"

type Lead struct {
	ID       string
	Name     string
	Company  string
	Email    string
	Phone    string
	Location string
	Status   LeadStatus
	Value    Money
	Source   LeadSource

	// LastContact is a free-form label ("2 days ago", "Yesterday").
	LastContact string
}

// Validate checks presence of every field the lead form marks required.
// Lead status moves freely between Hot, Warm and Cold through edits.
func (l *Lead) Validate() error {
	if err := Require(
		RequiredField{"name", l.Name},
		RequiredField{"company", l.Company},
		RequiredField{"email", l.Email},
		RequiredField{"phone", l.Phone},
		RequiredField{"location", l.Location},
	); err != nil {
		return err
	}
	if !l.Status.Valid() {
		return fmt.Errorf("%w: lead status", ErrRequired)
	}
	if !l.Source.Valid() {
		return fmt.Errorf("%w: lead source", ErrRequired)
	}
	return nil
}

// Initials returns the avatar initials for the lead's name.
func (l *Lead) Initials() string {
	return Initials(l.Name)
}
