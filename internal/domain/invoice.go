package domain

import (
	"fmt"
	"math"
)

type Invoice struct {
	ID        string
	Client    string
	Project   string
	Amount    Money
	Paid      Money
	Status    InvoiceStatus
	IssueDate string
	DueDate   string
}

func (inv *Invoice) Validate() error {
	return Require(
		RequiredField{"client", inv.Client},
		RequiredField{"project", inv.Project},
		RequiredField{"due date", inv.DueDate},
	)
}

// ApplyPayment adds payment to Paid and recomputes status: Paid once the
// paid total reaches the amount, Partial otherwise. Paid is not capped at
// Amount, and Overdue is never derived here.
func (inv *Invoice) ApplyPayment(payment Money) error {
	if payment <= 0 {
		return fmt.Errorf("%w: payment must be greater than zero", ErrInvalidMoney)
	}
	if payment > math.MaxInt64-inv.Paid {
		return fmt.Errorf("%w: payment would overflow the paid total", ErrInvalidMoney)
	}
	inv.Paid += payment
	if inv.Paid >= inv.Amount {
		inv.Status = InvoicePaid
	} else {
		inv.Status = InvoicePartial
	}
	return nil
}

// Outstanding is the unpaid remainder; negative when overpaid.
func (inv *Invoice) Outstanding() Money {
	return inv.Amount - inv.Paid
}
