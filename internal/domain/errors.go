package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is returned when a required field is blank.
	ErrRequired = errors.New("required field missing")

	// ErrInvalidMoney is returned when a monetary string cannot be parsed.
	ErrInvalidMoney = errors.New("invalid amount")

	// ErrInvalidStatus is returned when a status name is not part of the
	// entity's status set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition is returned when a status change is not allowed
	// from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// RequiredField pairs a form field label with its submitted value.
type RequiredField struct {
	Name  string
	Value string
}

// Require returns ErrRequired naming the first field whose value is blank.
func Require(fields ...RequiredField) error {
	for _, f := range fields {
		if isBlank(f.Value) {
			return fmt.Errorf("%w: %s", ErrRequired, f.Name)
		}
	}
	return nil
}
