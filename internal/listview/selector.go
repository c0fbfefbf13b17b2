package listview

import (
	"strings"
)

// AllLabel is the selector label that matches every status.
const AllLabel = "All"

// Status is the constraint satisfied by the closed status enums.
type Status interface {
	comparable
	String() string
}

// Selector is either All or exactly one status value.
type Selector[S Status] struct {
	status S
	only   bool
}

// All returns the selector matching every record.
func All[S Status]() Selector[S] {
	return Selector[S]{}
}

// Only returns the selector matching records whose status equals s.
func Only[S Status](s S) Selector[S] {
	return Selector[S]{status: s, only: true}
}

func (sel Selector[S]) IsAll() bool { return !sel.only }

// Status reports the selected status; ok is false for All.
func (sel Selector[S]) Status() (s S, ok bool) {
	return sel.status, sel.only
}

func (sel Selector[S]) Matches(s S) bool {
	return !sel.only || sel.status == s
}

func (sel Selector[S]) String() string {
	if !sel.only {
		return AllLabel
	}
	return sel.status.String()
}

// ParseSelector accepts "All" (any case, or blank) or a status name
// understood by parse.
func ParseSelector[S Status](raw string, parse func(string) (S, error)) (Selector[S], error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, AllLabel) {
		return All[S](), nil
	}
	s, err := parse(trimmed)
	if err != nil {
		return All[S](), err
	}
	return Only(s), nil
}

// Next steps through All followed by each status in order, wrapping back
// to All after the last one.
func (sel Selector[S]) Next(statuses []S) Selector[S] {
	if len(statuses) == 0 {
		return All[S]()
	}
	if !sel.only {
		return Only(statuses[0])
	}
	for i, s := range statuses {
		if s == sel.status && i+1 < len(statuses) {
			return Only(statuses[i+1])
		}
	}
	return All[S]()
}
