package domain

import (
	"strings"
	"time"
	"unicode"
)

// DisplayDateLayout is the layout of every date shown to the user.
const DisplayDateLayout = "Jan 2, 2006"

// DisplayDate formats t as "Jan 15, 2024".
func DisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// NormalizeDate converts date-picker input (YYYY-MM-DD) to the display
// layout. Anything else is kept as typed, trimmed.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DisplayDate(t)
	}
	return s
}

// Initials returns the upper-cased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
