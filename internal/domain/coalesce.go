package domain

import "strings"

// CoalesceStr returns the first non-blank string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if !isBlank(v) {
			return v
		}
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
