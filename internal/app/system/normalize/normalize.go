// Package normalize provides helper functions for consistent string
// normalization across the application.
package normalize

import "strings"

// Role trims and lowercases a role. The backend issues "admin", "teacher"
// and "student" but older tokens carry capitalized values.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims a login name. Case is preserved; the backend decides
// whether it is significant.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// ID trims an identifier taken from a URL or form.
func ID(s string) string {
	return strings.TrimSpace(s)
}
