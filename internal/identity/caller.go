// Package identity carries the authenticated caller supplied by the external identity provider.
package identity

import "strings"

// Caller is the already-verified identity of the user making a request. The core trusts it as-is.
// Email is empty for accounts without a verified email address.
type Caller struct {
	UserID string
	Email  string
	Name   string
}

// NormalizeEmail trims and lower-cases an address so stored invitations and verified caller
// emails compare equal regardless of case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizedEmail returns the caller's email in normalized form.
func (c Caller) NormalizedEmail() string {
	return NormalizeEmail(c.Email)
}
