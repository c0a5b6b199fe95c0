package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every email comparison and every stored email goes through this function.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
