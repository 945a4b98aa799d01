package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var fold = cases.Fold()

// NormalizeName trims and collapses whitespace and applies Unicode NFC, so that
// "Anna  Nagar" and a decomposed Tamil spelling compare equal to their canonical form.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// NormalizeUsername canonicalises a login name: NFC, no surrounding spaces, case folded.
func NormalizeUsername(s string) string {
	return fold.String(norm.NFC.String(strings.TrimSpace(s)))
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
