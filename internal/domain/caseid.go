package domain

import "strings"

// CaseIDLength is the exact number of digits in a case identifier (NF number).
const CaseIDLength = 6

// IsValidCaseID reports whether s is exactly six ASCII digits.
func IsValidCaseID(s string) bool {
	if len(s) != CaseIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeCaseID trims surrounding whitespace from raw user input.
func NormalizeCaseID(raw string) string {
	return strings.TrimSpace(raw)
}
