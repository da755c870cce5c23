package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of value.
func Fold(value string) string {
	if value == "" {
		return ""
	}
	return cases.Fold().String(value)
}

// EqualFold reports whether a and b are equal under case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold reports whether substr occurs within value under case folding.
// An empty substr matches every value.
func ContainsFold(value, substr string) bool {
	return strings.Contains(Fold(value), Fold(substr))
}

// IsDigits reports whether value is a non-empty run of ASCII digits.
func IsDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
