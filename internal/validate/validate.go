// Package validate holds stateless helpers for account input strings.
package validate

import "strings"

// MaxNameLength is the default limit callers pass to TruncateName.
const MaxNameLength = 100

// ValidateEmail reports whether email contains both "@" and ".", anywhere and
// in any order. This is a substring check, not a structural one: "@." passes.
// Callers that need real address validation must bring their own.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// TruncateName returns the first maxLength characters of name when name is
// longer, otherwise name unchanged. Characters are counted as runes so a
// multibyte name is never cut mid-character.
func TruncateName(name string, maxLength int) string {
	runes := []rune(name)
	if len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return name
}
