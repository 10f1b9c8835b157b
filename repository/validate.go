package repository

import (
	"regexp"
	"strings"
)

// userIdPattern is the textual user id format: two digits, a dash, seven
// digits, e.g. "42-0000001".
var userIdPattern = regexp.MustCompile(`^\d{2}-\d{7}$`)

// IsValidUserId reports whether id is well formed. Existence is a separate
// check against the store.
func IsValidUserId(id string) bool {
	return userIdPattern.MatchString(id)
}

// NormalizeCategoryName folds a caller supplied category name to the stored
// canonical form: surrounding whitespace trimmed, upper-cased.
func NormalizeCategoryName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
