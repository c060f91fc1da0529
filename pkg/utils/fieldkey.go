package utils

import (
	"regexp"
	"strings"
)

var fieldKeyInvalid = regexp.MustCompile("[^a-z0-9]+")

// NormalizeFieldKey converts an admin-entered label or key into the
// lowercase/underscored identifier form used by field definitions.
func NormalizeFieldKey(s string) string {
	s = strings.ToLower(s)
	s = fieldKeyInvalid.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
