package settings

import (
	"regexp"
	"strings"
)

// disallowed matches any character that may not appear in a settings name:
// everything outside ASCII letters, digits, '_', '.', ':', '/' and backslash.
var disallowed = regexp.MustCompile(`[^a-zA-Z0-9_.:/\\]`)

// cleanName converts a raw key into a usable settings name. Leading '-'
// characters are stripped; if any disallowed character remains anywhere in
// the result, the key is rejected and cleanName returns "". Callers must
// treat "" as "skip this key", never as a valid name.
func cleanName(raw string) string {
	name := strings.TrimLeft(raw, "-")
	if disallowed.MatchString(name) {
		return ""
	}

	return name
}
