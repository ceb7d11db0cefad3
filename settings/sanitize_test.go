package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName_ValidNames(t *testing.T) {
	cases := map[string]string{
		"plain":             "plain",
		"-x":                "x",
		"---verbose":        "verbose",
		"a.b":               "a.b",
		"ns:key":            "ns:key",
		"path/to/value":     "path/to/value",
		`C:\data\file`:      `C:\data\file`,
		"snake_case_123":    "snake_case_123",
		"--log.level:debug": "log.level:debug",
	}

	for raw, want := range cases {
		assert.Equal(t, want, cleanName(raw), "cleanName(%q)", raw)
	}
}

func TestCleanName_RejectsDisallowedCharacters(t *testing.T) {
	for _, raw := range []string{
		"bad key",
		"has#hash",
		"at@sign",
		"tab\tkey",
		"-still bad",
		"trailing ",
		"uni·code",
	} {
		assert.Empty(t, cleanName(raw), "cleanName(%q) should reject", raw)
	}
}

func TestCleanName_EmptyResults(t *testing.T) {
	assert.Empty(t, cleanName(""))
	assert.Empty(t, cleanName("---"))
}

func TestCleanName_InteriorDashesRejected(t *testing.T) {
	// Only leading dashes are stripped; an interior dash is a disallowed
	// character and rejects the whole key.
	assert.Empty(t, cleanName("-two-part"))
}
