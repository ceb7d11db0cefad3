package settings

import (
	"strings"

	"dario.cat/mergo"
)

// UpdateFromMap merges src into the store. Only map[string]any sources are
// accepted; anything else returns false and leaves the store untouched. The
// same type guard rejects JSON documents whose top level is not an object.
//
// Each key is trimmed of surrounding whitespace and sanitized; keys that
// fail sanitization are skipped without error. Surviving keys overwrite
// existing entries unconditionally. Returns true once all keys are
// processed, even if some were skipped.
func (s *Store) UpdateFromMap(src any) bool {
	data, ok := src.(map[string]any)
	if !ok {
		return false
	}

	if s.entries == nil {
		s.entries = make(map[string]any)
	}

	for key, value := range data {
		name := cleanName(strings.TrimSpace(key))
		if name == "" {
			continue
		}

		s.entries[name] = value
	}

	return true
}

// MergeFrom merges every setting of other into the receiver. Settings of
// other win on conflicting names; values that are themselves maps are merged
// recursively. Names in both stores are already sanitized, so no
// re-sanitization happens.
//
// Returns false when other is nil or the merge fails, with the receiver left
// unchanged.
func (s *Store) MergeFrom(other *Store) bool {
	if other == nil {
		s.diag().Error().Msg("merge source store is nil")
		return false
	}

	if s.entries == nil {
		s.entries = make(map[string]any)
	}

	if err := mergo.Merge(&s.entries, other.entries, mergo.WithOverride); err != nil {
		s.diag().Error().Err(err).Msg("error merging stores")
		return false
	}

	return true
}
