// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"os"
)

// LoadJSON reads the JSON document at path and merges its top-level object
// into the store. The path must name an existing regular file; validation,
// read, and parse failures are logged and reported as false without touching
// the store. A document whose top level is not an object is rejected by the
// type guard in UpdateFromMap, so LoadJSON returns false for it as well.
func (s *Store) LoadJSON(path string) bool {
	if path == "" || !isRegularFile(path) {
		s.diag().Error().Str("path", path).Msg("filename is abnormal or path is abnormal")
		return false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.diag().Error().Err(err).Str("path", path).Msg("error reading a json file")
		return false
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		s.diag().Error().Err(err).Str("path", path).Msg("error decoding json settings")
		return false
	}

	return s.UpdateFromMap(data)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
