// Package settings implements a dynamic key/value settings container.
//
// A Store is populated from up to two sources, applied in a fixed order
// (later source wins on conflicting names):
//  1. An in-memory defaults map
//  2. A JSON file whose top level is an object
//
// Incoming keys pass through name sanitization: leading '-' characters are
// stripped, and keys containing characters outside ASCII letters, digits,
// '_', '.', ':', '/' and backslash are silently skipped. Values are opaque
// and never validated or coerced.
//
// No operation panics or returns an error value. Failures are absorbed into
// a boolean result (or a caller-supplied default) plus a diagnostic log
// entry, so callers detect problems through return values, not error
// handling.
//
// A Store is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package settings
