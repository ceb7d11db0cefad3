// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used for the
// settings store's diagnostic messages.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API is available
// directly on *Logger. Diagnostics are non-fatal by contract: nothing in this
// module logs at Fatal or Panic level.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while letting the module add constructors
// without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given component label
// (e.g. "settings"). Every entry carries a "component" field and a
// timestamp. Output is written to os.Stderr in JSON format.
func NewLogger(component string) *Logger {
	return NewLoggerTo(os.Stderr, component)
}

// NewLoggerTo is NewLogger with an explicit output writer. Tests use it to
// capture diagnostics in a buffer.
func NewLoggerTo(w io.Writer, component string) *Logger {
	l := zerolog.New(w).With().
		Str("component", component).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Wrap adapts a caller-supplied zerolog.Logger, tagging its entries with the
// given component label. The original logger is not modified.
func Wrap(l zerolog.Logger, component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
