// SPDX-License-Identifier: MIT
// Package logging builds the leveled slog.Logger used by the percolath CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is a custom slog level below Debug.
const LevelTrace = slog.LevelDebug - 4

// levels lists every accepted level name, lower-case.
var levels = map[string]slog.Level{
	"trace": LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "trace", "debug", "info", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	if lvl, ok := levels[strings.ToLower(s)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// ValidLevel reports whether s names a supported level. Empty means default.
func ValidLevel(s string) bool {
	if s == "" {
		return true
	}
	_, ok := levels[strings.ToLower(s)]
	return ok
}

// NewLogger returns a text logger on w filtered at level.
//
// Sweep progress is logged at info and one line per step at debug. trace
// sits below debug and is labelled TRACE instead of slog's "DEBUG-4". warn
// and error keep only problems.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	}))
}

func labelTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
