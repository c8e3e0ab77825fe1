// SPDX-License-Identifier: MIT

// Package logging builds the slog.Logger shared by the CLI and the scenario
// loader. Libraries take a logger through their WithLogger options and stay
// silent by default.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLeveled creates a logger writing to w at the given level, e.g. a
// *slog.LevelVar that is adjusted after construction. Format "json" selects
// the JSON handler, anything else the text handler. The global logger is not
// touched.
func NewLeveled(level slog.Leveler, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps debug, info, warn or error (any case) to slog.Level;
// anything else means info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
