// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"io"
	"log/slog"

	"github.com/bureau-foundation/hostenv/lib/config"
	"github.com/bureau-foundation/hostenv/lib/logfmt"
)

// NewLogger builds the logger described by logging, writing to w. An
// unparseable level falls back to INFO; an unknown format falls back to
// classic.
func NewLogger(logging config.LoggingConfig, w io.Writer) *slog.Logger {
	level, err := logfmt.ParseLevel(logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	switch logging.Format {
	case config.FormatText:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	case config.FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		return slog.New(logfmt.New(w, &logfmt.Options{Level: level}))
	}
}
