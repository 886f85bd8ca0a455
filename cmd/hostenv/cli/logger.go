// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/hostenv/lib/config"
	"github.com/bureau-foundation/hostenv/lib/logfmt"
)

// DebugVariable lowers the CLI log level to DEBUG when set to any
// non-empty value, regardless of configuration.
const DebugVariable = "HOSTENV_DEBUG"

// LogFormatAuto selects the handler by destination: slog.TextHandler
// when w is a terminal, slog.JSONHandler when piped or redirected.
const LogFormatAuto = ""

// CheckLogFormat returns an error unless format is LogFormatAuto or one
// of config.FormatClassic, config.FormatText, config.FormatJSON.
func CheckLogFormat(format string) error {
	switch format {
	case LogFormatAuto, config.FormatClassic, config.FormatText, config.FormatJSON:
		return nil
	}
	return fmt.Errorf("--log-format must be one of %s, %s, %s (got %q)",
		config.FormatClassic, config.FormatText, config.FormatJSON, format)
}

// NewCommandLogger creates the logger for CLI diagnostics written to w.
// An unknown format behaves as LogFormatAuto; call CheckLogFormat
// first to reject it.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(stderr, format, level).With("root", root)
func NewCommandLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case config.FormatClassic:
		handler = logfmt.New(w, &logfmt.Options{Level: level})
	case config.FormatText:
		handler = slog.NewTextHandler(w, options)
	case config.FormatJSON:
		handler = slog.NewJSONHandler(w, options)
	default:
		if IsTerminal(w) {
			handler = slog.NewTextHandler(w, options)
		} else {
			handler = slog.NewJSONHandler(w, options)
		}
	}
	return slog.New(handler)
}

// CommandLogLevel is configured, lowered to DEBUG when DebugVariable
// is set in the environment.
func CommandLogLevel(configured slog.Level) slog.Level {
	if os.Getenv(DebugVariable) != "" {
		return slog.LevelDebug
	}
	return configured
}
