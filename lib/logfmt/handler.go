// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logfmt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Options configures a Handler.
type Options struct {
	// Level is the minimum level that is written. Nil means INFO.
	Level slog.Leveler
}

// Handler is a slog.Handler writing "LEVEL:FUNCTION:MESSAGE" lines.
type Handler struct {
	writer io.Writer
	level  slog.Leveler

	// mu is shared by every handler derived from the same New call so
	// that lines from different loggers never interleave.
	mu *sync.Mutex

	// preformatted holds attributes added via WithAttrs, already
	// rendered as " key=value" pairs.
	preformatted string

	// groupPrefix is the dotted group path ("request.headers.") applied
	// to attribute keys.
	groupPrefix string
}

// New returns a Handler writing to w. A nil options uses INFO as the
// minimum level.
func New(w io.Writer, options *Options) *Handler {
	handler := &Handler{
		writer: w,
		level:  slog.LevelInfo,
		mu:     &sync.Mutex{},
	}
	if options != nil && options.Level != nil {
		handler.level = options.Level
	}
	return handler
}

// Enabled reports whether level is at or above the configured minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line for record.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var builder strings.Builder
	builder.WriteString(record.Level.String())
	builder.WriteByte(':')
	builder.WriteString(FunctionName(record.PC))
	builder.WriteByte(':')
	builder.WriteString(record.Message)
	builder.WriteString(h.preformatted)
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&builder, h.groupPrefix, attr)
		return true
	})
	builder.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, builder.String())
	return err
}

// WithAttrs returns a handler that includes attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var builder strings.Builder
	builder.WriteString(h.preformatted)
	for _, attr := range attrs {
		appendAttr(&builder, h.groupPrefix, attr)
	}
	clone := *h
	clone.preformatted = builder.String()
	return &clone
}

// WithGroup returns a handler that qualifies subsequent attribute keys
// with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groupPrefix = h.groupPrefix + name + "."
	return &clone
}

// appendAttr renders attr as " key=value", flattening groups.
func appendAttr(builder *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		members := attr.Value.Group()
		if len(members) == 0 {
			return
		}
		// An inline group (empty key) contributes its members at the
		// current level.
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		for _, member := range members {
			appendAttr(builder, groupPrefix, member)
		}
		return
	}

	builder.WriteByte(' ')
	builder.WriteString(prefix)
	builder.WriteString(attr.Key)
	builder.WriteByte('=')
	builder.WriteString(formatValue(attr.Value))
}

// formatValue renders a value, quoting strings that contain spaces,
// quotes, or are empty.
func formatValue(value slog.Value) string {
	var text string
	switch value.Kind() {
	case slog.KindString:
		text = value.String()
	case slog.KindAny:
		if err, ok := value.Any().(error); ok {
			text = err.Error()
		} else {
			text = fmt.Sprint(value.Any())
		}
	default:
		return value.String()
	}
	if text == "" || strings.ContainsAny(text, " \t\n\"=") {
		return strconv.Quote(text)
	}
	return text
}

// FunctionName returns the bare name of the function containing pc:
// package path and receiver stripped, closures attributed to the
// enclosing function. Returns "?" for a zero pc.
//
//	github.com/org/repo/pkg.(*Server).handle.func1  ->  handle
//	main.main                                       ->  main
func FunctionName(pc uintptr) string {
	if pc == 0 {
		return "?"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.Function == "" {
		return "?"
	}
	return shortFunctionName(frame.Function)
}

// shortFunctionName reduces a fully qualified runtime function name to
// the bare function name.
func shortFunctionName(qualified string) string {
	// Type parameter lists ("[...]") contain dots, so they go first.
	name := stripTypeParameters(qualified)

	// Drop the import path: everything up to the last slash.
	if index := strings.LastIndexByte(name, '/'); index >= 0 {
		name = name[index+1:]
	}

	// What remains is "pkg.Func", "pkg.(*T).Method", "pkg.T.Method",
	// or any of those with ".funcN" / ".gowrapN" suffixes. Split on dots
	// and keep the last segment that is not a compiler-generated closure
	// or wrapper suffix.
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.TrimSuffix(parts[i], "-fm")
		if part == "" || isGeneratedSuffix(part) {
			continue
		}
		return part
	}
	return name
}

// stripTypeParameters removes every bracketed type parameter list,
// nested or not: "pkg.(*T[...]).M" becomes "pkg.(*T).M".
func stripTypeParameters(name string) string {
	if !strings.ContainsRune(name, '[') {
		return name
	}
	var builder strings.Builder
	depth := 0
	for _, character := range name {
		switch {
		case character == '[':
			depth++
		case character == ']' && depth > 0:
			depth--
		case depth == 0:
			builder.WriteRune(character)
		}
	}
	return builder.String()
}

// isGeneratedSuffix reports whether part is a compiler-generated name
// segment: "func1", "gowrap2", "deferwrap1", or a bare closure index
// ("1" in "Outer.func1.1").
func isGeneratedSuffix(part string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, found := strings.CutPrefix(part, prefix); found && isDigits(rest) {
			return true
		}
	}
	return isDigits(part)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, character := range s {
		if character < '0' || character > '9' {
			return false
		}
	}
	return true
}

// ParseLevel converts a level name ("debug", "info", "warn", "error",
// case-insensitive) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
