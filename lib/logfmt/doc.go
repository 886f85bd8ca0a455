// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package logfmt provides a [log/slog] handler that renders records in
// the compact "LEVEL:FUNCTION:MESSAGE" form used by test output.
//
//	INFO:TestProvisionPackages:installing 3 packages
//
// FUNCTION is the bare name of the function that called the logger:
// no package path, no receiver type, and closures attributed to their
// enclosing function. Attributes, when present, follow the message as
// space-separated key=value pairs, so a plain message matches the
// three-field form exactly.
//
// The default minimum level is INFO. [Handler] is safe for concurrent
// use; handlers derived through WithAttrs and WithGroup share the
// parent's writer lock.
package logfmt
