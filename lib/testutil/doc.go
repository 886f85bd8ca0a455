// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for hostenv packages.
//
// [WriteFile] and [WriteTree] build synthetic filesystem roots: a
// temporary directory standing in for "/" with just the release files
// a test needs (etc/os-release, etc/debian_version, proc/self/status).
// Detection code takes a root parameter so it can be pointed at these
// trees instead of the real host.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so individual tests
// never hang on a channel that is never written.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no hostenv-internal dependencies.
package testutil
