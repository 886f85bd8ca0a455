// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testenv bootstraps a test process: debugger hook, logging,
// and host distribution detection, performed once before any test
// runs.
//
// A test package opts in from its TestMain:
//
//	func TestMain(m *testing.M) {
//	    testenv.Main(m)
//	}
//
// and then branches on the host's packaging family:
//
//	func TestRPMQuery(t *testing.T) {
//	    testenv.SkipUnlessRedHat(t)
//	    ...
//	}
//
// [Setup] performs three independent actions, in order:
//
//   - Logging: installs a process-wide slog default whose format and
//     level come from the configuration (default: LEVEL:FUNCTION:MESSAGE
//     at INFO, via lib/logfmt).
//   - Debugger hook: when the configured variable (default DEBUG) is
//     set, makes debughook.Break live. An unavailable debugger facility
//     is silently ignored.
//   - Distribution detection: classifies the host as Red Hat family,
//     Debian family, or neither, and publishes the result through
//     [PlatRedHat] and [PlatDebian].
//
// Setup runs at most once per process; the state it produces is never
// mutated afterwards. Before Setup both flags read false.
package testenv
