// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package debughook installs an on-demand debugger breakpoint for test
// runs.
//
// When the DEBUG environment variable is set, [Install] makes [Break]
// live: a test can call debughook.Break() at the point it wants to
// inspect, and the process stops there under a debugger. Without the
// variable, Break is a no-op, so calls can stay in the code.
//
// Go has no in-process interactive debugger. The facility Break relies
// on is an external tracer (delve) attached to the process. If one is
// already attached, Break traps into it immediately. Otherwise it logs
// the process ID with a "dlv attach" hint and waits, up to the
// configured limit, for a tracer to attach before trapping. If none
// arrives, execution continues.
//
// Tracer detection reads TracerPid from /proc/self/status. On
// platforms without procfs the facility cannot be located, and
// [Install] discards the request without error: debugging is always
// best-effort and never fails a test run.
package debughook
