// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hwinfo probes the identity of the host a test run executes
// on: hostname, operating system, machine architecture, kernel release,
// and Linux distribution (via lib/distro).
//
// The probe never fails. Missing or unreadable sources produce empty
// fields, so a minimal container with no os-release and a restricted
// uname still reports what it can. [ProbeRoot] reads distribution
// files from an alternate root (a chroot or image mount) while the
// kernel facts still come from the running kernel.
package hwinfo
