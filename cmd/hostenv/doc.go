// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Hostenv reports the identity of the host a test suite is running on:
// distribution, packaging family, kernel, and a stable fingerprint of
// those facts. It reads the same configuration as lib/testenv
// (HOSTENV_CONFIG) so its answers match what a test process sees.
//
//	hostenv probe [--json|--cbor] [--root DIR]
//	hostenv family [--is redhat|debian] [--root DIR]
//	hostenv fingerprint [--short] [--root DIR]
//	hostenv debug
//	hostenv version
package main
