// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the hostenv build version.
//
// Values are injected at build time via -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/hostenv/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/hostenv
//
// Unstamped builds report "unknown" for the commit and build time.
package version
