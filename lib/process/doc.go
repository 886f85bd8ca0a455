// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for hostenv binaries and
// test mains. It centralizes the one legitimate raw-stderr pattern:
// reporting a fatal error before (or instead of) the structured logger,
// then exiting.
package process
