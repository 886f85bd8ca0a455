// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package distro

// Detect returns a zero Release on non-Linux hosts: no distribution,
// both family flags false.
func Detect() Release {
	return Release{}
}
