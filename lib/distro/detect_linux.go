// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package distro

// Detect identifies the running host's distribution.
func Detect() Release {
	return DetectFrom("/")
}
