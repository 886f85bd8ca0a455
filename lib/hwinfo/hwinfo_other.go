// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hwinfo

// readKernelFacts has no portable source outside Linux; the caller
// falls back to GOARCH for the machine name.
func readKernelFacts() kernelFacts {
	return kernelFacts{}
}
