// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import "golang.org/x/sys/unix"

// readKernelFacts returns the kernel release and machine from uname(2).
// On failure both are empty.
func readKernelFacts() kernelFacts {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return kernelFacts{}
	}
	return kernelFacts{
		release: unix.ByteSliceToString(utsname.Release[:]),
		machine: unix.ByteSliceToString(utsname.Machine[:]),
	}
}
