// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"os"
	"runtime"

	"github.com/bureau-foundation/hostenv/lib/distro"
	"github.com/bureau-foundation/hostenv/lib/version"
)

// HostInfo is the static identity of a host.
type HostInfo struct {
	Hostname string `json:"hostname,omitempty"`

	// OS is the Go runtime's GOOS ("linux", "darwin").
	OS string `json:"os"`

	// Machine is the kernel's hardware name from uname(2) ("x86_64",
	// "aarch64"), falling back to GOARCH where uname is unavailable.
	Machine string `json:"machine"`

	// KernelRelease is the uname(2) release ("6.8.0-45-generic").
	KernelRelease string `json:"kernel_release,omitempty"`

	Distro distro.Release `json:"distro"`

	// ToolVersion is the hostenv version that produced the probe.
	ToolVersion string `json:"tool_version"`
}

// kernelFacts are the uname(2) fields HostInfo reports.
type kernelFacts struct {
	release string
	machine string
}

// Probe collects the identity of the running host.
func Probe() HostInfo {
	return probeFrom("/", readKernelFacts, distro.Detect)
}

// ProbeRoot is Probe with distribution files read from root instead of
// "/".
func ProbeRoot(root string) HostInfo {
	if root == "" || root == "/" {
		return Probe()
	}
	return probeFrom(root, readKernelFacts, nil)
}

// probeFrom is the testable implementation of Probe. kernel supplies
// the uname facts; detect, when non-nil, replaces distro.DetectFrom(root)
// (Probe uses distro.Detect so non-Linux hosts report no distribution).
func probeFrom(root string, kernel func() kernelFacts, detect func() distro.Release) HostInfo {
	info := HostInfo{
		OS:          runtime.GOOS,
		ToolVersion: version.Short(),
	}

	info.Hostname, _ = os.Hostname()

	facts := kernel()
	info.KernelRelease = facts.release
	info.Machine = facts.machine
	if info.Machine == "" {
		info.Machine = runtime.GOARCH
	}

	if detect != nil {
		info.Distro = detect()
	} else {
		info.Distro = distro.DetectFrom(root)
	}
	return info
}
