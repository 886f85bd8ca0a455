// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package debughook

// locateTracer returns a tracer backed by this process's procfs status.
func locateTracer() (Tracer, error) {
	return locateStatusFile("/proc/self/status")
}
