// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package debughook

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrUnavailable is returned by the platform locator when the process
// cannot observe whether a tracer is attached.
var ErrUnavailable = errors.New("tracer detection not supported on this platform")

// ProcStatusTracer detects a tracer through the TracerPid field of a
// procfs status file.
type ProcStatusTracer struct {
	// Path is the status file, normally /proc/self/status.
	Path string
}

// Attached reports whether TracerPid is non-zero.
func (p ProcStatusTracer) Attached() (bool, error) {
	pid, err := ReadTracerPID(p.Path)
	if err != nil {
		return false, err
	}
	return pid != 0, nil
}

// ReadTracerPID returns the TracerPid value from a procfs status file.
func ReadTracerPID(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		value, found := strings.CutPrefix(scanner.Text(), "TracerPid:")
		if !found {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("parsing TracerPid in %s: %w", path, err)
		}
		return pid, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return 0, fmt.Errorf("%s has no TracerPid field", path)
}

// locateStatusFile verifies that path is a readable status file with a
// TracerPid field and returns a tracer for it.
func locateStatusFile(path string) (Tracer, error) {
	if _, err := ReadTracerPID(path); err != nil {
		return nil, err
	}
	return ProcStatusTracer{Path: path}, nil
}

// Locate returns the platform tracer for this process, or an error
// when the facility cannot be used. Install calls it unless
// Options.Locate overrides it.
func Locate() (Tracer, error) {
	return locateTracer()
}
