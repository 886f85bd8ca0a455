// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package distro

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// osReleasePaths are checked in order; the first readable one wins.
var osReleasePaths = []string{
	"etc/os-release",
	"usr/lib/os-release",
}

// legacyMarker is a distribution-specific release file predating
// os-release.
type legacyMarker struct {
	path string
	id   string
}

// legacyMarkers are consulted only when no os-release file exists, in
// the alphabetical order of their file names: a root carrying both
// debian_version and redhat-release identifies as Debian.
var legacyMarkers = []legacyMarker{
	{path: "etc/debian_version", id: "debian"},
	{path: "etc/fedora-release", id: "fedora"},
	{path: "etc/redhat-release", id: "redhat"},
}

// DetectFrom identifies the distribution installed under root. Pass
// "/" for the running host. Missing or unreadable files produce a
// Release with FamilyUnknown rather than an error.
func DetectFrom(root string) Release {
	for _, relative := range osReleasePaths {
		file, err := os.Open(filepath.Join(root, relative))
		if err != nil {
			continue
		}
		fields, err := ParseOSRelease(file)
		file.Close()
		if err != nil {
			continue
		}
		return releaseFromFields(fields, relative)
	}

	for _, marker := range legacyMarkers {
		data, err := os.ReadFile(filepath.Join(root, marker.path))
		if err != nil {
			continue
		}
		return releaseFromMarker(marker, strings.TrimSpace(string(data)))
	}

	return Release{}
}

// releaseLinePattern matches the version and codename in redhat-release
// style lines: "CentOS Linux release 7.9.2009 (Core)",
// "Fedora release 39 (Thirty Nine)".
var releaseLinePattern = regexp.MustCompile(`release\s+(\S+)(?:\s+\(([^)]*)\))?`)

// releaseFromMarker builds a Release from a legacy marker file.
func releaseFromMarker(marker legacyMarker, content string) Release {
	release := Release{
		ID:     marker.id,
		Source: marker.path,
	}

	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSpace(firstLine)

	if marker.id == "debian" {
		// debian_version holds just the version ("12.5") or a
		// codename pair on testing/unstable ("trixie/sid").
		if codename, _, found := strings.Cut(firstLine, "/"); found {
			release.Codename = codename
		} else {
			release.VersionID = firstLine
		}
		release.Name = "Debian GNU/Linux"
	} else if matches := releaseLinePattern.FindStringSubmatch(firstLine); matches != nil {
		release.VersionID = matches[1]
		release.Codename = matches[2]
		if index := strings.Index(firstLine, " release"); index > 0 {
			release.Name = firstLine[:index]
		}
	}

	release.PrettyName = firstLine
	release.Family = Classify(release.ID, nil)
	return release
}
