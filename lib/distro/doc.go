// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package distro identifies the host's Linux distribution and maps it
// to a packaging family.
//
// Test suites branch on the family rather than the exact distribution:
// a test that exercises rpm behavior runs on RHEL, CentOS, Rocky, and
// Fedora alike, and one that exercises dpkg runs on Debian and its
// derivatives. Two families are recognized ([FamilyRedHat] and
// [FamilyDebian]); everything else is [FamilyUnknown].
//
// # Sources
//
// Facts come from the freedesktop os-release file (/etc/os-release,
// falling back to /usr/lib/os-release). Hosts without os-release are
// identified by the legacy marker files /etc/redhat-release,
// /etc/fedora-release, and /etc/debian_version, checked in that order.
//
// # Error behavior
//
// [Detect] and [DetectFrom] never return an error. A missing or
// unreadable file yields a [Release] with [FamilyUnknown], so both
// family flags are false on an unrecognized or minimal host.
//
// [DetectFrom] accepts a filesystem root so tests and chroot tooling
// can point it at a synthetic tree.
//
// This package depends on no other hostenv packages.
package distro
