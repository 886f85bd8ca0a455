// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package distro

// Family is a coarse distribution classification by packaging
// ecosystem.
type Family string

const (
	// FamilyUnknown is any distribution not in a recognized family,
	// including non-Linux hosts.
	FamilyUnknown Family = ""

	// FamilyRedHat covers Red Hat Enterprise Linux, Fedora, and their
	// rebuilds (rpm/dnf hosts).
	FamilyRedHat Family = "redhat"

	// FamilyDebian covers Debian and its derivatives (dpkg/apt hosts).
	FamilyDebian Family = "debian"
)

// String returns the family name, or "unknown" for FamilyUnknown.
func (f Family) String() string {
	if f == FamilyUnknown {
		return "unknown"
	}
	return string(f)
}

// ParseFamily converts a family name as printed by String back into a
// Family. Returns false for names that are not a recognized family.
func ParseFamily(name string) (Family, bool) {
	switch name {
	case "redhat", "fedora", "rhel":
		return FamilyRedHat, true
	case "debian":
		return FamilyDebian, true
	case "unknown", "":
		return FamilyUnknown, true
	}
	return FamilyUnknown, false
}

// Release describes the detected distribution.
type Release struct {
	// ID is the lower-case distribution identifier ("fedora", "ubuntu").
	// For hosts identified by a legacy marker file this is the marker's
	// distribution name ("redhat", "fedora", "debian").
	ID string `json:"id"`

	// IDLike lists the distributions this one is derived from, closest
	// first (os-release ID_LIKE).
	IDLike []string `json:"id_like,omitempty"`

	Name       string `json:"name,omitempty"`
	PrettyName string `json:"pretty_name,omitempty"`
	VersionID  string `json:"version_id,omitempty"`
	Codename   string `json:"codename,omitempty"`

	// Source is the file the facts were read from, relative to the
	// detection root. Empty if nothing was found.
	Source string `json:"source,omitempty"`

	Family Family `json:"family"`
}

// IsRedHatFamily reports whether the release belongs to the Red Hat
// family.
func (r Release) IsRedHatFamily() bool {
	return r.Family == FamilyRedHat
}

// IsDebianFamily reports whether the release belongs to the Debian
// family.
func (r Release) IsDebianFamily() bool {
	return r.Family == FamilyDebian
}

// Known reports whether any release file was found.
func (r Release) Known() bool {
	return r.Source != ""
}

var familyByID = map[string]Family{
	"redhat":     FamilyRedHat,
	"rhel":       FamilyRedHat,
	"fedora":     FamilyRedHat,
	"centos":     FamilyRedHat,
	"rocky":      FamilyRedHat,
	"almalinux":  FamilyRedHat,
	"ol":         FamilyRedHat,
	"amzn":       FamilyRedHat,
	"scientific": FamilyRedHat,

	"debian":    FamilyDebian,
	"ubuntu":    FamilyDebian,
	"raspbian":  FamilyDebian,
	"linuxmint": FamilyDebian,
	"pop":       FamilyDebian,
	"kali":      FamilyDebian,
	"devuan":    FamilyDebian,
}

// Classify maps a distribution ID and its ID_LIKE ancestry to a
// family. The ID itself takes precedence; ID_LIKE entries are tried in
// order after that. Matching is case-insensitive.
func Classify(id string, idLike []string) Family {
	if family, ok := familyByID[normalizeID(id)]; ok {
		return family
	}
	for _, like := range idLike {
		if family, ok := familyByID[normalizeID(like)]; ok {
			return family
		}
	}
	return FamilyUnknown
}
