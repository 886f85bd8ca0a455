// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/hostenv/lib/codec"
	"github.com/bureau-foundation/hostenv/lib/distro"
	"github.com/bureau-foundation/hostenv/lib/hwinfo"
)

// Digest is a 32-byte BLAKE3 keyed digest.
type Digest [32]byte

// domainKey is the BLAKE3 key for host fingerprints: the ASCII string
// "hostenv.fingerprint" zero-padded to 32 bytes. Changing it
// invalidates every fingerprint ever issued.
var domainKey = [32]byte{
	'h', 'o', 's', 't', 'e', 'n', 'v', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r',
	'i', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Facts are the fingerprinted host properties.
type Facts struct {
	Family        distro.Family `json:"family"`
	ID            string        `json:"id"`
	VersionID     string        `json:"version_id"`
	KernelRelease string        `json:"kernel_release"`
	Machine       string        `json:"machine"`
}

// FromHost selects the fingerprinted fields from a host probe.
func FromHost(info hwinfo.HostInfo) Facts {
	return Facts{
		Family:        info.Distro.Family,
		ID:            info.Distro.ID,
		VersionID:     info.Distro.VersionID,
		KernelRelease: info.KernelRelease,
		Machine:       info.Machine,
	}
}

// Compute returns the digest of facts.
func Compute(facts Facts) (Digest, error) {
	encoded, err := codec.Marshal(facts)
	if err != nil {
		return Digest{}, fmt.Errorf("encoding host facts: %w", err)
	}

	hasher, err := blake3.NewKeyed(domainKey[:])
	if err != nil {
		return Digest{}, fmt.Errorf("initializing BLAKE3 keyed hash: %w", err)
	}
	hasher.Write(encoded)

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// String returns the hex encoding of the digest. This is the canonical
// form printed by "hostenv fingerprint" and used in cache keys.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters, enough to tell hosts apart
// in logs.
func (d Digest) Short() string {
	return d.String()[:12]
}

// Parse parses a hex-encoded digest. Returns an error if the string is
// not a valid 64-character hex encoding of 32 bytes.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
