// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint derives a stable digest from the host facts that
// decide test behavior.
//
// CI systems key caches (built fixtures, downloaded packages, golden
// outputs) on the platform they were produced on. Keying on the exact
// hostname or kernel build is too fine; keying on nothing lets a Debian
// cache leak into a Fedora run. The fingerprint covers the
// distribution family, ID, and version plus kernel release and machine
// architecture.
//
// [Facts] are encoded with deterministic CBOR (lib/codec) and hashed
// with BLAKE3 in keyed mode under a fixed domain key, so equal facts
// produce equal digests on every machine, and the digest cannot collide
// with BLAKE3 digests computed for other purposes over the same bytes.
//
// The API surface:
//
//   - [FromHost] -- selects the fingerprinted fields from a probe
//   - [Compute] -- hashes Facts into a [Digest]
//   - [Digest.String] and [Parse] -- canonical hex form and its inverse
package fingerprint
