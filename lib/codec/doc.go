// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides hostenv's CBOR encoding configuration.
//
// hostenv emits JSON for humans and scripts (CLI --json output) and
// CBOR where byte-exact reproducibility matters: the fingerprint
// digest is computed over the CBOR encoding of host facts, and
// "hostenv probe --cbor" writes the same encoding for tooling that
// caches probe results.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always produces identical bytes, which is what
// makes the fingerprint stable across runs and machines.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types carry `json` tags only. fxamacker/cbor reads `json` tags when
// `cbor` tags are absent, so one tag controls field naming and
// omitempty for both formats.
package codec
