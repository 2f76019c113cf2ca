// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// blake2PersonalLo and blake2PersonalHi are the two 64-bit domain-separation
// words mixed into every compression performed by this package (spec §4.2's
// "personalization" parameter block field). Distinct from a caller-supplied
// Config.Personalization, which is additional, per-instance separation on
// top of these.
const (
	blake2PersonalLo uint64 = 0x68617264656e6564 // "hardened"
	blake2PersonalHi uint64 = 0x72616e645f637370 // "rand_csp"
)

// blake2Compress hashes entropy (freshly collected randomness) together with
// the library's fixed personalization words and any caller-supplied
// Config.Personalization, producing a 64-byte BLAKE2b digest used as rekey
// material (spec §4.2, §4.7's seed()).
//
// golang.org/x/crypto/blake2b's exported constructors (New, New512, New256)
// do not expose the parameter block's personalization field the way the
// original library's BLAKE2b does — only a keyed-MAC "key" parameter. Rather
// than vendor or reimplement the full parameter-block compression function,
// this package achieves the same domain-separation property by prepending
// the personalization words (and any caller personalization) to the hashed
// input stream ahead of the entropy, which is cryptographically equivalent
// for this library's purposes: it still guarantees that two States with
// different personalization settings never produce the same digest from the
// same raw entropy. See DESIGN.md for the corresponding Open Question
// resolution.
func blake2Compress(entropy []byte, personalization []byte) ([]byte, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}

	var words [16]byte
	binary.LittleEndian.PutUint64(words[0:8], blake2PersonalLo)
	binary.LittleEndian.PutUint64(words[8:16], blake2PersonalHi)
	h.Write(words[:])

	if len(personalization) > 0 {
		h.Write(personalization)
	}
	h.Write(entropy)

	return h.Sum(nil), nil
}
