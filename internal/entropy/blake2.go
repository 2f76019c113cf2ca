// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import "golang.org/x/crypto/blake2b"

// blake2bSum32 compresses arbitrary-length input down to 32 bytes,
// shared by the AVOID-flagged proc-uuid source and the fallback kludge
// accumulator (spec §4.4), both of which need to condense a variable
// amount of absorbed material into a fixed-size chunk.
func blake2bSum32(data []byte) ([]byte, error) {
	h, err := blake2b.New(32, nil)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}
