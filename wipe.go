// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "runtime"

// secureZero overwrites b with zeros in a way the compiler cannot elide as
// a dead store. Every secret buffer in this package (scratch entropy,
// scratch digests, consumed prefixes of the keystream buffer, the whole
// RNG state on teardown) is wiped with this instead of a plain loop or
// clear(), because a plain zero-fill of a slice that is never read again is
// a classic dead-store-elimination target.
//
// Go's standard library does not expose a guaranteed non-elidable zeroing
// primitive (see DESIGN.md: no suitable third-party zeroizer appears in the
// reference corpus), so this follows the teacher's own pattern of an
// explicit byte-by-byte loop, strengthened with runtime.KeepAlive so the
// compiler cannot prove the writes are dead even when b itself becomes
// unreachable immediately afterward.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// secureZeroUint32 zeros a uint32 in place, used for wiping the magic word
// of a torn-down state.
func secureZeroUint32(v *uint32) {
	*v = 0
	runtime.KeepAlive(v)
}
