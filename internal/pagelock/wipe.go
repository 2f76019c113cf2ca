// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package pagelock

import "runtime"

// secureZero overwrites b with zeros in a way the compiler cannot elide as
// a dead store. Close wipes the RNG state page with this instead of a plain
// loop, since a plain zero-fill of a slice nobody reads again is a classic
// dead-store-elimination target. Duplicated from the root package's
// wipe.go (rather than imported) to avoid a csprng <-> pagelock import
// cycle: this package is imported by csprng, not the other way around.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
