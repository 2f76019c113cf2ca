// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "encoding/binary"

// RandomUniform returns a uniformly distributed uint32 in [0, upper) drawn
// from the package-level singleton generator, per spec §4.8's bit-exact
// algorithm: divisor = UMAX/upper, repeatedly draw a raw value, integer
// divide by divisor, retry while the result is still >= upper. upper == 0
// returns 0 (the final-revision behavior the spec follows).
func RandomUniform(upper uint32) (uint32, error) {
	st, err := global()
	if err != nil {
		return 0, err
	}
	return st.RandomUniform(upper)
}

// RandomUniform64 is the 64-bit counterpart of RandomUniform, drawn from
// the package-level singleton generator.
func RandomUniform64(upper uint64) (uint64, error) {
	st, err := global()
	if err != nil {
		return 0, err
	}
	return st.RandomUniform64(upper)
}

// RandomUniform returns a uniformly distributed uint32 in [0, upper) drawn
// from st.
func (st *State) RandomUniform(upper uint32) (uint32, error) {
	if upper == 0 {
		return 0, nil
	}

	const umax = ^uint32(0)
	divisor := umax / upper
	if divisor == 0 {
		// Unreachable for upper >= 1 (umax/upper is then at least 1);
		// kept only as a guard for the division below.
		divisor = 1
	}

	for {
		var b [4]byte
		if err := RandomBuf(st, b[:]); err != nil {
			return 0, err
		}
		raw := binary.LittleEndian.Uint32(b[:])
		result := raw / divisor
		if result < upper {
			return result, nil
		}
	}
}

// RandomUniform64 returns a uniformly distributed uint64 in [0, upper)
// drawn from st.
func (st *State) RandomUniform64(upper uint64) (uint64, error) {
	if upper == 0 {
		return 0, nil
	}

	const umax = ^uint64(0)
	divisor := umax / upper
	if divisor == 0 {
		divisor = 1
	}

	for {
		var b [8]byte
		if err := RandomBuf(st, b[:]); err != nil {
			return 0, err
		}
		raw := binary.LittleEndian.Uint64(b[:])
		result := raw / divisor
		if result < upper {
			return result, nil
		}
	}
}
