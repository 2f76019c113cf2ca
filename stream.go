// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// keyLen is KEYLEN from spec §3: 32 bytes of ChaCha20 key followed by an
// 8-byte IV, the material consumed by one refill.
const keyLen = 40

const (
	chacha20KeySize  = 32
	chacha20IVSize   = keyLen - chacha20KeySize
	chacha20BlockLen = 64
	chacha20Rounds   = 20
)

// chacha20Constants are the fixed "expand 32-byte k" words that seed state
// words 0-3, per spec §4.1.
var chacha20Constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// chacha20Blocks fills out with the ChaCha20 keystream produced by keyIV (a
// keyLen-byte key+IV, see spec §4.1), starting at block counter 0. It is a
// pure function of keyIV: two invocations with the same keyIV produce
// identical output, and out must be a multiple of 64 bytes long (the
// caller-facing buffer/draw logic in buffer.go handles partial final blocks
// by over-generating into scratch).
//
// This implements spec §4.1's exact state layout rather than the IETF
// ChaCha20 variant golang.org/x/crypto/chacha20 exposes: word 0-3 the fixed
// constants, words 4-11 the 32-byte key, words 12-13 a 64-bit per-call block
// counter (restarting at 0 every call, exactly as the construction this is
// grounded on does — see otterylite_rng.h's chacha20_blocks, which resets
// its counter to the loop index on each invocation rather than threading it
// across calls), and words 14-15 the 8-byte IV. This keeps the primitive
// bit-exact to the spec's worked vectors (scenario 5, P2) instead of
// reusing a differently-laid-out library implementation.
func chacha20Blocks(keyIV []byte, out []byte) error {
	if len(keyIV) != keyLen {
		return fmt.Errorf("csprng: chacha20Blocks: keyIV must be %d bytes, got %d", keyLen, len(keyIV))
	}
	if len(out)%chacha20BlockLen != 0 {
		return fmt.Errorf("csprng: chacha20Blocks: out length %d is not a multiple of %d", len(out), chacha20BlockLen)
	}

	var x [16]uint32
	x[0], x[1], x[2], x[3] = chacha20Constants[0], chacha20Constants[1], chacha20Constants[2], chacha20Constants[3]
	for i := 0; i < 8; i++ {
		x[4+i] = binary.LittleEndian.Uint32(keyIV[i*4:])
	}
	x[14] = binary.LittleEndian.Uint32(keyIV[chacha20KeySize:])
	x[15] = binary.LittleEndian.Uint32(keyIV[chacha20KeySize+4:])

	nBlocks := len(out) / chacha20BlockLen
	for i := 0; i < nBlocks; i++ {
		x[12] = uint32(i)
		x[13] = uint32(uint64(i) >> 32)

		y := x
		for round := 0; round < chacha20Rounds/2; round++ {
			chachaQuarterRound(&y[0], &y[4], &y[8], &y[12])
			chachaQuarterRound(&y[1], &y[5], &y[9], &y[13])
			chachaQuarterRound(&y[2], &y[6], &y[10], &y[14])
			chachaQuarterRound(&y[3], &y[7], &y[11], &y[15])
			chachaQuarterRound(&y[0], &y[5], &y[10], &y[15])
			chachaQuarterRound(&y[1], &y[6], &y[11], &y[12])
			chachaQuarterRound(&y[2], &y[7], &y[8], &y[13])
			chachaQuarterRound(&y[3], &y[4], &y[9], &y[14])
		}

		block := out[i*chacha20BlockLen : (i+1)*chacha20BlockLen]
		for j := 0; j < 16; j++ {
			binary.LittleEndian.PutUint32(block[j*4:], y[j]+x[j])
		}
	}

	return nil
}

// chachaQuarterRound applies one ChaCha quarter round with the spec's
// {16,12,8,7} rotation schedule.
func chachaQuarterRound(a, b, c, d *uint32) {
	*a += *b
	*d = bits.RotateLeft32(*d^*a, 16)
	*c += *d
	*b = bits.RotateLeft32(*b^*c, 12)
	*a += *b
	*d = bits.RotateLeft32(*d^*a, 8)
	*c += *d
	*b = bits.RotateLeft32(*b^*c, 7)
}
