// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sync"
)

var (
	selftestOnce sync.Once
	selftestErr  error
)

// RunSelfTests runs the package's power-on self-test exactly once per
// process and returns its cached result on every subsequent call. It
// verifies the core primitives' structural invariants, plus a published
// known-answer vector for the ChaCha20 block function, before any State is
// trusted to seed from them.
//
// BLAKE2b's personalization prefix (see hash.go) has no published reference
// vector of its own, so that half of the self-test checks determinism,
// sensitivity to every input, and non-degenerate (non-zero) output instead —
// the same role a KAT plays, adapted to a construction with no published
// vector to check against.
func RunSelfTests() error {
	selftestOnce.Do(func() {
		selftestErr = runSelfTests()
	})
	return selftestErr
}

func runSelfTests() error {
	if err := selftestChacha20(); err != nil {
		return fmt.Errorf("csprng: selftest: chacha20: %w", err)
	}
	if err := selftestBlake2(); err != nil {
		return fmt.Errorf("csprng: selftest: blake2: %w", err)
	}
	return nil
}

// chacha20KATZeroBlock is the well-known ChaCha20 block-function output for
// an all-zero 32-byte key, all-zero nonce, and block counter 0 (RFC 8439
// §2.3.2's test vector #1). It applies unchanged to this package's word
// layout (words 12-13 counter, words 14-15 IV, vs. the IETF layout's word
// 12 counter / words 13-15 nonce): every one of those words is zero either
// way, so the two layouts compute identical output for this input — the
// one published vector in spec §8's "P2... published ChaCha20 test
// vectors" that is layout-independent and so checkable without executing
// the original C implementation.
const chacha20KATZeroBlock = "76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc" +
	"7da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee65" +
	"86"

func selftestChacha20() error {
	var zeroKeyIV [keyLen]byte
	zeroOut := make([]byte, chacha20BlockLen)
	if err := chacha20Blocks(zeroKeyIV[:], zeroOut); err != nil {
		return err
	}
	want, err := hex.DecodeString(chacha20KATZeroBlock)
	if err != nil {
		return fmt.Errorf("chacha20 KAT: bad embedded hex: %w", err)
	}
	if !bytes.Equal(zeroOut, want) {
		return fmt.Errorf("chacha20Blocks failed known-answer test for the all-zero key/IV/counter-0 block")
	}

	var key [keyLen]byte
	for i := range key {
		key[i] = byte(i)
	}

	out1 := make([]byte, 128)
	out2 := make([]byte, 128)
	if err := chacha20Blocks(key[:], out1); err != nil {
		return err
	}
	if err := chacha20Blocks(key[:], out2); err != nil {
		return err
	}
	if !bytes.Equal(out1, out2) {
		return fmt.Errorf("chacha20Blocks not deterministic for identical keys")
	}
	if bytes.Equal(out1, make([]byte, len(out1))) {
		return fmt.Errorf("chacha20Blocks produced all-zero keystream")
	}

	key[0] ^= 0x01
	out3 := make([]byte, 128)
	if err := chacha20Blocks(key[:], out3); err != nil {
		return err
	}
	if bytes.Equal(out1, out3) {
		return fmt.Errorf("chacha20Blocks insensitive to key change")
	}

	// Spec §8 scenario 5's worked example: the exact key/IV libottery-lite's
	// own test suite dumps output for (test/test_chacha.c), checked here for
	// determinism and non-degeneracy since that suite only dumps hex rather
	// than asserting a fixed expected value to check against.
	var scenario5KeyIV [keyLen]byte
	copy(scenario5KeyIV[:chacha20KeySize], []byte("helloworld!helloworld!helloworld"))
	copy(scenario5KeyIV[chacha20KeySize:], []byte("!hellowo"))
	scenario5a := make([]byte, chacha20BlockLen)
	scenario5b := make([]byte, chacha20BlockLen)
	if err := chacha20Blocks(scenario5KeyIV[:], scenario5a); err != nil {
		return err
	}
	if err := chacha20Blocks(scenario5KeyIV[:], scenario5b); err != nil {
		return err
	}
	if !bytes.Equal(scenario5a, scenario5b) {
		return fmt.Errorf("chacha20Blocks not deterministic for scenario 5's key/IV")
	}

	return nil
}

func selftestBlake2() error {
	input := []byte("hardened-rand self-test input")

	d1, err := blake2Compress(input, nil)
	if err != nil {
		return err
	}
	d2, err := blake2Compress(input, nil)
	if err != nil {
		return err
	}
	if !bytes.Equal(d1, d2) {
		return fmt.Errorf("blake2Compress not deterministic")
	}
	if len(d1) != digestLen {
		return fmt.Errorf("blake2Compress returned %d bytes, want %d", len(d1), digestLen)
	}
	if bytes.Equal(d1, make([]byte, digestLen)) {
		return fmt.Errorf("blake2Compress produced all-zero digest")
	}

	d3, err := blake2Compress(input, []byte("tenant-a"))
	if err != nil {
		return err
	}
	if bytes.Equal(d1, d3) {
		return fmt.Errorf("blake2Compress insensitive to personalization")
	}

	return nil
}
