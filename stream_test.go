// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChacha20Blocks_Deterministic verifies that the same key+IV always
// produces the same keystream.
func TestChacha20Blocks_Deterministic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	var key [keyLen]byte
	for i := range key {
		key[i] = byte(i + 1)
	}

	out1 := make([]byte, 256)
	out2 := make([]byte, 256)
	must.NoError(chacha20Blocks(key[:], out1))
	must.NoError(chacha20Blocks(key[:], out2))

	is.True(bytes.Equal(out1, out2), "identical key+IV should produce identical keystream")
}

// TestChacha20Blocks_KeySensitivity verifies that flipping a single key
// bit changes the output.
func TestChacha20Blocks_KeySensitivity(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	var keyA, keyB [keyLen]byte
	for i := range keyA {
		keyA[i] = byte(i)
		keyB[i] = byte(i)
	}
	keyB[0] ^= 0x01

	outA := make([]byte, 64)
	outB := make([]byte, 64)
	must.NoError(chacha20Blocks(keyA[:], outA))
	must.NoError(chacha20Blocks(keyB[:], outB))

	is.False(bytes.Equal(outA, outB))
}

// TestChacha20Blocks_RejectsWrongKeyLength verifies the length guard.
func TestChacha20Blocks_RejectsWrongKeyLength(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	out := make([]byte, 64)
	is.Error(chacha20Blocks(make([]byte, keyLen-1), out))
}

// TestChacha20Blocks_RejectsNonBlockSizedOutput verifies the output length
// guard.
func TestChacha20Blocks_RejectsNonBlockSizedOutput(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := make([]byte, keyLen)
	is.Error(chacha20Blocks(key, make([]byte, 63)))
}
