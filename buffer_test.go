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

func freshRngState(t *testing.T) *rngState {
	t.Helper()
	r := &rngState{}
	key := make([]byte, keyLen)
	for i := range key {
		key[i] = byte(i + 3)
	}
	require.NoError(t, r.setkey(key))
	r.magic = rngMagic
	return r
}

// TestRngState_SetkeyResetsCursor verifies setkey zeroes idx and count.
func TestRngState_SetkeyResetsCursor(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := freshRngState(t)
	is.EqualValues(0, r.idx)
	is.EqualValues(0, r.count)
}

// TestRngState_Draw_ForwardSecrecy is the P1 property: after any sequence
// of draws, buf[0..idx] is all zero.
func TestRngState_Draw_ForwardSecrecy(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	r := freshRngState(t)
	sizes := []int{1, 4, 100, 4000, 17, 2}
	for _, n := range sizes {
		out := make([]byte, n)
		must.NoError(r.draw(out))
		is.True(bytes.Equal(r.buf[:r.idx], make([]byte, r.idx)), "consumed prefix must be zero")
	}
}

// TestRngState_Draw_FastPath verifies a small request that fits the
// current buffer advances idx by exactly n and doesn't trigger a refill.
func TestRngState_Draw_FastPath(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	r := freshRngState(t)
	out := make([]byte, 16)
	must.NoError(r.draw(out))

	is.EqualValues(16, r.idx)
	is.EqualValues(0, r.count, "a draw within one buffer should not refill")
}

// TestRngState_Draw_SlowPathRefills verifies a request larger than one
// buffer's deliverable region causes at least one refill (count > 0).
func TestRngState_Draw_SlowPathRefills(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	r := freshRngState(t)
	out := make([]byte, directCipherThreshold+100)
	must.NoError(r.draw(out))

	is.Greater(r.count, uint32(0))
}

// TestRngState_Draw_ServesOversizedRequest verifies a request one byte
// beyond the buffer's deliverable capacity is served by the slow path: the
// fresh buffer is drained, refilled once, and the last byte is taken from
// the new buffer.
func TestRngState_Draw_ServesOversizedRequest(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := freshRngState(t)
	is.NoError(r.draw(make([]byte, directCipherThreshold+1)))
	is.EqualValues(1, r.idx)
	is.EqualValues(1, r.count)
}

// TestRngState_DrawDirect_ProducesRequestedLength verifies drawDirect
// satisfies requests of arbitrary, non-block-aligned length.
func TestRngState_DrawDirect_ProducesRequestedLength(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	r := freshRngState(t)
	out := make([]byte, directCipherThreshold*3+7)
	must.NoError(r.drawDirect(out))

	is.False(bytes.Equal(out, make([]byte, len(out))), "direct-cipher draw should not be all zero")
}

// TestRngState_DrawDirect_NotRepeating verifies two consecutive direct
// draws differ (each consumes a fresh key from the buffer).
func TestRngState_DrawDirect_NotRepeating(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	r := freshRngState(t)
	out1 := make([]byte, directCipherThreshold+10)
	out2 := make([]byte, directCipherThreshold+10)
	must.NoError(r.drawDirect(out1))
	must.NoError(r.drawDirect(out2))

	is.False(bytes.Equal(out1, out2))
}

// TestResetRngState_WipesBuffer is the P10 property: after teardown-style
// reset, the RngState memory region is zero.
func TestResetRngState_WipesBuffer(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := freshRngState(t)
	_ = r.draw(make([]byte, 16))
	resetRngState(r)

	is.EqualValues(0, r.magic)
	is.EqualValues(0, r.idx)
	is.EqualValues(0, r.count)
	is.True(bytes.Equal(r.buf[:], make([]byte, bufLen)))
}
