// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "fmt"

const (
	// bufLen is BUFLEN from spec §4.1: chosen so the whole RngState fits in
	// one 4096-byte page with slack for the surrounding OuterState fields.
	bufLen = 4032

	// rngMagic stamps a live RngState; cleared to zero by the OS on
	// page-inheritance-zero after fork, or explicitly on teardown.
	rngMagic uint32 = 0x52435350 // "RCSP"

	// digestLen is DIGEST_LEN from spec §4.2/§4.7: the BLAKE2b output size.
	digestLen = 64

	// directCipherThreshold is the buffer's deliverable capacity
	// (BUFLEN-KEYLEN). RandomBuf sends requests larger than this to
	// drawDirect's direct-cipher path described in spec §4.3 rather than
	// looping draw's buffer refill machinery.
	directCipherThreshold = bufLen - keyLen
)

// rngState is the generator proper (spec §4.1's RngState): a page-sized
// keystream buffer plus the bookkeeping needed to deliver bytes with
// forward secrecy. It is always reached through a *page (see
// internal/pagelock), never allocated with new/make directly, so that its
// backing memory is mlock'd and protected across fork.
type rngState struct {
	magic uint32
	idx   uint32
	count uint32
	buf   [bufLen]byte
}

// resetRngState reinitializes r in place to the zero/unseeded shape; used
// right after allocating a fresh page, before the first setkey.
func resetRngState(r *rngState) {
	r.magic = 0
	r.idx = 0
	r.count = 0
	secureZero(r.buf[:])
}

// setkey fills the entire buffer by running ChaCha20 with key (a keyLen-byte
// key+IV) at counter 0, per spec §4.3's setkey contract. It resets idx and
// count but leaves magic untouched — the caller stamps magic once, at
// allocation.
func (r *rngState) setkey(key []byte) error {
	if len(key) != keyLen {
		return fmt.Errorf("csprng: setkey: key must be %d bytes, got %d", keyLen, len(key))
	}
	if err := chacha20Blocks(key, r.buf[:]); err != nil {
		return err
	}
	r.idx = 0
	r.count = 0
	return nil
}

// refill advances to the next block of keystream: it rekeys using the
// trailing KEYLEN bytes of the current buffer (the "next refill's key"
// reserved by the previous setkey/refill), then increments count.
func (r *rngState) refill() error {
	var nextKey [keyLen]byte
	copy(nextKey[:], r.buf[bufLen-keyLen:])
	if err := r.setkey(nextKey[:]); err != nil {
		secureZero(nextKey[:])
		return err
	}
	secureZero(nextKey[:])
	r.count++
	return nil
}

// draw copies n bytes of fresh keystream into out[:n], enforcing spec
// §4.3's forward-secrecy invariant: buf[0..idx] is zero after every draw.
// A request that does not fit in what remains of the buffer drains it and
// then refills as many times as needed, copying at most BUFLEN-KEYLEN bytes
// per refill. RandomBuf sends requests larger than directCipherThreshold to
// drawDirect instead.
func (r *rngState) draw(out []byte) error {
	n := len(out)
	if n == 0 {
		return nil
	}

	remaining := directCipherThreshold - r.idx

	// Fast path: the whole request is satisfied from the current buffer.
	if uint32(n) <= remaining {
		copy(out, r.buf[r.idx:r.idx+uint32(n)])
		secureZero(r.buf[r.idx : r.idx+uint32(n)])
		r.idx += uint32(n)
		return nil
	}

	// Slow path: drain what remains, then refill and copy full or partial
	// buffers until the request is satisfied.
	off := 0
	if remaining > 0 {
		copy(out[:remaining], r.buf[r.idx:directCipherThreshold])
		secureZero(r.buf[r.idx:directCipherThreshold])
		off = int(remaining)
		r.idx = directCipherThreshold
	}

	for off < n {
		if err := r.refill(); err != nil {
			return err
		}
		chunk := n - off
		if uint32(chunk) > directCipherThreshold {
			chunk = int(directCipherThreshold)
		}
		copy(out[off:off+chunk], r.buf[:chunk])
		secureZero(r.buf[:chunk])
		r.idx = uint32(chunk)
		off += chunk
	}
	return nil
}

// drawDirect implements spec §4.3's direct-cipher path for requests larger
// than the buffer can hold in one piece: it generates a fresh key from the
// current stream (consuming exactly keyLen bytes through the normal draw
// path, so the buffer's own forward-secrecy invariant is preserved), runs
// ChaCha20 directly into the caller's buffer using that key, and wipes the
// scratch key afterward. out may be any length; it need not be a multiple
// of 64 bytes, since chacha20Blocks is invoked on a scratch region sized up
// to the next block boundary and then truncated-copied.
func (r *rngState) drawDirect(out []byte) error {
	var key [keyLen]byte
	defer secureZero(key[:])
	if err := r.draw(key[:]); err != nil {
		return err
	}

	n := len(out)
	padded := n
	if rem := padded % 64; rem != 0 {
		padded += 64 - rem
	}
	if padded == n {
		return chacha20Blocks(key[:], out)
	}

	scratch := make([]byte, padded)
	defer secureZero(scratch)
	if err := chacha20Blocks(key[:], scratch); err != nil {
		return err
	}
	copy(out, scratch[:n])
	return nil
}
