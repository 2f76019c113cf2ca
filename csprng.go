// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"encoding/binary"
	"sync"
	"time"
)

// global is the package-level singleton generator, lazily constructed on
// first use by global() so that importing this package never pays
// initialization cost (or risks a panic) unless the package-level API is
// actually called. Isolated callers should prefer New instead.
var (
	globalOnce  sync.Once
	globalState *State
	globalErr   error
)

func global() (*State, error) {
	globalOnce.Do(func() {
		globalState, globalErr = New()
	})
	return globalState, globalErr
}

// Random returns n cryptographically secure pseudo-random bytes from the
// package-level singleton generator.
func Random(n int) ([]byte, error) {
	st, err := global()
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if err := RandomBuf(st, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Random64 returns one 64-bit value from the package-level singleton
// generator.
func Random64() (uint64, error) {
	st, err := global()
	if err != nil {
		return 0, err
	}
	var b [8]byte
	if err := RandomBuf(st, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// AddRandom mixes caller-supplied bytes into the package-level singleton
// generator, per spec §4.7's addrandom. It does not change the reported
// entropy status.
func AddRandom(inp []byte) error {
	st, err := global()
	if err != nil {
		return err
	}
	return st.addRandom(inp)
}

// NeedReseed forces the package-level singleton generator to reinitialize
// on its next draw.
func NeedReseed() {
	st, err := global()
	if err != nil {
		return
	}
	st.needReseed()
}

// GlobalStatus reports the package-level singleton generator's entropy
// status.
func GlobalStatus() (Status, error) {
	st, err := global()
	if err != nil {
		return 0, err
	}
	s, err := st.status()
	return fromEntropyStatus(s), err
}

// SetEGDAddress configures an Entropy Gathering Daemon endpoint for the
// package-level singleton generator.
func SetEGDAddress(network, address string, timeout time.Duration) error {
	st, err := global()
	if err != nil {
		return err
	}
	st.setEGDAddress(network, address, timeout)
	return nil
}

// Random draws n bytes from st, matching spec §4.7's random/random_buf draw
// entry point: lock, reinit-if-needed, soft-reseed-if-due, draw, unlock.
func (st *State) Random(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := RandomBuf(st, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Random64 draws one 64-bit value from st.
func (st *State) Random64() (uint64, error) {
	var b [8]byte
	if err := RandomBuf(st, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// AddRandom mixes caller-supplied bytes into st.
func (st *State) AddRandom(inp []byte) error {
	return st.addRandom(inp)
}

// NeedReseed forces st to reinitialize on its next draw.
func (st *State) NeedReseed() {
	st.needReseed()
}

// Status reports st's current entropy status.
func (st *State) Status() (Status, error) {
	s, err := st.status()
	return fromEntropyStatus(s), err
}

// SetEGDAddress configures an Entropy Gathering Daemon endpoint for st.
func (st *State) SetEGDAddress(network, address string, timeout time.Duration) {
	st.setEGDAddress(network, address, timeout)
}

// Close tears down st, wiping and releasing its locked page. st must not
// be used again afterward.
func (st *State) Close() error {
	return st.teardown()
}

// RandomBuf fills out with cryptographically secure pseudo-random bytes
// drawn from st, implementing spec §4.3/§4.7's draw entry points. Requests
// larger than the buffer's deliverable capacity use the direct-cipher
// path described in spec §4.3 instead of looping the refill machinery.
func RandomBuf(st *State, out []byte) error {
	if len(out) == 0 {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.ensureLive(); err != nil {
		return err
	}

	st.maybeSoftReseed()

	if uint32(len(out)) > directCipherThreshold {
		return st.rng.drawDirect(out)
	}
	return st.rng.draw(out)
}
