// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !csprng_nolock

package csprng

import "sync"

// mutex abstracts the critical-section primitive guarding a State's
// OuterState and RngState, per spec §4.6. The default build uses a plain
// sync.Mutex; building with the "csprng_nolock" tag swaps in a no-op
// variant (see lock_nolock.go) for single-threaded, lock-free embedded use.
//
// Per spec §5, the lock is never held across the entropy dispatcher's
// (potentially blocking) collection during a soft reseed: callers must
// release it before invoking the dispatcher and reacquire it before
// committing the new key.
type mutex struct {
	mu sync.Mutex
}

func (m *mutex) Lock() { m.mu.Lock() }

func (m *mutex) Unlock() { m.mu.Unlock() }
