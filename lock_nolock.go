// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build csprng_nolock

package csprng

// mutex is a no-op stand-in for the default sync.Mutex-backed lock (see
// lock.go), selected by building with -tags csprng_nolock. This is safe
// only in single-threaded embedded use where the caller guarantees no
// concurrent access to a State; it exists to satisfy spec §4.6's "if
// locking is disabled at build time, all become no-ops" requirement.
type mutex struct{}

func (m *mutex) Lock() {}

func (m *mutex) Unlock() {}
