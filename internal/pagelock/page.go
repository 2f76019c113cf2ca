// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package pagelock allocates the single page of memory backing a live
// RngState, per spec §4.5: mmap'd, mlock'd so it is never swapped, and
// (where the OS supports it) marked so that a fork()'d child sees the page
// zeroed (page-inheritance-zero).
package pagelock

// Size is the allocation size for a single RngState page: one page on every
// platform this package targets.
const Size = 4096

// Page is a locked, fork-protected block of memory. Bytes returns the raw
// backing slice for an unsafe.Pointer cast onto *rngState; Close wipes and
// releases it.
//
// InheritsZero reports whether the platform backing this Page guarantees
// that a forked child observes the page already zeroed (Linux's
// MADV_WIPEONFORK), which lets the lifecycle check in state.go rely solely
// on the magic word rather than also comparing pid/forkcount.
type Page interface {
	Bytes() []byte
	InheritsZero() bool
	Close() error
}
