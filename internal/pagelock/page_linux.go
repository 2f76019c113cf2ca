// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build linux

package pagelock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// linuxPage mmaps an anonymous, mlock'd page and marks it MADV_WIPEONFORK
// so a forked child sees the page zeroed instead of inheriting the parent's
// live generator state (spec §4.5's "page-inheritance" fork-detection
// strategy).
type linuxPage struct {
	b     []byte
	wiped bool
}

// New allocates and locks a fresh page.
func New() (Page, error) {
	b, err := unix.Mmap(-1, 0, Size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("pagelock: mmap: %w", err)
	}

	if err := unix.Mlock(b); err != nil {
		_ = unix.Munmap(b)
		return nil, fmt.Errorf("pagelock: mlock: %w", err)
	}

	// MADV_WIPEONFORK (Linux 4.14+) zeroes this mapping in a fork()'d
	// child. It is a best-effort hardening measure: on older kernels the
	// call fails and the page is simply inherited as-is, falling back to
	// the pid/forkcount check in state.go.
	wiped := unix.Madvise(b, unix.MADV_WIPEONFORK) == nil

	return &linuxPage{b: b, wiped: wiped}, nil
}

func (p *linuxPage) Bytes() []byte { return p.b }

func (p *linuxPage) InheritsZero() bool { return p.wiped }

func (p *linuxPage) Close() error {
	secureZero(p.b)
	if err := unix.Munlock(p.b); err != nil {
		return fmt.Errorf("pagelock: munlock: %w", err)
	}
	return unix.Munmap(p.b)
}
