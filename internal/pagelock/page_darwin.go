// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build darwin

package pagelock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// darwinPage mmaps and mlocks a page. Darwin has no MADV_WIPEONFORK
// equivalent, so this platform never reports InheritsZero; state.go must
// fall back to the pid/forkcount comparison described in spec §4.5's
// second fork-detection strategy.
type darwinPage struct {
	b []byte
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

	return &darwinPage{b: b}, nil
}

func (p *darwinPage) Bytes() []byte { return p.b }

func (p *darwinPage) InheritsZero() bool { return false }

func (p *darwinPage) Close() error {
	secureZero(p.b)
	if err := unix.Munlock(p.b); err != nil {
		return fmt.Errorf("pagelock: munlock: %w", err)
	}
	return unix.Munmap(p.b)
}
