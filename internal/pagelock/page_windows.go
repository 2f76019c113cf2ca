// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package pagelock

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// windowsPage allocates a page with VirtualAlloc and pins it with
// VirtualLock. Windows has no fork(); process creation always execs a new
// binary image, so the page-inheritance fork-detection strategy in spec
// §4.5 is moot here and InheritsZero unconditionally reports true (there is
// never a forked child to observe a stale page).
type windowsPage struct {
	addr uintptr
	b    []byte
}

// New allocates and locks a fresh page.
func New() (Page, error) {
	addr, err := windows.VirtualAlloc(0, Size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("pagelock: VirtualAlloc: %w", err)
	}

	b := unsafeSlice(addr, Size)

	if err := windows.VirtualLock(addr, Size); err != nil {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
		return nil, fmt.Errorf("pagelock: VirtualLock: %w", err)
	}

	return &windowsPage{addr: addr, b: b}, nil
}

func (p *windowsPage) Bytes() []byte { return p.b }

func (p *windowsPage) InheritsZero() bool { return true }

func (p *windowsPage) Close() error {
	secureZero(p.b)
	if err := windows.VirtualUnlock(p.addr, Size); err != nil {
		return fmt.Errorf("pagelock: VirtualUnlock: %w", err)
	}
	return windows.VirtualFree(p.addr, 0, windows.MEM_RELEASE)
}
