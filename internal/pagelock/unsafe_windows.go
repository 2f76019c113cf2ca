// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package pagelock

import "unsafe"

// unsafeSlice views the VirtualAlloc'd region at addr as a []byte of the
// given length, for the mmap-backed Page.Bytes() contract all platforms in
// this package share.
func unsafeSlice(addr uintptr, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}
