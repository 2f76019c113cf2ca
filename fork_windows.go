// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package csprng

import "os"

// currentPID returns os.Getpid on Windows, but nothing consults it: there
// is no fork(), every new process already starts from CreateProcess with its
// own fresh address space, and pagelock's Windows allocator reports
// InheritsZero unconditionally true, so needReinit never reaches the pid
// comparison this feeds. Kept for symmetry with fork_unix.go, matching
// aes-ctr-drbg's drbg_fork_windows.go stub.
func currentPID() int { return os.Getpid() }
