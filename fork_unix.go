// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build unix

package csprng

import "os"

// currentPID returns the calling process's pid, used by needReinit's
// pid-comparison fallback on platforms where pagelock.Page.InheritsZero is
// false (Darwin, or Linux kernels too old for MADV_WIPEONFORK). Grounded on
// the vendored aes-ctr-drbg's drbg_fork.go, which does the same getpid()
// comparison to detect a fork() the process didn't ask for.
func currentPID() int { return os.Getpid() }
