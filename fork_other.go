// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !unix && !windows

package csprng

import "os"

// currentPID falls back to os.Getpid on any target without a dedicated
// fork_unix.go/fork_windows.go implementation above.
func currentPID() int { return os.Getpid() }
