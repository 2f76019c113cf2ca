// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build (darwin || freebsd || netbsd || openbsd) && !linux

package entropy

import "golang.org/x/sys/unix"

// platformSyscallSources returns the BSD-family kernel-syscall source:
// getentropy(2), spec §4.4's "Kernel syscall B".
func platformSyscallSources() []Source {
	return []Source{
		{
			Name:  "syscall-getentropy",
			Group: GroupSyscall,
			Fn:    getentropyFn,
		},
	}
}

func getentropyFn(out []byte) Result {
	// getentropy(2) fills the whole buffer or fails outright; it has no
	// partial-read mode, unlike getrandom(2).
	if err := unix.Getentropy(out[:chunkLen]); err != nil {
		return Result{Outcome: OutcomeFailed}
	}
	return Result{Outcome: OutcomeFull, N: chunkLen}
}
