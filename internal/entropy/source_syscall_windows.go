// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package entropy

import "golang.org/x/sys/windows"

// platformSyscallSources returns Windows's kernel RNG source, spec §4.4's
// "Kernel syscall C (Windows CryptGenRandom)". golang.org/x/sys/windows
// exposes the modern equivalent, RtlGenRandom (SystemFunction036), which
// crypto/rand itself uses internally on this platform.
func platformSyscallSources() []Source {
	return []Source{
		{
			Name:  "syscall-rtlgenrandom",
			Group: GroupSyscall,
			Fn:    rtlGenRandomFn,
		},
	}
}

// platformDeviceSources is empty on Windows: there is no /dev/urandom
// equivalent device node, so DEVICE-group coverage comes solely from the
// syscall source above.
func platformDeviceSources() []Source { return nil }

func rtlGenRandomFn(out []byte) Result {
	if err := windows.RtlGenRandom(out[:chunkLen]); err != nil {
		return Result{Outcome: OutcomeFailed}
	}
	return Result{Outcome: OutcomeFull, N: chunkLen}
}
