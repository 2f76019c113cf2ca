// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build linux

package entropy

import "golang.org/x/sys/unix"

// platformSyscallSources returns Linux's kernel-syscall entropy source:
// getrandom(2), spec §4.4's "Kernel syscall A".
func platformSyscallSources() []Source {
	return []Source{
		{
			Name:  "syscall-getrandom",
			Group: GroupSyscall,
			Fn:    getrandomFn,
		},
	}
}

func getrandomFn(out []byte) Result {
	n, err := unix.Getrandom(out, 0)
	if err != nil {
		return Result{Outcome: OutcomeFailed}
	}
	return classify(n)
}
