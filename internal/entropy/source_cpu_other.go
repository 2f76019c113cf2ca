// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !amd64

package entropy

// cpuSource reports unavailable on architectures without a recognized CPU
// RNG instruction wired up. arm64's RNDR is a candidate for a future
// per-arch file; until then this platform simply falls through to the
// syscall/device sources.
func cpuSource() Source {
	return Source{
		Name:  "cpu-rdrand",
		Group: GroupCPU,
		Flags: FlagWeak,
		Fn: func(out []byte) Result {
			return Result{Outcome: OutcomeUnavailable}
		},
	}
}
