// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build amd64

package entropy

import "golang.org/x/sys/cpu"

// rdrand is implemented in source_cpu_amd64.s; it issues one RDRAND
// instruction and reports the carry flag (true if the CPU produced a
// value this attempt).
func rdrand() (val uint64, ok bool)

// maxRdrandRetries bounds the CPU-instruction source's retry loop, per
// spec §4.4's "up to 16 retries per 32-bit draw".
const maxRdrandRetries = 16

// cpuSource returns the CPU-instruction entropy source (RDRAND), flagged
// WEAK per spec §4.4's classification table: a hardware RNG instruction is
// accepted as a contributor but never alone upgrades entropy_status to
// "strong".
func cpuSource() Source {
	return Source{
		Name:  "cpu-rdrand",
		Group: GroupCPU,
		Flags: FlagWeak,
		Fn:    rdrandFn,
	}
}

func rdrandFn(out []byte) Result {
	if !cpu.X86.HasRDRAND {
		return Result{Outcome: OutcomeUnavailable}
	}

	n := 0
	for n+8 <= len(out) {
		var v uint64
		var ok bool
		for attempt := 0; attempt < maxRdrandRetries; attempt++ {
			v, ok = rdrand()
			if ok {
				break
			}
		}
		if !ok {
			break
		}
		for i := 0; i < 8; i++ {
			out[n+i] = byte(v >> (8 * i))
		}
		n += 8
	}

	switch {
	case n == 0:
		return Result{Outcome: OutcomeFailed}
	case n < chunkLen:
		return Result{Outcome: OutcomePartial, N: n}
	default:
		return Result{Outcome: OutcomeFull, N: n}
	}
}
