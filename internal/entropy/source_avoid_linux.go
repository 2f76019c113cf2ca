// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build linux

package entropy

import "os"

// platformAvoidSources returns Linux's AVOID-flagged fallback: three reads
// of /proc/sys/kernel/random/uuid hashed down to 32 bytes, per spec §4.4's
// DEVICE/AVOID entry. Skipped entirely once a strong source has already
// produced a full chunk, by the dispatcher's general AVOID rule.
func platformAvoidSources() []Source {
	return []Source{
		{
			Name:  "device-proc-uuid",
			Group: GroupDevice,
			Flags: FlagAvoid,
			Fn:    procUUIDFn,
		},
	}
}

func procUUIDFn(out []byte) Result {
	var gathered []byte
	for i := 0; i < 3; i++ {
		b, err := os.ReadFile("/proc/sys/kernel/random/uuid")
		if err != nil {
			return Result{Outcome: OutcomeFailed}
		}
		gathered = append(gathered, b...)
	}

	digest, err := blake2bSum32(gathered)
	if err != nil {
		return Result{Outcome: OutcomeFailed}
	}
	n := copy(out, digest)
	return classify(n)
}
