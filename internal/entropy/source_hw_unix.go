// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build unix

package entropy

import "os"

// platformHWSources returns the HW-group hardware RNG device node, spec
// §4.4's "/dev/hwrandom" entry. Most systems don't expose this node, so
// the source reports Unavailable rather than Failed when absent.
func platformHWSources() []Source {
	return []Source{
		{
			Name:  "hw-device",
			Group: GroupHW,
			Fn:    hwRandomFn,
		},
	}
}

func hwRandomFn(out []byte) Result {
	f, err := os.Open("/dev/hwrandom")
	if err != nil {
		return Result{Outcome: OutcomeUnavailable}
	}
	defer f.Close()

	n, err := f.Read(out[:chunkLen])
	if err != nil && n == 0 {
		return Result{Outcome: OutcomeFailed}
	}
	return classify(n)
}
