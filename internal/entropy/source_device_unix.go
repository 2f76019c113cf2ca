// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build unix

package entropy

import "os"

// urandomPaths lists device nodes tried in order, per spec §4.4's
// "/dev/urandom (or platform equivalents, tried in order)".
var urandomPaths = []string{"/dev/urandom", "/dev/random"}

// platformDeviceSources returns the DEVICE-group sources common to all
// unix-like targets: /dev/urandom (falling back to /dev/random).
func platformDeviceSources() []Source {
	return []Source{
		{
			Name:  "device-urandom",
			Group: GroupDevice,
			Fn:    urandomFn,
		},
	}
}

func urandomFn(out []byte) Result {
	for _, path := range urandomPaths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		n, rerr := f.Read(out)
		f.Close()
		if rerr != nil && n == 0 {
			continue
		}
		return classify(n)
	}
	return Result{Outcome: OutcomeUnavailable}
}
