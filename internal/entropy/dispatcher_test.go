// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullSource(name string, group Group, flags Flag) Source {
	return Source{
		Name:  name,
		Group: group,
		Flags: flags,
		Fn: func(out []byte) Result {
			for i := range out {
				out[i] = 0x42
			}
			return Result{Outcome: OutcomeFull, N: len(out)}
		},
	}
}

func failingSource(name string, group Group, flags Flag) Source {
	return Source{
		Name:  name,
		Group: group,
		Flags: flags,
		Fn: func(out []byte) Result {
			return Result{Outcome: OutcomeFailed}
		},
	}
}

// TestCollect_P9_DispatcherPolicy exercises the dispatcher policy with
// synthetic sources A(strong,grp1), B(strong,grp1), C(strong,grp2),
// D(weak,grp2), E(avoid,weak,grp3):
//
//	(a) all succeeding: only A, C used.
//	(b) A failing: B, C used.
//	(c) only E succeeding: status == StatusFullWeak.
//	(d) none succeeding: status == StatusInsufficient, length 0.
//
// The case where both A and C fail is not covered here.
func TestCollect_P9_DispatcherPolicy(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	groupA, groupB, groupC := GroupHW, GroupSyscall, GroupDevice

	t.Run("all succeed: only A and C used", func(t *testing.T) {
		used := map[string]bool{}
		sources := []Source{
			trackUsage(fullSource("A", groupA, 0), used),
			trackUsage(fullSource("B", groupA, 0), used),
			trackUsage(fullSource("C", groupB, 0), used),
			trackUsage(fullSource("D", groupB, FlagWeak), used),
			trackUsage(fullSource("E", GroupKludge, FlagAvoid|FlagWeak), used),
		}
		out := make([]byte, chunkLen*5)
		_, status := Collect(out, sources)
		is.True(used["A"])
		is.False(used["B"], "B shares A's group and should be skipped once A succeeds")
		is.True(used["C"])
		is.Equal(StatusStrong, status)
	})

	t.Run("A fails: B and C used", func(t *testing.T) {
		used := map[string]bool{}
		sources := []Source{
			trackUsage(failingSource("A", groupA, 0), used),
			trackUsage(fullSource("B", groupA, 0), used),
			trackUsage(fullSource("C", groupB, 0), used),
		}
		out := make([]byte, chunkLen*3)
		_, status := Collect(out, sources)
		is.True(used["B"])
		is.True(used["C"])
		is.Equal(StatusStrong, status)
	})

	t.Run("only E succeeds: status is full-weak", func(t *testing.T) {
		sources := []Source{
			failingSource("A", groupA, 0),
			failingSource("B", groupA, 0),
			failingSource("C", groupB, 0),
			failingSource("D", groupB, FlagWeak),
			fullSource("E", GroupKludge, FlagAvoid|FlagWeak),
		}
		out := make([]byte, chunkLen)
		n, status := Collect(out, sources)
		is.Equal(chunkLen, n)
		is.Equal(StatusFullWeak, status)
	})

	t.Run("none succeed: insufficient, zero length", func(t *testing.T) {
		sources := []Source{
			failingSource("A", groupA, 0),
			failingSource("B", groupA, 0),
		}
		out := make([]byte, chunkLen)
		n, status := Collect(out, sources)
		is.Equal(0, n)
		is.Equal(StatusInsufficient, status)
	})
}

func trackUsage(src Source, used map[string]bool) Source {
	fn := src.Fn
	src.Fn = func(out []byte) Result {
		used[src.Name] = true
		return fn(out)
	}
	return src
}
