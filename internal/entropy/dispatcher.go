// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

// Status mirrors the OuterState.entropy_status values from spec §4.4/§4.6:
// -1 total bytes collected below ENTROPY_MINLEN (fatal for startup),
// 0 some bytes collected but no source delivered a full chunk,
// 1 at least one full chunk but none from a strong (non-WEAK) source,
// 2 at least one full chunk from a strong source.
type Status int8

const (
	StatusInsufficient Status = -1
	StatusWeakOnly     Status = 0
	StatusFullWeak     Status = 1
	StatusStrong       Status = 2
)

// Collect runs the dispatcher policy of spec §4.4 against sources (in
// declared order) writing up to len(out) bytes and returning how many
// bytes were written and the resulting Status. out is zeroed first; any
// source failing to deliver a full chunk simply doesn't advance the
// cursor further than its partial contribution, matching the original's
// "still accumulated but doesn't count as a success" partial semantics.
//
// Collect makes a single pass over sources, giving each eligible source
// one chunkLen-sized slice, and stops early once out is full. Sources are
// not revisited, so out holds at most one chunk per source that was
// called; any remainder of out stays zero.
func Collect(out []byte, sources []Source) (int, Status) {
	for i := range out {
		out[i] = 0
	}

	var (
		cursor      int
		haveStrong  bool
		haveAnyFull bool
		haveGroups  = make(map[Group]bool)
	)

	for _, src := range sources {
		if cursor >= len(out) {
			break
		}
		if src.Fn == nil {
			continue
		}
		if haveStrong && src.Flags.has(FlagAvoid) {
			continue
		}
		if haveGroups[src.Group] {
			continue
		}

		chunk := make([]byte, chunkLen)
		res := src.Fn(chunk)

		switch res.Outcome {
		case OutcomeUnavailable, OutcomeFailed:
			continue
		case OutcomePartial:
			n := min(res.N, chunkLen)
			cursor += copy(out[cursor:], chunk[:n])
		case OutcomeFull:
			n := min(res.N, chunkLen)
			cursor += copy(out[cursor:], chunk[:n])
			if n >= chunkLen {
				haveAnyFull = true
				haveGroups[src.Group] = true
				if !src.Flags.has(FlagWeak) {
					haveStrong = true
				}
			}
		}
	}

	status := StatusStrong
	switch {
	case cursor < chunkLen:
		status = StatusInsufficient
	case !haveAnyFull:
		status = StatusWeakOnly
	case !haveStrong:
		status = StatusFullWeak
	}

	return cursor, status
}
