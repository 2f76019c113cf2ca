// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "github.com/hardenedrand/csprng/internal/entropy"

// Status reports the quality of entropy that seeded (or last reseeded)
// a generator, mirroring spec §4.4/§4.7's entropy_status values.
type Status int8

const (
	// StatusInsufficient means fewer than Config.EntropyMinLen bytes were
	// collected; fatal for initial seeding, a standing warning otherwise.
	StatusInsufficient Status = -1
	// StatusWeakOnly means some bytes were collected but no source
	// delivered a full 32-byte chunk.
	StatusWeakOnly Status = 0
	// StatusFullWeak means at least one full chunk was collected, but only
	// from WEAK-flagged sources.
	StatusFullWeak Status = 1
	// StatusStrong means at least one full chunk came from a non-WEAK
	// source.
	StatusStrong Status = 2
)

func fromEntropyStatus(s entropy.Status) Status { return Status(s) }

// String renders the status the way an operator tool (see cmd/csprngctl)
// would want to display it.
func (s Status) String() string {
	switch s {
	case StatusInsufficient:
		return "insufficient"
	case StatusWeakOnly:
		return "weak-only"
	case StatusFullWeak:
		return "full-weak"
	case StatusStrong:
		return "strong"
	default:
		return "unknown"
	}
}
