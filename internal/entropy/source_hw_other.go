// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !unix

package entropy

// platformHWSources is empty on non-unix targets: there is no hardware
// RNG device node to open.
func platformHWSources() []Source { return nil }
