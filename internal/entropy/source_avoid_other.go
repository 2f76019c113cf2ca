// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !linux

package entropy

// platformAvoidSources is empty on platforms without a recognized
// AVOID-flagged legacy source (spec §4.4's /proc-derived UUID and legacy
// kernel-variable entries are Linux-specific).
func platformAvoidSources() []Source { return nil }
