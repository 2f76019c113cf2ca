// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !unix

package entropy

// platformAbsorbFiles is a no-op off unix: the original's FBENT_ADD_FILE
// list is entirely /proc and /var/log paths that don't exist here, and
// its Windows fallback (otterylite_fallback_win32.h) draws on a disjoint
// set of Win32 APIs this package doesn't bind.
func platformAbsorbFiles(a *accumulator) {}

// platformAbsorbRusage is a no-op off unix: getrusage(2) has no portable
// Windows equivalent exposed by golang.org/x/sys.
func platformAbsorbRusage(a *accumulator) {}
