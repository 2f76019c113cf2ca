// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

// DefaultSources assembles the static table in the declared order from
// spec §4.4's source table: CPU instruction, kernel syscalls, device
// files, HW device, EGD (if egd.Fn is non-nil), legacy/avoid sources, and
// finally the fallback kludge (unless disableKludge is set).
//
// Each platform contributes its own entries through platformSyscallSources
// and platformDeviceSources, implemented in build-tag-scoped files so only
// one variant compiles per target.
func DefaultSources(egd Source, disableKludge bool) []Source {
	sources := make([]Source, 0, 12)

	sources = append(sources, cpuSource())
	sources = append(sources, platformSyscallSources()...)
	sources = append(sources, platformDeviceSources()...)
	sources = append(sources, platformHWSources()...)

	if egd.Fn != nil {
		sources = append(sources, egd)
	}

	sources = append(sources, platformAvoidSources()...)

	if !disableKludge {
		sources = append(sources, kludgeSource())
	}

	return sources
}
