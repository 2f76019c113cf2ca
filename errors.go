// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "errors"

// ErrEntropyStarved is returned when the entropy dispatcher produced fewer
// than ENTROPY_MINLEN (32) bytes total. New returns it, wrapped, once all
// Config.MaxInitRetries attempts have failed; a reinitialization that
// starves returns it from the draw or Status call that triggered it. A
// starved soft reseed is not reported: the old key stays in use.
var ErrEntropyStarved = errors.New("csprng: entropy dispatcher starved (fewer than 32 bytes collected)")

// ErrAllocFailure is returned when the locked-page allocator could not
// provision the RNG state page (mmap/mlock/VirtualAlloc failure, or the
// heap fallback failing to allocate).
var ErrAllocFailure = errors.New("csprng: failed to allocate RNG state page")

// ErrConfigError reports a configuration input rejected without modifying
// state. SetEGDAddress performs no validation and never returns it.
var ErrConfigError = errors.New("csprng: invalid configuration")

// ErrTornDown is returned by operations attempted on a State after
// Close has been called.
var ErrTornDown = errors.New("csprng: state has been torn down")
