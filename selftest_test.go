// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunSelfTests_Passes verifies the power-on self-test succeeds on this
// platform and is idempotent across repeated calls (sync.Once caching).
func TestRunSelfTests_Passes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.NoError(RunSelfTests())
	is.NoError(RunSelfTests())
}

// TestSelftestChacha20_Passes exercises the underlying check function
// directly rather than through the cached RunSelfTests.
func TestSelftestChacha20_Passes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.NoError(selftestChacha20())
}

// TestSelftestBlake2_Passes exercises the BLAKE2 structural checks
// directly.
func TestSelftestBlake2_Passes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.NoError(selftestBlake2())
}
