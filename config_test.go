// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestConfig_DefaultConfig verifies that DefaultConfig returns a Config
// with the documented default field values.
func TestConfig_DefaultConfig(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cfg := DefaultConfig()
	is.Equal(uint32(2048), cfg.ReseedAfterBlocks, "DefaultConfig.ReseedAfterBlocks should be 2048")
	is.Equal(32, cfg.EntropyMinLen, "DefaultConfig.EntropyMinLen should be 32")
	is.Equal(3, cfg.MaxInitRetries, "DefaultConfig.MaxInitRetries should be 3")
	is.Equal(2*time.Second, cfg.EGDTimeout, "DefaultConfig.EGDTimeout should be 2s")
}

// TestConfig_WithReseedAfterBlocks ensures the option overrides only the
// targeted field.
func TestConfig_WithReseedAfterBlocks(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	base := DefaultConfig()
	WithReseedAfterBlocks(512)(&base)

	is.Equal(uint32(512), base.ReseedAfterBlocks)
	is.Equal(32, base.EntropyMinLen, "unrelated field should be unchanged")
}

// TestConfig_WithPersonalization ensures the option sets the
// personalization bytes verbatim.
func TestConfig_WithPersonalization(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	base := DefaultConfig()
	WithPersonalization([]byte("tenant-a"))(&base)

	is.Equal([]byte("tenant-a"), base.Personalization)
}

// TestConfig_WithEGD ensures the option sets network/address/timeout
// together, and leaves the default timeout alone when zero is passed.
func TestConfig_WithEGD(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	base := DefaultConfig()
	WithEGD("unix", "/run/egd.sock", 0)(&base)

	is.Equal("unix", base.EGDNetwork)
	is.Equal("/run/egd.sock", base.EGDAddress)
	is.Equal(2*time.Second, base.EGDTimeout, "zero timeout should not override the default")
}

// TestConfig_Normalize ensures normalize fills in zero fields with package
// defaults while leaving explicitly set fields untouched.
func TestConfig_Normalize(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cfg := Config{EntropyMinLen: 64}
	cfg.normalize()

	is.Equal(uint32(2048), cfg.ReseedAfterBlocks)
	is.Equal(64, cfg.EntropyMinLen, "explicitly set field should survive normalize")
	is.Equal(3, cfg.MaxInitRetries)
}
