// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.
//
// Package csprng provides configuration types and functional options for the
// ChaCha20/BLAKE2b cryptographically secure pseudo-random number generator.
//
// The Config type exposes tunable parameters for reseed policy, fork
// detection, and entropy-source behavior. These mirror the ChaCha20-PRNG
// and AES-CTR-DRBG sibling packages this module is grounded on.

package csprng

import "time"

// Config defines the tunable parameters for a State (or the package-level
// singleton).
//
// Fields:
//   - ReseedAfterBlocks: refill count after which a soft reseed is requested.
//   - EntropyMinLen: minimum bytes the dispatcher must collect for a seed
//     to be considered valid.
//   - ForkDetectionInterval: how often (in draws) fork/pid is rechecked.
//   - Personalization: optional per-instance domain-separation bytes mixed
//     into every BLAKE2b compression.
//   - MaxInitRetries: retries for initial RNG state allocation+seeding.
//   - EGDNetwork / EGDAddress: optional Entropy Gathering Daemon endpoint.
//   - DisableKludge: refuse to fall back to the weak accumulator source.
type Config struct {
	// ReseedAfterBlocks is the number of buffer refills after which the next
	// draw triggers a soft reseed (fresh entropy, new key). Corresponds to
	// RESEED_AFTER_BLOCKS. If zero, the package default (2048) is used.
	ReseedAfterBlocks uint32

	// EntropyMinLen is the minimum number of bytes the entropy dispatcher
	// must produce for a seed attempt to succeed. Corresponds to
	// ENTROPY_MINLEN. If zero, the package default (32) is used.
	EntropyMinLen int

	// ForkDetectionInterval controls how often fork/pid is rechecked.
	//
	// If 0 (default), the check runs on every draw, matching the spec's
	// "evaluated while holding the lock at the entry of every draw".
	// If N>0, the check runs only once every N draws: fewer getpid() calls,
	// at the cost of a window in which a forked child could observe the
	// parent's buffer before reinitializing. Not recommended outside
	// performance-critical, non-compliance-sensitive use.
	ForkDetectionInterval uint64

	// Personalization is mixed into every BLAKE2b compression used to derive
	// rekey material, giving independently constructed State instances
	// cryptographically separated streams even if their entropy sources
	// briefly overlap (e.g., one State per tenant or service). Nil by
	// default (no personalization beyond the library's fixed constants).
	Personalization []byte

	// MaxInitRetries is the number of attempts to allocate and seed a fresh
	// RNG state before giving up. If zero, a default of 3 is used.
	MaxInitRetries int

	// EGDNetwork and EGDAddress configure an optional Entropy Gathering
	// Daemon endpoint (see SetEGDAddress). Both empty disables the EGD
	// source.
	EGDNetwork string
	EGDAddress string

	// EGDTimeout bounds how long the EGD source waits for a response.
	// If zero, a default of 2 seconds is used.
	EGDTimeout time.Duration

	// DisableKludge refuses to register the fallback accumulator source
	// (KLUDGE group), preferring to report a lower entropy status over
	// drawing from timing/proc-file based entropy. Default false.
	DisableKludge bool
}

// Default configuration constants.
const (
	defaultReseedAfterBlocks     = 2048
	defaultEntropyMinLen         = 32
	defaultMaxInitRetries        = 3
	defaultEGDTimeout            = 2 * time.Second
	defaultForkDetectionInterval = 0
)

// DefaultConfig returns a Config populated with the spec's recommended
// defaults.
func DefaultConfig() Config {
	return Config{
		ReseedAfterBlocks:     defaultReseedAfterBlocks,
		EntropyMinLen:         defaultEntropyMinLen,
		ForkDetectionInterval: defaultForkDetectionInterval,
		MaxInitRetries:        defaultMaxInitRetries,
		EGDTimeout:            defaultEGDTimeout,
	}
}

// normalize fills in zero fields with their package defaults. Called once
// during New so callers constructing a bare Config{} still get
// workable behavior.
func (c *Config) normalize() {
	if c.ReseedAfterBlocks == 0 {
		c.ReseedAfterBlocks = defaultReseedAfterBlocks
	}
	if c.EntropyMinLen == 0 {
		c.EntropyMinLen = defaultEntropyMinLen
	}
	if c.MaxInitRetries == 0 {
		c.MaxInitRetries = defaultMaxInitRetries
	}
	if c.EGDTimeout == 0 {
		c.EGDTimeout = defaultEGDTimeout
	}
}

// Option defines a functional option for customizing a Config.
//
// Example:
//
//	st, err := csprng.New(
//	    csprng.WithReseedAfterBlocks(512),
//	    csprng.WithPersonalization([]byte("billing-service-v1")),
//	)
type Option func(*Config)

// WithReseedAfterBlocks returns an Option that sets the refill count after
// which a soft reseed is triggered.
func WithReseedAfterBlocks(n uint32) Option {
	return func(cfg *Config) { cfg.ReseedAfterBlocks = n }
}

// WithEntropyMinLen returns an Option that sets the minimum bytes required
// from the entropy dispatcher for a seed to be considered valid.
func WithEntropyMinLen(n int) Option {
	return func(cfg *Config) { cfg.EntropyMinLen = n }
}

// WithForkDetectionInterval returns an Option that sets how often (in draws)
// fork/pid is rechecked. 0 means every draw.
func WithForkDetectionInterval(n uint64) Option {
	return func(cfg *Config) { cfg.ForkDetectionInterval = n }
}

// WithPersonalization returns an Option that sets per-instance domain
// separation bytes mixed into the BLAKE2b compression.
func WithPersonalization(p []byte) Option {
	return func(cfg *Config) { cfg.Personalization = p }
}

// WithMaxInitRetries returns an Option that sets the maximum number of
// allocate+seed retries during initialization.
func WithMaxInitRetries(r int) Option {
	return func(cfg *Config) { cfg.MaxInitRetries = r }
}

// WithEGD returns an Option that configures the Entropy Gathering Daemon
// endpoint used by the dispatcher's EGD source.
func WithEGD(network, address string, timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.EGDNetwork = network
		cfg.EGDAddress = address
		if timeout > 0 {
			cfg.EGDTimeout = timeout
		}
	}
}

// WithDisableKludge returns an Option that disables the fallback
// accumulator entropy source.
func WithDisableKludge(disable bool) Option {
	return func(cfg *Config) { cfg.DisableKludge = disable }
}
