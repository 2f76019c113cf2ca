// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package csprng provides a userspace cryptographically secure pseudo-random
// number generator built on ChaCha20 and BLAKE2b, intended as a drop-in
// replacement for platform facilities such as the BSD arc4random family.
//
// The package exposes both a package-level singleton (Random, Random64,
// RandomUniform, RandomUniform64, AddRandom, NeedReseed, GlobalStatus,
// SetEGDAddress, Reader) and an isolated instance form (State, via New;
// RandomBuf fills a buffer from a given State) for callers that want a
// private generator with its own lock, locked memory page, and entropy
// policy.
//
// A draw proceeds: check whether the lifecycle needs reinitialization
// (first use, fork, or pid change) -> if the output volume since the last
// reseed exceeds a threshold, collect fresh entropy and rekey -> copy bytes
// out of a buffered ChaCha20 keystream, zeroing the consumed prefix so that
// compromise of the state after a draw cannot reveal bytes already
// delivered.
package csprng
