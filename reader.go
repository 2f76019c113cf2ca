// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "io"

// Reader is an io.Reader backed by the package-level singleton generator,
// provided for interop with APIs that accept an io.Reader random source
// (e.g. github.com/google/uuid's SetRand) rather than this package's own
// draw functions.
var Reader io.Reader = packageReader{}

type packageReader struct{}

func (packageReader) Read(b []byte) (int, error) {
	st, err := global()
	if err != nil {
		return 0, err
	}
	if err := RandomBuf(st, b); err != nil {
		return 0, err
	}
	return len(b), nil
}
