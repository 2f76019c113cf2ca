// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package egd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_Read_Success exercises spec's EGD success-path scenario: a
// helper server answers the 2-byte request with 32 bytes of a known
// string, and Read returns exactly those bytes.
func TestClient_Read_Success(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	must := require.New(t)

	known := bytes32("the quick brown fox jumps over")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	must.NoError(err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		req := make([]byte, 2)
		if _, err := conn.Read(req); err != nil {
			return
		}
		if req[0] != opNonblockingRead {
			return
		}
		count := int(req[1])
		_, _ = conn.Write(known[:count])
	}()

	c := NewClient("tcp", ln.Addr().String(), time.Second)
	must.NotNil(c)

	out := make([]byte, 32)
	n, err := c.Read(out)
	must.NoError(err)
	is.Equal(32, n)
	is.Equal(known, out)
}

// TestNewClient_DisabledWhenUnconfigured verifies NewClient returns nil
// when no endpoint is configured, so the entropy source wiring can treat
// a nil client as "EGD disabled".
func TestNewClient_DisabledWhenUnconfigured(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Nil(NewClient("", "", time.Second))
}

func bytes32(s string) []byte {
	b := make([]byte, 32)
	copy(b, s)
	return b
}
