// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package egd implements the Entropy Gathering Daemon client protocol of
// spec §4.6: connect to a stream socket, request up to 32 nonblocking
// bytes, and read whatever comes back, retrying only on EINTR/EAGAIN. When
// a Client's Timeout is nonzero it bounds both the connect and the
// request/response exchange.
package egd

import (
	"errors"
	"net"
	"syscall"
	"time"
)

// maxRequest is the protocol's per-request ceiling (spec §4.6: "count
// (<=32)").
const maxRequest = 32

// opNonblockingRead is the EGD wire protocol's single opcode this client
// uses: 0x01, "read entropy, nonblocking".
const opNonblockingRead = 0x01

// Client holds a configured EGD endpoint.
type Client struct {
	Network string
	Address string
	Timeout time.Duration
}

// NewClient returns a Client, or nil if network or address is empty (EGD
// disabled).
func NewClient(network, address string, timeout time.Duration) *Client {
	if network == "" || address == "" {
		return nil
	}
	return &Client{Network: network, Address: address, Timeout: timeout}
}

// Read performs one request/response round trip: connect, send
// {0x01, count}, read up to count bytes, close. It returns however many
// bytes the daemon actually sent (which may be less than requested); the
// caller's dispatcher integration treats a short read as a Partial
// outcome, matching every other source's contract.
func (c *Client) Read(out []byte) (int, error) {
	if c == nil {
		return 0, errors.New("egd: client not configured")
	}

	count := len(out)
	if count > maxRequest {
		count = maxRequest
	}

	d := net.Dialer{Timeout: c.Timeout}
	conn, err := d.Dial(c.Network, c.Address)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if c.Timeout > 0 {
		deadline := time.Now().Add(c.Timeout)
		_ = conn.SetDeadline(deadline)
	}

	req := [2]byte{opNonblockingRead, byte(count)}
	if err := writeAll(conn, req[:]); err != nil {
		return 0, err
	}

	return readSome(conn, out[:count])
}

// writeAll loops only on EINTR/EAGAIN, per spec §4.6: no other retry
// policy is implemented.
func writeAll(conn net.Conn, b []byte) error {
	for len(b) > 0 {
		n, err := conn.Write(b)
		if err != nil {
			if errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN) {
				continue
			}
			return err
		}
		b = b[n:]
	}
	return nil
}

func readSome(conn net.Conn, out []byte) (int, error) {
	for {
		n, err := conn.Read(out)
		if err != nil {
			if errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN) {
				continue
			}
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		return n, nil
	}
}
