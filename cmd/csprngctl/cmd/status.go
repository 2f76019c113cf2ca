// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hardenedrand/csprng"
)

// newStatusCommand builds the "status" subcommand, which reports the
// package-level singleton generator's entropy status and draws a small
// sample to report how many bytes it has produced in this invocation.
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report the generator's current entropy status",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := csprng.GlobalStatus()
	if err != nil {
		return fmt.Errorf("query status: %w", err)
	}

	sample, err := csprng.Random(64)
	if err != nil {
		return fmt.Errorf("draw sample: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "entropy status: %s\n", status)
	fmt.Fprintf(out, "sample draw:    %s\n", humanize.Bytes(uint64(len(sample))))
	return nil
}
