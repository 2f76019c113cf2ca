// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "csprngctl",
	Short: "Operator tooling for the hardenedrand CSPRNG",
	Long:  `csprngctl inspects and benchmarks the hardenedrand ChaCha20/BLAKE2b generator: entropy status, and throughput under varying draw sizes.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "csprngctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(newStatusCommand())
	RootCmd.AddCommand(newBenchCommand())
}
