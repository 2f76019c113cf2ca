// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hardenedrand/csprng"
)

var (
	benchDuration time.Duration
	benchSizes    []int
)

// newBenchCommand builds the "bench" subcommand, which drives RandomBuf at
// a series of draw sizes for a fixed wall-clock duration each and reports
// throughput, the Go-ecosystem analogue of a manpage's "see also:
// benchmarks" appendix.
func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark draw throughput at varying sizes",
		RunE:  runBench,
	}
	cmd.Flags().DurationVar(&benchDuration, "duration", time.Second, "how long to run each size")
	cmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{16, 256, 4096, 65536}, "draw sizes in bytes to benchmark")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	st, err := csprng.New()
	if err != nil {
		return fmt.Errorf("initialize generator: %w", err)
	}
	defer st.Close()

	for _, size := range benchSizes {
		buf := make([]byte, size)
		start := time.Now()
		var total int64

		for time.Since(start) < benchDuration {
			if err := csprng.RandomBuf(st, buf); err != nil {
				return fmt.Errorf("draw %d bytes: %w", size, err)
			}
			total += int64(size)
		}

		elapsed := time.Since(start)
		bytesPerSec := float64(total) / elapsed.Seconds()
		fmt.Fprintf(out, "size=%-8s total=%-10s throughput=%s/s\n",
			humanize.Bytes(uint64(size)),
			humanize.Bytes(uint64(total)),
			humanize.Bytes(uint64(bytesPerSec)),
		)
	}

	return nil
}
