// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

// benchConcurrent runs fn across goroutines goroutines, distributing b.N
// iterations as evenly as possible.
func benchConcurrent(b *testing.B, fn func(), goroutines int) {
	nPerG := b.N / goroutines
	rem := b.N % goroutines
	var wg sync.WaitGroup
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < goroutines; i++ {
		iters := nPerG
		if i < rem {
			iters++
		}
		wg.Add(1)
		go func(iters int) {
			defer wg.Done()
			for j := 0; j < iters; j++ {
				fn()
			}
		}(iters)
	}
	wg.Wait()
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [12]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = '0' + byte(i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// BenchmarkUUID_v4_Default_Serial baselines uuid.New() against the
// default (math/rand) source.
func BenchmarkUUID_v4_Default_Serial(b *testing.B) {
	uuid.SetRand(nil)
	b.ReportAllocs()
	for b.Loop() {
		_ = uuid.New()
	}
}

// BenchmarkUUID_v4_CSPRNG_Serial measures uuid.New() backed by this
// package's Reader.
func BenchmarkUUID_v4_CSPRNG_Serial(b *testing.B) {
	uuid.SetRand(Reader)
	defer uuid.SetRand(nil)
	b.ReportAllocs()
	for b.Loop() {
		_ = uuid.New()
	}
}

// BenchmarkUUID_v4_CSPRNG_Parallel measures uuid.New() backed by this
// package's Reader under RunParallel.
func BenchmarkUUID_v4_CSPRNG_Parallel(b *testing.B) {
	uuid.SetRand(Reader)
	defer uuid.SetRand(nil)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = uuid.New()
		}
	})
}

// BenchmarkUUID_v4_CSPRNG_Concurrent measures uuid.New() backed by this
// package's Reader across increasing goroutine counts.
func BenchmarkUUID_v4_CSPRNG_Concurrent(b *testing.B) {
	uuid.SetRand(Reader)
	defer uuid.SetRand(nil)
	for _, gr := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		b.Run("Goroutines_"+itoa(gr), func(b *testing.B) {
			benchConcurrent(b, func() { _ = uuid.New() }, gr)
		})
	}
}
