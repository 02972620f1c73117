// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/warp/dtw"
)

// benchmarkDTW runs DTW on n×k and m×k random sequences using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, m, k int, opts dtw.Options) {
	r := rand.New(rand.NewSource(int64(n*31 + m)))
	s := randomSequence(b, r, n, k)
	q := randomSequence(b, r, m, k)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.DTW(s, q, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrixSmall benchmarks FullMatrix mode on 100×100 univariate sequences.
func BenchmarkDTW_FullMatrixSmall(b *testing.B) {
	benchmarkDTW(b, 100, 100, 1, dtw.DefaultOptions())
}

// BenchmarkDTW_FullMatrixMedium benchmarks FullMatrix mode on 500×500 sequences of dimension 8.
func BenchmarkDTW_FullMatrixMedium(b *testing.B) {
	benchmarkDTW(b, 500, 500, 8, dtw.DefaultOptions())
}

// BenchmarkDTW_TwoRowsMedium benchmarks TwoRows mode on 500×500 sequences of dimension 8.
func BenchmarkDTW_TwoRowsMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 500, 500, 8, opts)
}

// BenchmarkDTW_Band10 benchmarks a ±10 band on 1000×1000 sequences.
func BenchmarkDTW_Band10(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = dtw.Band(10)
	benchmarkDTW(b, 1000, 1000, 4, opts)
}

// BenchmarkDTW_BandWidened benchmarks a zero band forced wide by a length gap.
func BenchmarkDTW_BandWidened(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = dtw.Band(0)
	benchmarkDTW(b, 200, 260, 4, opts)
}
