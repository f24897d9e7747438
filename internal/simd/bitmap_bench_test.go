package simd

import (
	"math/rand"
	"strconv"
	"testing"
)

// Benchmarks in this package are meant to be run twice to compare:
// - default: native kernels when the CPU supports them
// - generic: BITSEQ_SIMD=generic forces the portable kernels
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   BITSEQ_SIMD=generic go test ./internal/simd -run '^$' -bench . -benchmem

func benchRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func randWords(r *rand.Rand, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func BenchmarkPopcountWords(b *testing.B) {
	r := benchRand()
	for _, n := range []int{16, 256, 4096} {
		b.Run("words="+strconv.Itoa(n), func(b *testing.B) {
			w := randWords(r, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			var sink int
			for b.Loop() {
				sink += PopcountWords(w)
			}
			_ = sink
		})
	}
}

func BenchmarkIndexNonZero(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run("words="+strconv.Itoa(n), func(b *testing.B) {
			w := make([]uint64, n)
			w[n-1] = 1
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			var sink int
			for b.Loop() {
				sink += IndexNonZero(w)
			}
			_ = sink
		})
	}
}

func BenchmarkAndWords(b *testing.B) {
	r := benchRand()
	for _, n := range []int{16, 256, 4096} {
		b.Run("words="+strconv.Itoa(n), func(b *testing.B) {
			dst, src := randWords(r, n), randWords(r, n)
			b.SetBytes(int64(n * 8 * 2))
			b.ResetTimer()
			for b.Loop() {
				AndWords(dst, src)
			}
		})
	}
}
