package bit_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/testutil"
)

const benchBits = 1 << 16

func benchWords() []uint64 {
	return testutil.Words[uint64](testutil.NewRNG(1), benchBits/64)
}

func BenchmarkCount(b *testing.B) {
	words := benchWords()
	first, last := bit.Begin(words).Add(3), bit.End(words).Sub(5)
	b.SetBytes(benchBits / 8)
	var sink int
	for b.Loop() {
		sink += bit.Count(first, last, bit.One)
	}
	_ = sink
}

func BenchmarkCopy(b *testing.B) {
	src, dst := benchWords(), make([]uint64, benchBits/64)
	for _, tt := range []struct {
		name  string
		shift int
	}{
		{"aligned", 0},
		{"unaligned", 13},
	} {
		b.Run(tt.name, func(b *testing.B) {
			first, last := bit.Begin(src).Add(tt.shift), bit.End(src).Sub(64)
			b.SetBytes(benchBits / 8)
			for b.Loop() {
				bit.Copy(first, last, bit.Begin(dst))
			}
		})
	}
}

func BenchmarkReverse(b *testing.B) {
	words := benchWords()
	first, last := bit.Begin(words).Add(7), bit.End(words).Sub(9)
	b.SetBytes(benchBits / 8)
	for b.Loop() {
		bit.Reverse(first, last)
	}
}

func BenchmarkRotate(b *testing.B) {
	words := benchWords()
	first, last := bit.Begin(words), bit.End(words)
	for _, mid := range []int{5, 300, benchBits / 3} {
		b.Run("mid="+strconv.Itoa(mid), func(b *testing.B) {
			b.SetBytes(benchBits / 8)
			for b.Loop() {
				bit.Rotate(first, first.Add(mid), last)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	hay := make([]uint64, benchBits/64)
	hay[len(hay)-1] = 1 << 63
	for _, m := range []int{17, 64, 300} {
		needle := make([]uint64, (m+63)/64)
		bit.Begin(needle).Add(m - 1).Set(bit.One)
		b.Run("m="+strconv.Itoa(m), func(b *testing.B) {
			b.SetBytes(benchBits / 8)
			for b.Loop() {
				bit.Search(bit.Begin(hay), bit.End(hay), bit.Begin(needle), bit.Begin(needle).Add(m))
			}
		})
	}
}
