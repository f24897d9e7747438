package interop

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/word"
)

// ToBitSet copies [first, last) into a new BitSet of the same length.
func ToBitSet[W word.Word](first, last bit.Iterator[W]) *bitset.BitSet {
	n := last.Diff(first)
	words := make([]uint64, (n+63)/64)
	for i := range words {
		words[i] = bit.ReadWord[uint64](first.Add(i*64), min(64, n-i*64))
	}
	return bitset.FromWithLength(uint(n), words)
}

// FromBitSet copies the first last-first bits of bs into [first, last) and
// returns the number of bits taken from bs. Bits of the range beyond
// bs.Len() are cleared.
func FromBitSet[W word.Word](bs *bitset.BitSet, first, last bit.Iterator[W]) int {
	n := min(last.Diff(first), int(bs.Len()))
	words := bs.Words()
	for i := 0; i*64 < n; i++ {
		bit.WriteWord(words[i], first.Add(i*64), min(64, n-i*64))
	}
	bit.Fill(first.Add(n), last, bit.Zero)
	return n
}
