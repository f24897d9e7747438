package bit

import "github.com/hupe1980/bitseq/word"

// Find returns an iterator to the first bit in [first, last) equal to v, or
// last if there is none. Words without a matching bit are skipped whole.
func Find[W word.Word](first, last Iterator[W], v Value) Iterator[W] {
	checkRange(first, last)
	words := first.words
	// Searching for v is searching for set bits in w ^ flip.
	flip := pattern[W](v.Not())

	if first.index == last.index {
		if n := last.offset - first.offset; n > 0 {
			if m := word.FieldExtract(words[first.index]^flip, first.offset, n); m != 0 {
				return Iterator[W]{words: words, index: first.index, offset: first.offset + word.TrailingZeros(m)}
			}
		}
		return last
	}

	i := first.index
	if first.offset != 0 {
		if m := (words[i] ^ flip) >> first.offset; m != 0 {
			return Iterator[W]{words: words, index: i, offset: first.offset + word.TrailingZeros(m)}
		}
		i++
	}
	if j := indexWordWith(words[i:last.index], v); j >= 0 {
		i += j
		return Iterator[W]{words: words, index: i, offset: word.TrailingZeros(words[i] ^ flip)}
	}
	if last.offset != 0 {
		if m := (words[last.index] ^ flip) & word.LowMask[W](last.offset); m != 0 {
			return Iterator[W]{words: words, index: last.index, offset: word.TrailingZeros(m)}
		}
	}
	return last
}
