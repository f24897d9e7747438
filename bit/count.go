package bit

import "github.com/hupe1980/bitseq/word"

// Count returns the number of bits in [first, last) equal to v.
func Count[W word.Word](first, last Iterator[W], v Value) int {
	checkRange(first, last)
	ones := countOnes(first, last)
	if v == One {
		return ones
	}
	return last.Diff(first) - ones
}

func countOnes[W word.Word](first, last Iterator[W]) int {
	words := first.words

	if first.index == last.index {
		if last.offset <= first.offset {
			return 0
		}
		return word.Popcount(word.FieldExtract(words[first.index], first.offset, last.offset-first.offset))
	}

	n := 0
	i := first.index
	if first.offset != 0 {
		n += word.Popcount(words[i] >> first.offset)
		i++
	}
	n += popcountWords(words[i:last.index])
	if last.offset != 0 {
		n += word.Popcount(words[last.index] & word.LowMask[W](last.offset))
	}
	return n
}
