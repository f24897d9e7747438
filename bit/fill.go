package bit

import "github.com/hupe1980/bitseq/word"

// Fill sets every bit in [first, last) to v.
func Fill[W word.Word](first, last Iterator[W], v Value) {
	checkRange(first, last)
	words := first.words
	fill := pattern[W](v)

	if first.index == last.index {
		if n := last.offset - first.offset; n > 0 {
			words[first.index] = word.Blend(words[first.index], fill, first.offset, n)
		}
		return
	}

	i := first.index
	if first.offset != 0 {
		words[i] = word.BlendMask(words[i], fill, ^W(0)<<first.offset)
		i++
	}
	fillWords(words[i:last.index], fill)
	if last.offset != 0 {
		words[last.index] = word.BlendMask(words[last.index], fill, word.LowMask[W](last.offset))
	}
}
