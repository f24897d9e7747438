package bit

import (
	"slices"

	"github.com/hupe1980/bitseq/word"
)

// Reverse reverses the order of the bits in [first, last).
//
// The covered words are reversed as a sequence and bit-reversed one by one,
// which mirrors the whole word span. The range then sits at the mirrored
// offset and is shifted back into place unless
// first.Position() == digits - last.Position(). Bits outside the range are
// restored from the boundary words afterwards.
func Reverse[W word.Word](first, last Iterator[W]) {
	checkRange(first, last)
	n := last.Diff(first)
	if n < 2 {
		return
	}
	d := word.Digits[W]()
	words := first.words
	fo, lo := first.offset, last.offset

	if first.index == last.index || (last.index == first.index+1 && lo == 0) {
		w := words[first.index]
		rev := word.Reverse(word.FieldExtract(w, fo, n)) >> (d - n)
		words[first.index] = word.Blend(w, rev<<fo, fo, n)
		return
	}

	end := last.index
	if lo != 0 {
		end++
	}
	block := words[first.index:end]
	head, tail := block[0], block[len(block)-1]

	slices.Reverse(block)
	for i, w := range block {
		block[i] = word.Reverse(w)
	}

	start := len(block)*d - ((last.index-first.index)*d + lo)
	b, e := Begin(block), End(block)
	switch {
	case start > fo:
		ShiftLeft(b, e, start-fo)
	case start < fo:
		ShiftRight(b, e, fo-start)
	}

	block[0] = word.Blend(block[0], head, 0, fo)
	if lo != 0 {
		block[len(block)-1] = word.BlendMask(block[len(block)-1], tail, ^W(0)<<lo)
	}
}
