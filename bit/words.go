package bit

import (
	"github.com/hupe1980/bitseq/internal/assert"
	"github.com/hupe1980/bitseq/word"
)

// GetWord returns the n bits starting at it, right-justified. n must be in
// [0, word.Digits[W]()]. Only the words holding bits it .. it+n-1 are read.
func GetWord[W word.Word](it Iterator[W], n int) W {
	if n <= 0 {
		return 0
	}
	if assert.Enabled {
		assert.That(n <= word.Digits[W](), "GetWord length %d exceeds word width", n)
	}
	return getWord(it, n)
}

// PutWord writes the low n bits of v starting at it, leaving every other
// bit of the touched words unchanged. n must be in [0, word.Digits[W]()].
func PutWord[W word.Word](v W, it Iterator[W], n int) {
	if n <= 0 {
		return
	}
	if assert.Enabled {
		assert.That(n <= word.Digits[W](), "PutWord length %d exceeds word width", n)
	}
	writeBits(it, v, n)
}

// ReadWord returns the n bits starting at it as a T, right-justified. T and
// the storage word W may differ in width; the read crosses as many storage
// words as needed. n must be in [0, word.Digits[T]()].
func ReadWord[T, W word.Word](it Iterator[W], n int) T {
	if assert.Enabled {
		assert.That(n <= word.Digits[T](), "ReadWord length %d exceeds %d-bit result", n, word.Digits[T]())
	}
	d := word.Digits[W]()
	var out T
	for got := 0; got < n; {
		take := min(d-it.offset, n-got)
		out |= T(word.FieldExtract(it.words[it.index], it.offset, take)) << got
		got += take
		it = it.Add(take)
	}
	return out
}

// WriteWord writes the low n bits of v starting at it. T and the storage
// word W may differ in width. Bits outside [it, it+n) are preserved.
func WriteWord[T, W word.Word](v T, it Iterator[W], n int) {
	if assert.Enabled {
		assert.That(n <= word.Digits[T](), "WriteWord length %d exceeds %d-bit value", n, word.Digits[T]())
	}
	d := word.Digits[W]()
	for put := 0; put < n; {
		take := min(d-it.offset, n-put)
		chunk := W(word.FieldExtract(v, put, take))
		it.words[it.index] = word.Blend(it.words[it.index], chunk<<it.offset, it.offset, take)
		put += take
		it = it.Add(take)
	}
}

// getWord reads 1 <= n <= digits bits at it.
func getWord[W word.Word](it Iterator[W], n int) W {
	d := word.Digits[W]()
	if it.offset == 0 || n <= d-it.offset {
		return (it.words[it.index] >> it.offset) & word.LowMask[W](n)
	}
	w := word.ShiftPairRight(it.words[it.index], it.words[it.index+1], it.offset)
	return w & word.LowMask[W](n)
}

// wordAt returns the digits bits starting k whole words after it.
func wordAt[W word.Word](it Iterator[W], k int) W {
	i := it.index + k
	if it.offset == 0 {
		return it.words[i]
	}
	return word.ShiftPairRight(it.words[i], it.words[i+1], it.offset)
}

// writeBits stores the low 1 <= n <= digits bits of v at it. Bits of v above
// n are ignored.
func writeBits[W word.Word](it Iterator[W], v W, n int) {
	d := word.Digits[W]()
	o := it.offset
	if o+n <= d {
		it.words[it.index] = word.BlendMask(it.words[it.index], v<<o, word.RangeMask[W](o, n))
		return
	}
	lo := d - o
	it.words[it.index] = word.BlendMask(it.words[it.index], v<<o, ^W(0)<<o)
	it.words[it.index+1] = word.BlendMask(it.words[it.index+1], v>>lo, word.LowMask[W](n-lo))
}

func checkRange[W word.Word](first, last Iterator[W]) {
	if assert.Enabled {
		assert.That(!last.Less(first), "range end %v precedes begin %v", last, first)
	}
}
