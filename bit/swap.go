package bit

import "github.com/hupe1980/bitseq/word"

// SwapRanges exchanges [first1, last1) with the range of equal length
// starting at first2 and returns the end of the second range. The ranges
// must not overlap; their offsets are otherwise unconstrained.
func SwapRanges[W word.Word](first1, last1, first2 Iterator[W]) Iterator[W] {
	checkRange(first1, last1)
	n := last1.Diff(first1)
	if n <= 0 {
		return first2
	}
	d := word.Digits[W]()
	a, b := first1, first2

	if a.offset == b.offset {
		if a.offset != 0 {
			k := min(d-a.offset, n)
			word.Exchange(&a.words[a.index], &b.words[b.index], a.offset, k)
			a, b = a.Add(k), b.Add(k)
			n -= k
		}
		cnt := n / d
		wa := a.words[a.index : a.index+cnt]
		wb := b.words[b.index : b.index+cnt]
		for i := range wa {
			wa[i], wb[i] = wb[i], wa[i]
		}
		a.index += cnt
		b.index += cnt
		n -= cnt * d
		if n > 0 {
			word.Exchange(&a.words[a.index], &b.words[b.index], 0, n)
			b = b.Add(n)
		}
		return b
	}

	for n > 0 {
		k := min(n, d-a.offset, d-b.offset)
		word.ExchangeAt(&a.words[a.index], &b.words[b.index], a.offset, b.offset, k)
		a, b = a.Add(k), b.Add(k)
		n -= k
	}
	return b
}
