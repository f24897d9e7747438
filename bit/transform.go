package bit

import "github.com/hupe1980/bitseq/word"

// Transform stores op applied to the bits of [first, last) into the range
// starting at dFirst and returns the end of the written range. op sees up
// to digits bits at a time, right-justified; in a partial chunk the bits
// above the range are zero on input and ignored on output. dFirst may equal
// first; other overlaps are not supported.
func Transform[W word.Word](first, last, dFirst Iterator[W], op func(W) W) Iterator[W] {
	checkRange(first, last)
	n := last.Diff(first)
	if n <= 0 {
		return dFirst
	}
	d := word.Digits[W]()
	src, dst := first, dFirst

	if dst.offset != 0 {
		k := min(d-dst.offset, n)
		writeBits(dst, op(getWord(src, k)), k)
		src, dst = src.Add(k), dst.Add(k)
		n -= k
	}

	cnt := n / d
	for k := range cnt {
		dst.words[dst.index+k] = op(wordAt(src, k))
	}
	src.index += cnt
	dst.index += cnt
	n -= cnt * d

	if n > 0 {
		writeBits(dst, op(getWord(src, n)), n)
		dst = dst.Add(n)
	}
	return dst
}

// Transform2 stores op applied pairwise to [first1, last1) and the range
// starting at first2 into the range starting at dFirst, and returns the end
// of the written range. dFirst may equal first1 or first2.
func Transform2[W word.Word](first1, last1, first2, dFirst Iterator[W], op func(a, b W) W) Iterator[W] {
	return transform2(first1, last1, first2, dFirst, op, nil)
}

// transform2 runs the aligned body through bulk when it is set and both
// inputs line up with the destination words.
func transform2[W word.Word](first1, last1, first2, dFirst Iterator[W], op func(a, b W) W, bulk func(dst, src []W)) Iterator[W] {
	checkRange(first1, last1)
	n := last1.Diff(first1)
	if n <= 0 {
		return dFirst
	}
	d := word.Digits[W]()
	a, b, dst := first1, first2, dFirst

	if dst.offset != 0 {
		k := min(d-dst.offset, n)
		writeBits(dst, op(getWord(a, k), getWord(b, k)), k)
		a, b, dst = a.Add(k), b.Add(k), dst.Add(k)
		n -= k
	}

	cnt := n / d
	if bulk != nil && cnt > 0 && a.offset == 0 && b.offset == 0 && a.Equal(dst) {
		bulk(dst.words[dst.index:dst.index+cnt], b.words[b.index:b.index+cnt])
	} else {
		for k := range cnt {
			dst.words[dst.index+k] = op(wordAt(a, k), wordAt(b, k))
		}
	}
	a.index += cnt
	b.index += cnt
	dst.index += cnt
	n -= cnt * d

	if n > 0 {
		writeBits(dst, op(getWord(a, n), getWord(b, n)), n)
		dst = dst.Add(n)
	}
	return dst
}
