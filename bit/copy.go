package bit

import "github.com/hupe1980/bitseq/word"

// Copy copies [first, last) to the range starting at dFirst and returns the
// iterator one past the last bit written. The ranges may overlap only if
// dFirst is not inside (first, last); use CopyBackward otherwise.
func Copy[W word.Word](first, last, dFirst Iterator[W]) Iterator[W] {
	checkRange(first, last)
	n := last.Diff(first)
	if n <= 0 {
		return dFirst
	}
	d := word.Digits[W]()
	src, dst := first, dFirst

	// Align the destination so the body stores whole words.
	if dst.offset != 0 {
		k := min(d-dst.offset, n)
		writeBits(dst, getWord(src, k), k)
		src, dst = src.Add(k), dst.Add(k)
		n -= k
	}

	if cnt := n / d; cnt > 0 {
		if src.offset == 0 {
			copy(dst.words[dst.index:dst.index+cnt], src.words[src.index:src.index+cnt])
		} else {
			for k := range cnt {
				dst.words[dst.index+k] = wordAt(src, k)
			}
		}
		src.index += cnt
		dst.index += cnt
		n -= cnt * d
	}

	if n > 0 {
		writeBits(dst, getWord(src, n), n)
		dst = dst.Add(n)
	}
	return dst
}

// CopyBackward copies [first, last) to the range ending at dLast, starting
// with the last bit, and returns the iterator to the first bit written. The
// ranges may overlap only if dLast is not inside (first, last].
func CopyBackward[W word.Word](first, last, dLast Iterator[W]) Iterator[W] {
	checkRange(first, last)
	n := last.Diff(first)
	if n <= 0 {
		return dLast
	}
	d := word.Digits[W]()
	src, dst := last, dLast

	if dst.offset != 0 {
		k := min(dst.offset, n)
		src, dst = src.Sub(k), dst.Sub(k)
		writeBits(dst, getWord(src, k), k)
		n -= k
	}

	if cnt := n / d; cnt > 0 {
		src.index -= cnt
		dst.index -= cnt
		if src.offset == 0 {
			copy(dst.words[dst.index:dst.index+cnt], src.words[src.index:src.index+cnt])
		} else {
			for k := cnt - 1; k >= 0; k-- {
				dst.words[dst.index+k] = wordAt(src, k)
			}
		}
		n -= cnt * d
	}

	if n > 0 {
		src, dst = src.Sub(n), dst.Sub(n)
		writeBits(dst, getWord(src, n), n)
	}
	return dst
}
