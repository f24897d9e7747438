package bit

import (
	"slices"

	"github.com/hupe1980/bitseq/word"
)

// Equal reports whether [first, last) holds the same bits as the range of
// equal length starting at dFirst.
func Equal[W word.Word](first, last, dFirst Iterator[W]) bool {
	checkRange(first, last)
	d := word.Digits[W]()
	n := last.Diff(first)
	src, dst := first, dFirst

	if src.offset != 0 && n > 0 {
		k := min(d-src.offset, n)
		if getWord(src, k) != getWord(dst, k) {
			return false
		}
		src, dst = src.Add(k), dst.Add(k)
		n -= k
	}

	if cnt := n / d; cnt > 0 {
		if dst.offset == 0 {
			if !slices.Equal(src.words[src.index:src.index+cnt], dst.words[dst.index:dst.index+cnt]) {
				return false
			}
		} else {
			for k := range cnt {
				if src.words[src.index+k] != wordAt(dst, k) {
					return false
				}
			}
		}
		src.index += cnt
		dst.index += cnt
		n -= cnt * d
	}

	if n > 0 {
		return getWord(src, n) == getWord(dst, n)
	}
	return true
}
