package bit

import "github.com/hupe1980/bitseq/word"

// rotateBufferWords bounds the stack buffer used when the shorter side of a
// rotation is small.
const rotateBufferWords = 8

// Rotate rotates [first, last) so that the bit at mid becomes the first bit,
// and returns the new position of the bit originally at first,
// first + (last - mid).
func Rotate[W word.Word](first, mid, last Iterator[W]) Iterator[W] {
	checkRange(first, mid)
	checkRange(mid, last)
	if first.Equal(mid) {
		return last
	}
	if mid.Equal(last) {
		return first
	}
	d := word.Digits[W]()
	left, right := mid.Diff(first), last.Diff(mid)
	ret := first.Add(right)

	switch {
	case left <= d:
		saved := getWord(first, left)
		ShiftLeft(first, last, left)
		writeBits(ret, saved, left)
	case right <= d:
		saved := getWord(mid, right)
		ShiftRight(first, last, right)
		writeBits(first, saved, right)
	case min(left, right) <= rotateBufferWords*d:
		var buf [rotateBufferWords]W
		tmp := Begin(buf[:])
		if left <= right {
			Copy(first, mid, tmp)
			Copy(mid, last, first)
			Copy(tmp, tmp.Add(left), ret)
		} else {
			Copy(mid, last, tmp)
			CopyBackward(first, mid, last)
			Copy(tmp, tmp.Add(right), first)
		}
	default:
		rotateSwap(first, mid, last)
	}
	return ret
}

// rotateSwap rotates by repeatedly swapping the front of the range with an
// equally long block starting at mid. Every pass moves forward.
func rotateSwap[W word.Word](first, mid, last Iterator[W]) {
	for !first.Equal(mid) && !mid.Equal(last) {
		left, right := mid.Diff(first), last.Diff(mid)
		if left <= right {
			SwapRanges(first, mid, mid)
			first, mid = mid, mid.Add(left)
		} else {
			SwapRanges(first, first.Add(right), mid)
			first = first.Add(right)
		}
	}
}
