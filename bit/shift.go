package bit

import "github.com/hupe1980/bitseq/word"

// Traversal selects how an algorithm is allowed to walk its range.
type Traversal uint8

const (
	// RandomAccess allows jumps and backward passes; the body is moved with
	// bulk word copies.
	RandomAccess Traversal = iota
	// ForwardOnly restricts the algorithm to a single front-to-back walk.
	ForwardOnly
)

// String implements fmt.Stringer.
func (t Traversal) String() string {
	switch t {
	case RandomAccess:
		return "random-access"
	case ForwardOnly:
		return "forward-only"
	default:
		return "unknown"
	}
}

// ShiftLeft moves every bit of [first, last) n positions towards first and
// clears the n vacated bits at the end. It returns the new logical end,
// first + (last-first-n). n <= 0 leaves the range unchanged and returns last;
// n >= last-first clears the range and returns first.
func ShiftLeft[W word.Word](first, last Iterator[W], n int) Iterator[W] {
	return ShiftLeftWith(first, last, n, RandomAccess)
}

// ShiftLeftWith is ShiftLeft with an explicit traversal strategy.
func ShiftLeftWith[W word.Word](first, last Iterator[W], n int, t Traversal) Iterator[W] {
	checkRange(first, last)
	if n <= 0 {
		return last
	}
	length := last.Diff(first)
	if n >= length {
		Fill(first, last, Zero)
		return first
	}

	newEnd := first.Add(length - n)
	if t == ForwardOnly {
		shiftLeftForward(first, last, n)
	} else {
		Copy(first.Add(n), last, first)
	}
	Fill(newEnd, last, Zero)
	return newEnd
}

// shiftLeftForward moves the bits one destination word at a time, reading
// each chunk ahead of the position it overwrites.
func shiftLeftForward[W word.Word](first, last Iterator[W], n int) {
	d := word.Digits[W]()
	dst, src := first, first.Add(n)
	for remaining := last.Diff(src); remaining > 0; {
		k := min(d-dst.offset, remaining)
		writeBits(dst, getWord(src, k), k)
		dst, src = dst.Add(k), src.Add(k)
		remaining -= k
	}
}

// ShiftRight moves every bit of [first, last) n positions towards last and
// clears the n vacated bits at the front. It returns the new logical begin,
// first + n. n <= 0 leaves the range unchanged and returns first;
// n >= last-first clears the range and returns last.
func ShiftRight[W word.Word](first, last Iterator[W], n int) Iterator[W] {
	return ShiftRightWith(first, last, n, RandomAccess)
}

// ShiftRightWith is ShiftRight with an explicit traversal strategy. The
// forward-only variant rotates the surviving bits into place with forward
// block swaps instead of copying backwards.
func ShiftRightWith[W word.Word](first, last Iterator[W], n int, t Traversal) Iterator[W] {
	checkRange(first, last)
	if n <= 0 {
		return first
	}
	length := last.Diff(first)
	if n >= length {
		Fill(first, last, Zero)
		return last
	}

	newFirst := first.Add(n)
	if t == ForwardOnly {
		rotateSwap(first, first.Add(length-n), last)
	} else {
		CopyBackward(first, last.Sub(n), last)
	}
	Fill(first, newFirst, Zero)
	return newFirst
}
