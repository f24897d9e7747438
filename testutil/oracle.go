package testutil

import "slices"

// The functions below are straightforward one-bit-at-a-time versions of the
// bit algorithms. Ranges are [first, last) indexes into b.

// Fill sets b[first:last] to v.
func Fill(b []bool, first, last int, v bool) {
	for i := first; i < last; i++ {
		b[i] = v
	}
}

// Count returns how many bits of b[first:last] equal v.
func Count(b []bool, first, last int, v bool) int {
	n := 0
	for _, x := range b[first:last] {
		if x == v {
			n++
		}
	}
	return n
}

// Find returns the index of the first bit equal to v in b[first:last], or last.
func Find(b []bool, first, last int, v bool) int {
	for i := first; i < last; i++ {
		if b[i] == v {
			return i
		}
	}
	return last
}

// Copy copies src[first:last] into dst at dFirst as if through a temporary
// buffer, so overlapping ranges behave like memmove.
func Copy(dst, src []bool, first, last, dFirst int) int {
	tmp := slices.Clone(src[first:last])
	return dFirst + copy(dst[dFirst:], tmp)
}

// Reverse reverses b[first:last].
func Reverse(b []bool, first, last int) {
	slices.Reverse(b[first:last])
}

// Rotate rotates b[first:last] so that b[mid] comes first and returns the
// new index of the bit originally at first.
func Rotate(b []bool, first, mid, last int) int {
	tmp := append(slices.Clone(b[mid:last]), b[first:mid]...)
	copy(b[first:], tmp)
	return first + (last - mid)
}

// ShiftLeft moves b[first+n:last] to first, zero-fills the tail and returns
// the new end.
func ShiftLeft(b []bool, first, last, n int) int {
	if n <= 0 {
		return last
	}
	if n >= last-first {
		Fill(b, first, last, false)
		return first
	}
	end := Copy(b, b, first+n, last, first)
	Fill(b, end, last, false)
	return end
}

// ShiftRight moves b[first:last-n] to first+n, zero-fills the head and
// returns the new begin.
func ShiftRight(b []bool, first, last, n int) int {
	if n <= 0 {
		return first
	}
	if n >= last-first {
		Fill(b, first, last, false)
		return last
	}
	Copy(b, b, first, last-n, first+n)
	Fill(b, first, first+n, false)
	return first + n
}

// Search returns the first index in b[first:last] where pattern occurs, or last.
func Search(b []bool, first, last int, pattern []bool) int {
	for i := first; i+len(pattern) <= last; i++ {
		if slices.Equal(b[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return last
}
