package testutil

import "math/bits"

// Unsigned matches the storage word types. It mirrors word.Word so that
// packages under test may import testutil without an import cycle.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of W.
func Width[W Unsigned]() int {
	return bits.Len64(uint64(^W(0)))
}

// Pack stores b into the fewest words of type W, bit i of the sequence at
// bit i%width of word i/width. Bits past len(b) are zero.
func Pack[W Unsigned](b []bool) []W {
	d := Width[W]()
	out := make([]W, (len(b)+d-1)/d)
	for i, v := range b {
		if v {
			out[i/d] |= W(1) << (i % d)
		}
	}
	return out
}

// Unpack returns the first n bits of words.
func Unpack[W Unsigned](words []W, n int) []bool {
	d := Width[W]()
	out := make([]bool, n)
	for i := range out {
		out[i] = words[i/d]>>(i%d)&1 == 1
	}
	return out
}

// Format renders b as '0' and '1' characters.
func Format(b []bool) string {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = '0'
		if v {
			out[i] = '1'
		}
	}
	return string(out)
}

// Parse is the inverse of Format. Characters other than '0' and '1' are
// skipped.
func Parse(s string) []bool {
	out := make([]bool, 0, len(s))
	for _, c := range s {
		switch c {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		}
	}
	return out
}
