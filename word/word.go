package word

import "math/bits"

// Word is the set of unsigned integer types that can back a bit sequence.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Digits returns the bit width of W.
func Digits[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// Ones returns a word with every bit set.
func Ones[W Word]() W {
	return ^W(0)
}

// LowMask returns a word with the n least significant bits set.
// n must be in [0, Digits[W]()].
func LowMask[W Word](n int) W {
	// Shifting by the full width yields 0 in Go, so n == digits wraps to all ones.
	return (W(1) << n) - 1
}

// RangeMask returns a word with bits start .. start+n-1 set.
func RangeMask[W Word](start, n int) W {
	return LowMask[W](n) << start
}

// Popcount returns the number of set bits in w.
func Popcount[W Word](w W) int {
	return active.Popcount(uint64(w))
}

// TrailingZeros returns the number of zero bits below the lowest set bit.
// It returns Digits[W]() for w == 0.
func TrailingZeros[W Word](w W) int {
	if w == 0 {
		return Digits[W]()
	}
	return active.TrailingZeros(uint64(w))
}

// LeadingZeros returns the number of zero bits above the highest set bit.
// It returns Digits[W]() for w == 0.
func LeadingZeros[W Word](w W) int {
	return active.LeadingZeros(uint64(w)) - (64 - Digits[W]())
}

// FieldExtract returns the n bits of w starting at start, right-justified.
// It returns 0 when n <= 0 or start >= Digits[W]().
func FieldExtract[W Word](w W, start, n int) W {
	d := Digits[W]()
	if n <= 0 || start >= d {
		return 0
	}
	return (w >> start) & LowMask[W](min(n, d))
}

// Blend returns a with its n-bit field at start replaced by the same field of b.
// Bits of a outside the field are preserved. start+n must not exceed Digits[W]().
func Blend[W Word](a, b W, start, n int) W {
	return BlendMask(a, b, RangeMask[W](start, n))
}

// BlendMask returns the bits of b where m is set and the bits of a elsewhere.
func BlendMask[W Word](a, b, m W) W {
	return a ^ ((a ^ b) & m)
}

// Exchange swaps the n-bit field at start between *a and *b.
func Exchange[W Word](a, b *W, start, n int) {
	if a == b || n <= 0 {
		return
	}
	x := (*a ^ *b) & RangeMask[W](start, n)
	*a ^= x
	*b ^= x
}

// ExchangeAt swaps the n-bit field at startA in *a with the n-bit field at
// startB in *b. a and b may point to the same word; both fields are read
// before either is written, so disjoint fields of one word swap correctly.
func ExchangeAt[W Word](a, b *W, startA, startB, n int) {
	if n <= 0 {
		return
	}
	if startA == startB {
		Exchange(a, b, startA, n)
		return
	}
	fa := FieldExtract(*a, startA, n)
	fb := FieldExtract(*b, startB, n)
	if a == b {
		w := Blend(*a, fb<<startA, startA, n)
		*a = Blend(w, fa<<startB, startB, n)
		return
	}
	*a = Blend(*a, fb<<startA, startA, n)
	*b = Blend(*b, fa<<startB, startB, n)
}

// Reverse returns w with its bit order reversed end to end.
func Reverse[W Word](w W) W {
	d := Digits[W]()
	if d&(d-1) != 0 {
		return reverseLoop(w)
	}
	return W(active.Reverse(uint64(w)) >> (64 - d))
}

// ShiftPairLeft shifts the double word src:dst left by n and returns the
// upper half: dst<<n with the vacated low bits taken from the top of src.
// For n >= Digits[W]() this differs from a plain dst<<n, which would be 0:
// the result continues into src (src << (n-digits)) and is 0 only once n
// reaches twice the width.
func ShiftPairLeft[W Word](dst, src W, n int) W {
	d := Digits[W]()
	switch {
	case n <= 0:
		return dst
	case n < d:
		return dst<<n | src>>(d-n)
	case n < 2*d:
		return src << (n - d)
	default:
		return 0
	}
}

// ShiftPairRight shifts the double word src:dst right by n and returns the
// lower half: dst>>n with the vacated high bits taken from the bottom of src.
// For n >= Digits[W]() this differs from a plain dst>>n, which would be 0:
// the result continues into src (src >> (n-digits)) and is 0 only once n
// reaches twice the width.
func ShiftPairRight[W Word](dst, src W, n int) W {
	d := Digits[W]()
	switch {
	case n <= 0:
		return dst
	case n < d:
		return dst>>n | src<<(d-n)
	case n < 2*d:
		return src >> (n - d)
	default:
		return 0
	}
}

func reverseLoop[W Word](w W) W {
	var r W
	for range Digits[W]() {
		r = r<<1 | w&1
		w >>= 1
	}
	return r
}

// reverseButterfly reverses w in log2(digits) swap rounds. Digits[W]() must
// be a power of two.
func reverseButterfly[W Word](w W) W {
	mask := ^W(0)
	for s := Digits[W]() >> 1; s > 0; s >>= 1 {
		mask ^= mask << s
		w = ((w >> s) & mask) | ((w << s) &^ mask)
	}
	return w
}
