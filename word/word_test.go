package word

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bit-by-bit reference implementations.

func popcountRef[W Word](w W) int {
	n := 0
	for i := range Digits[W]() {
		n += int(w>>i) & 1
	}
	return n
}

func trailingZerosRef[W Word](w W) int {
	for i := range Digits[W]() {
		if w>>i&1 != 0 {
			return i
		}
	}
	return Digits[W]()
}

func leadingZerosRef[W Word](w W) int {
	d := Digits[W]()
	for i := d - 1; i >= 0; i-- {
		if w>>i&1 != 0 {
			return d - 1 - i
		}
	}
	return d
}

func extractRef[W Word](w W, start, n int) W {
	var r W
	for i := range n {
		if start+i < Digits[W]() && w>>(start+i)&1 != 0 {
			r |= W(1) << i
		}
	}
	return r
}

func blendRef[W Word](a, b W, start, n int) W {
	for i := start; i < start+n; i++ {
		a = a&^(W(1)<<i) | b&(W(1)<<i)
	}
	return a
}

func shiftPairLeftRef[W Word](dst, src W, n int) W {
	// Bits of the double word src:dst, low half first.
	d := Digits[W]()
	var r W
	for i := range d {
		j := i - n // source bit index within src:dst viewed as dst above src
		var b W
		switch {
		case j >= 0:
			b = dst >> j & 1
		case j >= -d:
			b = src >> (d + j) & 1
		}
		r |= b << i
	}
	return r
}

func shiftPairRightRef[W Word](dst, src W, n int) W {
	d := Digits[W]()
	var r W
	for i := range d {
		j := i + n
		var b W
		switch {
		case j < d:
			b = dst >> j & 1
		case j < 2*d:
			b = src >> (j - d) & 1
		}
		r |= b << i
	}
	return r
}

func randomWord[W Word](rng *rand.Rand) W {
	switch rng.Intn(4) {
	case 0:
		return 0
	case 1:
		return ^W(0)
	default:
		return W(rng.Uint64())
	}
}

func testPrimitives[W Word](t *testing.T) {
	rng := rand.New(rand.NewSource(int64(Digits[W]())))
	d := Digits[W]()

	t.Run("Masks", func(t *testing.T) {
		assert.Equal(t, W(0), LowMask[W](0))
		assert.Equal(t, ^W(0), LowMask[W](d))
		assert.Equal(t, W(0b111), LowMask[W](3))
		assert.Equal(t, W(0b1110), RangeMask[W](1, 3))
		assert.Equal(t, ^W(0), Ones[W]())
	})

	t.Run("Counts", func(t *testing.T) {
		assert.Equal(t, d, TrailingZeros(W(0)))
		assert.Equal(t, d, LeadingZeros(W(0)))
		for range 500 {
			w := randomWord[W](rng)
			require.Equal(t, popcountRef(w), Popcount(w), "w=%#x", w)
			require.Equal(t, trailingZerosRef(w), TrailingZeros(w), "w=%#x", w)
			require.Equal(t, leadingZerosRef(w), LeadingZeros(w), "w=%#x", w)
		}
	})

	t.Run("FieldExtract", func(t *testing.T) {
		w := randomWord[W](rng)
		assert.Equal(t, W(0), FieldExtract(w, 0, 0))
		assert.Equal(t, W(0), FieldExtract(w, d, 3))
		for start := 0; start < d; start++ {
			for n := 0; n <= d-start; n++ {
				w := randomWord[W](rng)
				require.Equal(t, extractRef(w, start, n), FieldExtract(w, start, n), "start=%d n=%d", start, n)
			}
		}
	})

	t.Run("Blend", func(t *testing.T) {
		for start := 0; start < d; start++ {
			for n := 0; n <= d-start; n++ {
				a, b := randomWord[W](rng), randomWord[W](rng)
				require.Equal(t, blendRef(a, b, start, n), Blend(a, b, start, n), "start=%d n=%d", start, n)
			}
		}
	})

	t.Run("ExchangeAt", func(t *testing.T) {
		for sa := 0; sa < d; sa++ {
			for sb := 0; sb < d; sb++ {
				n := min(d-sa, d-sb)
				if n > 1 {
					n = 1 + rng.Intn(n)
				}
				a0, b0 := randomWord[W](rng), randomWord[W](rng)
				a, b := a0, b0
				ExchangeAt(&a, &b, sa, sb, n)
				require.Equal(t, blendRef(a0, extractRef(b0, sb, n)<<sa, sa, n), a)
				require.Equal(t, blendRef(b0, extractRef(a0, sa, n)<<sb, sb, n), b)
			}
		}
	})

	t.Run("SelfExchange", func(t *testing.T) {
		w0 := randomWord[W](rng)
		w := w0
		Exchange(&w, &w, 1, d-1)
		assert.Equal(t, w0, w)
		ExchangeAt(&w, &w, 2, 2, d-2)
		assert.Equal(t, w0, w)

		// Swap the low and high halves of the same word.
		h := d / 2
		ExchangeAt(&w, &w, 0, h, h)
		assert.Equal(t, w0>>h|w0<<h, w)
	})

	t.Run("Reverse", func(t *testing.T) {
		assert.Equal(t, W(1)<<(d-1), Reverse(W(1)))
		for range 500 {
			w := randomWord[W](rng)
			want := reverseLoop(w)
			require.Equal(t, want, Reverse(w))
			require.Equal(t, want, reverseButterfly(w))
			require.Equal(t, w, Reverse(Reverse(w)))
		}
	})

	t.Run("ShiftPair", func(t *testing.T) {
		for n := 0; n <= 2*d+1; n++ {
			dst, src := randomWord[W](rng), randomWord[W](rng)
			require.Equal(t, shiftPairLeftRef(dst, src, n), ShiftPairLeft(dst, src, n), "n=%d", n)
			require.Equal(t, shiftPairRightRef(dst, src, n), ShiftPairRight(dst, src, n), "n=%d", n)
		}
		dst := randomWord[W](rng)
		assert.Equal(t, dst, ShiftPairLeft(dst, ^W(0), 0))
		assert.Equal(t, dst, ShiftPairRight(dst, ^W(0), 0))
		assert.Equal(t, W(0), ShiftPairLeft(dst, ^W(0), 2*d))

		// A full-width shift yields src, not the zero of a plain shift.
		src := randomWord[W](rng)
		assert.Equal(t, src, ShiftPairLeft(dst, src, d))
		assert.Equal(t, src, ShiftPairRight(dst, src, d))
		assert.Equal(t, src<<1, ShiftPairLeft(dst, src, d+1))
		assert.Equal(t, src>>1, ShiftPairRight(dst, src, d+1))
		assert.Equal(t, W(0), ShiftPairRight(dst, ^W(0), 2*d))
	})
}

func TestPrimitives(t *testing.T) {
	t.Run("uint8", testPrimitives[uint8])
	t.Run("uint16", testPrimitives[uint16])
	t.Run("uint32", testPrimitives[uint32])
	t.Run("uint64", testPrimitives[uint64])
}

type flags uint16

func TestNamedWordType(t *testing.T) {
	assert.Equal(t, 16, Digits[flags]())
	assert.Equal(t, flags(0x8000), Reverse(flags(1)))
	assert.Equal(t, 3, Popcount(flags(0b1011)))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 8, Digits[uint8]())
	assert.Equal(t, 16, Digits[uint16]())
	assert.Equal(t, 32, Digits[uint32]())
	assert.Equal(t, 64, Digits[uint64]())
}

// The software fallback must agree with the intrinsic kernels on every input.
func TestKernelsEquivalent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := []uint64{0, 1, ^uint64(0), 1 << 63, 0x00F0F0F0F0F0F0F0}
	for range 2000 {
		inputs = append(inputs, rng.Uint64(), rng.Uint64()>>uint(rng.Intn(64)))
	}
	for _, x := range inputs {
		require.Equal(t, Native.Popcount(x), Software.Popcount(x), "popcount %#x", x)
		require.Equal(t, Native.TrailingZeros(x), Software.TrailingZeros(x), "tzcnt %#x", x)
		require.Equal(t, Native.LeadingZeros(x), Software.LeadingZeros(x), "lzcnt %#x", x)
		require.Equal(t, Native.Reverse(x), Software.Reverse(x), "reverse %#x", x)
	}
	assert.Contains(t, []string{Software.Name, Native.Name}, Active().Name)
}
