package bit_test

import (
	"slices"
	"testing"

	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/testutil"
	"github.com/hupe1980/bitseq/word"
	"github.com/stretchr/testify/require"
)

// totalBits is the storage size used by the oracle tests: 24 words of
// uint8 down to 3 words of uint64.
const totalBits = 192

func runWidths(t *testing.T, u8, u16, u32, u64 func(*testing.T)) {
	t.Helper()
	t.Run("uint8", u8)
	t.Run("uint16", u16)
	t.Run("uint32", u32)
	t.Run("uint64", u64)
}

// at returns the iterator to bit pos of words.
func at[W word.Word](words []W, pos int) bit.Iterator[W] {
	return bit.Begin(words).Add(pos)
}

// requireBits compares the packed words against the oracle bools.
func requireBits[W word.Word](t *testing.T, want []bool, words []W, msgAndArgs ...any) {
	t.Helper()
	got := testutil.Unpack(words, len(want))
	if !slices.Equal(want, got) {
		require.Equal(t, testutil.Format(want), testutil.Format(got), msgAndArgs...)
	}
}

// span is a sampled [first, last) range.
type span struct{ first, last int }

// spans returns every range in [0, totalBits) whose endpoints are within
// two bits of a word boundary of W, plus a seeded random sample. This
// covers every combination of leading/trailing partial words and the
// single-word case without an all-pairs blow-up.
func spans[W word.Word](rng *testutil.RNG, random int) []span {
	d := word.Digits[W]()
	var points []int
	for b := 0; b <= totalBits; b += d {
		for _, p := range []int{b - 2, b - 1, b, b + 1, b + 2} {
			if p >= 0 && p <= totalBits && (len(points) == 0 || points[len(points)-1] < p) {
				points = append(points, p)
			}
		}
	}
	var out []span
	for i, f := range points {
		for _, l := range points[i:] {
			out = append(out, span{f, l})
		}
	}
	for range random {
		f := rng.Intn(totalBits + 1)
		out = append(out, span{f, f + rng.Intn(totalBits-f+1)})
	}
	return out
}
