package interop

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/testutil"
	"github.com/hupe1980/bitseq/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaring(t *testing.T) {
	t.Run("uint8", testRoaring[uint8])
	t.Run("uint64", testRoaring[uint64])
}

func testRoaring[W word.Word](t *testing.T) {
	rng := testutil.NewRNG(1)

	tests := []struct {
		name string
		bits []bool
	}{
		{"empty", nil},
		{"all zero", make([]bool, 300)},
		{"random", rng.Bools(1000, 0.3)},
		{"runs", rng.Runs(1000, 90)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Start at an unaligned offset so positions are relative.
			src := append([]bool{true, true, true}, tt.bits...)
			words := testutil.Pack[W](src)
			first, last := bit.Begin(words).Add(3), bit.Begin(words).Add(len(src))

			rb, err := ToRoaring(first, last)
			require.NoError(t, err)
			assert.Equal(t, uint64(testutil.Count(tt.bits, 0, len(tt.bits), true)), rb.GetCardinality())
			for i, v := range tt.bits {
				require.Equal(t, v, rb.Contains(uint32(i)), "position %d", i)
			}

			back := make([]W, len(words))
			for i := range back {
				back[i] = ^W(0)
			}
			bfirst, blast := bit.Begin(back).Add(3), bit.Begin(back).Add(len(src))
			require.NoError(t, FromRoaring(rb, bfirst, blast))
			assert.True(t, bit.Equal(first, last, bfirst))
			// Bits before the range are untouched.
			assert.Equal(t, 3, bit.Count(bit.Begin(back), bfirst, bit.One))
		})
	}
}

func TestFromRoaringRejectsLargeMember(t *testing.T) {
	words := []uint16{0xffff}
	rb := roaring.BitmapOf(1, 16)

	err := FromRoaring(rb, bit.Begin(words), bit.End(words))

	require.ErrorIs(t, err, ErrPositionOutOfRange)
	assert.Equal(t, []uint16{0xffff}, words)
}

func TestBitSet(t *testing.T) {
	t.Run("uint16", testBitSet[uint16])
	t.Run("uint32", testBitSet[uint32])
	t.Run("uint64", testBitSet[uint64])
}

func testBitSet[W word.Word](t *testing.T) {
	rng := testutil.NewRNG(2)
	src := rng.Bools(500, 0.5)
	words := testutil.Pack[W](src)

	for _, r := range [][2]int{{0, 500}, {5, 5}, {7, 70}, {64, 128}, {13, 499}} {
		first, last := bit.Begin(words).Add(r[0]), bit.Begin(words).Add(r[1])

		bs := ToBitSet(first, last)

		require.Equal(t, uint(r[1]-r[0]), bs.Len())
		assert.Equal(t, uint(bit.Count(first, last, bit.One)), bs.Count())
		for i := r[0]; i < r[1]; i++ {
			require.Equal(t, src[i], bs.Test(uint(i-r[0])), "bit %d of %v", i, r)
		}

		dst := make([]W, len(words))
		dfirst := bit.Begin(dst).Add(r[0])
		n := FromBitSet(bs, dfirst, dfirst.Add(r[1]-r[0]))
		assert.Equal(t, r[1]-r[0], n)
		assert.True(t, bit.Equal(first, last, dfirst))
	}
}

func TestFromBitSetShorterThanRange(t *testing.T) {
	bs := bitset.New(10)
	bs.Set(0).Set(9)
	words := []uint8{0xff, 0xff, 0xff}

	n := FromBitSet(bs, bit.Begin(words).Add(2), bit.Begin(words).Add(22))

	assert.Equal(t, 10, n)
	// Bits 2..11 come from bs; 12..21 are cleared; 0, 1, 22, 23 are untouched.
	assert.Equal(t, "11100000000100000000001", bit.String(bit.Begin(words), bit.Begin(words).Add(23)))
}
