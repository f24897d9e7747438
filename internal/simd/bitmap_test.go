package simd

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndWords(t *testing.T) {
	tests := []struct {
		name string
		dst  []uint64
		src  []uint64
		want []uint64
	}{
		{
			name: "Empty",
			dst:  []uint64{},
			src:  []uint64{},
			want: []uint64{},
		},
		{
			name: "Single word",
			dst:  []uint64{0xFF00FF00FF00FF00},
			src:  []uint64{0x0F0F0F0F0F0F0F0F},
			want: []uint64{0x0F000F000F000F00},
		},
		{
			name: "All ones AND all zeros",
			dst:  []uint64{^uint64(0), ^uint64(0)},
			src:  []uint64{0, 0},
			want: []uint64{0, 0},
		},
		{
			name: "5 words (unrolled + tail)",
			dst:  []uint64{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			src:  []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
			want: []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint64, len(tt.dst))
			copy(dst, tt.dst)
			AndWords(dst, tt.src)
			for i := range dst {
				if dst[i] != tt.want[i] {
					t.Errorf("index %d: got 0x%X, want 0x%X", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestAndNotWords(t *testing.T) {
	tests := []struct {
		name string
		dst  []uint64
		src  []uint64
		want []uint64
	}{
		{
			name: "Single word",
			dst:  []uint64{0xFF00FF00FF00FF00},
			src:  []uint64{0x0F0F0F0F0F0F0F0F},
			want: []uint64{0xF000F000F000F000},
		},
		{
			name: "Clear all (ANDNOT with all ones)",
			dst:  []uint64{^uint64(0), ^uint64(0)},
			src:  []uint64{^uint64(0), ^uint64(0)},
			want: []uint64{0, 0},
		},
		{
			name: "5 words (unrolled + tail)",
			dst:  []uint64{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			src:  []uint64{0x0F, 0xF0, 0x55, 0xAA, 0xFF},
			want: []uint64{0xF0, 0x0F, 0xAA, 0x55, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint64, len(tt.dst))
			copy(dst, tt.dst)
			AndNotWords(dst, tt.src)
			for i := range dst {
				if dst[i] != tt.want[i] {
					t.Errorf("index %d: got 0x%X, want 0x%X", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestOrXorNotWords(t *testing.T) {
	dst := []uint64{0xFF00FF00FF00FF00, 0, 1, 2, 3}
	src := []uint64{0x0F0F0F0F0F0F0F0F, ^uint64(0), 1, 1, 1}

	or := append([]uint64(nil), dst...)
	OrWords(or, src)
	assert.Equal(t, []uint64{0xFF0FFF0FFF0FFF0F, ^uint64(0), 1, 3, 3}, or)

	xor := append([]uint64(nil), dst...)
	XorWords(xor, src)
	assert.Equal(t, []uint64{0xF00FF00FF00FF00F, ^uint64(0), 0, 3, 2}, xor)

	not := append([]uint64(nil), dst...)
	NotWords(not)
	assert.Equal(t, []uint64{0x00FF00FF00FF00FF, ^uint64(0), ^uint64(1), ^uint64(2), ^uint64(3)}, not)
}

func TestFillWords(t *testing.T) {
	dst := []uint64{1, 2, 3}
	FillWords(dst, ^uint64(0))
	assert.Equal(t, []uint64{^uint64(0), ^uint64(0), ^uint64(0)}, dst)
	FillWords(dst, 0)
	assert.Equal(t, []uint64{0, 0, 0}, dst)
}

func TestPopcountGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, x := range []uint64{0, 1, ^uint64(0), 0x8000000000000000, 0x5555555555555555} {
		assert.Equal(t, bits.OnesCount64(x), PopcountGeneric(x), "x=%#x", x)
	}
	for range 1000 {
		x := rng.Uint64()
		require.Equal(t, bits.OnesCount64(x), PopcountGeneric(x), "x=%#x", x)
	}
}

// Both kernel sets must agree on every input.
func TestKernelSetsEquivalent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := range 37 {
		words := make([]uint64, n)
		for i := range words {
			switch rng.Intn(3) {
			case 0:
				words[i] = 0
			case 1:
				words[i] = ^uint64(0)
			default:
				words[i] = rng.Uint64()
			}
		}
		assert.Equal(t, popcountWordsGeneric(words), popcountWordsNative(words), "n=%d", n)
		assert.Equal(t, indexNonZeroGeneric(words), indexNonZeroUnrolled(words), "n=%d", n)
		assert.Equal(t, indexNotAllOnesGeneric(words), indexNotAllOnesUnrolled(words), "n=%d", n)
	}
}

func TestIndexScans(t *testing.T) {
	tests := []struct {
		name       string
		words      []uint64
		nonZero    int
		notAllOnes int
		wantPopcnt int
	}{
		{name: "Empty", words: nil, nonZero: -1, notAllOnes: -1, wantPopcnt: 0},
		{name: "All zero", words: make([]uint64, 9), nonZero: -1, notAllOnes: 0, wantPopcnt: 0},
		{name: "Tail hit", words: []uint64{0, 0, 0, 0, 0, 0, 8}, nonZero: 6, notAllOnes: 0, wantPopcnt: 1},
		{
			name:       "Ones then hole",
			words:      []uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0) &^ 2},
			nonZero:    0,
			notAllOnes: 4,
			wantPopcnt: 319,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nonZero, IndexNonZero(tt.words))
			assert.Equal(t, tt.notAllOnes, IndexNotAllOnes(tt.words))
			assert.Equal(t, tt.wantPopcnt, PopcountWords(tt.words))
		})
	}
}

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, POPCNT, NEON} {
		got, ok := ParseISA(" " + isa.String() + " ")
		require.True(t, ok)
		assert.Equal(t, isa, got)
	}
	_, ok := ParseISA("avx9000")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ISA(99).String())
	assert.True(t, isISAAvailable(Generic))
	assert.True(t, isISAAvailable(ActiveISA()))
}

func TestSelectBestISA(t *testing.T) {
	best := selectBestISA()

	assert.True(t, isISAAvailable(best))
	switch {
	case HasPOPCNT():
		assert.Equal(t, POPCNT, best)
	case HasASIMD():
		assert.Equal(t, NEON, best)
	default:
		assert.Equal(t, Generic, best)
	}
	if !IsOverridden() {
		assert.Equal(t, best, ActiveISA())
	}
}
