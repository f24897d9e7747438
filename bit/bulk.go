package bit

import (
	"github.com/hupe1980/bitseq/internal/simd"
	"github.com/hupe1980/bitseq/word"
)

// Whole-word body operations. A []uint64 run is handed to the simd kernels;
// other widths use the scalar loop. Both produce identical results.

func fillWords[W word.Word](dst []W, v W) {
	if w64, ok := any(dst).([]uint64); ok {
		simd.FillWords(w64, uint64(v))
		return
	}
	if v == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = v
	}
}

func popcountWords[W word.Word](words []W) int {
	if w64, ok := any(words).([]uint64); ok {
		return simd.PopcountWords(w64)
	}
	n := 0
	for _, w := range words {
		n += word.Popcount(w)
	}
	return n
}

// indexWordWith returns the index of the first word holding a bit equal to v, or -1.
func indexWordWith[W word.Word](words []W, v Value) int {
	if w64, ok := any(words).([]uint64); ok {
		if v == One {
			return simd.IndexNonZero(w64)
		}
		return simd.IndexNotAllOnes(w64)
	}
	absent := pattern[W](v.Not())
	for i, w := range words {
		if w != absent {
			return i
		}
	}
	return -1
}
