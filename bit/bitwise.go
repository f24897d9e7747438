package bit

import (
	"github.com/hupe1980/bitseq/internal/simd"
	"github.com/hupe1980/bitseq/word"
)

// AndAssign sets every bit of [first, last) to itself AND the matching bit
// of the range starting at src.
func AndAssign[W word.Word](first, last, src Iterator[W]) {
	transform2(first, last, src, first, func(a, b W) W { return a & b }, bulkOf[W](simd.AndWords))
}

// OrAssign sets every bit of [first, last) to itself OR the matching bit of
// the range starting at src.
func OrAssign[W word.Word](first, last, src Iterator[W]) {
	transform2(first, last, src, first, func(a, b W) W { return a | b }, bulkOf[W](simd.OrWords))
}

// XorAssign sets every bit of [first, last) to itself XOR the matching bit
// of the range starting at src.
func XorAssign[W word.Word](first, last, src Iterator[W]) {
	transform2(first, last, src, first, func(a, b W) W { return a ^ b }, bulkOf[W](simd.XorWords))
}

// AndNotAssign clears every bit of [first, last) whose matching bit in the
// range starting at src is set.
func AndNotAssign[W word.Word](first, last, src Iterator[W]) {
	transform2(first, last, src, first, func(a, b W) W { return a &^ b }, bulkOf[W](simd.AndNotWords))
}

// Not flips every bit of [first, last).
func Not[W word.Word](first, last Iterator[W]) {
	if w64, ok := any(first.words).([]uint64); ok && first.offset == 0 && last.index > first.index {
		simd.NotWords(w64[first.index:last.index])
		first = first.Add((last.index - first.index) * 64)
	}
	Transform(first, last, first, func(w W) W { return ^w })
}

// bulkOf adapts a []uint64 kernel to W, or returns nil when W is another
// word type.
func bulkOf[W word.Word](kernel func(dst, src []uint64)) func(dst, src []W) {
	var zero []W
	if _, ok := any(zero).([]uint64); !ok {
		return nil
	}
	return func(dst, src []W) {
		kernel(any(dst).([]uint64), any(src).([]uint64))
	}
}
