package simd

import "math/bits"

// ==============================================================================
// Word-slice kernels
// ==============================================================================
//
// These operations back the aligned whole-word body of the bit algorithms.
// They operate on []uint64 word runs. The caller guarantees len(dst) == len(src).

// Kernel function pointers for word operations.
// Generic implementations are the default; setKernels overrides them
// once the active ISA is known.
var (
	kernelAndWords        = andWordsGeneric
	kernelAndNotWords     = andNotWordsGeneric
	kernelOrWords         = orWordsGeneric
	kernelXorWords        = xorWordsGeneric
	kernelNotWords        = notWordsGeneric
	kernelPopcountWords   = popcountWordsGeneric
	kernelIndexNonZero    = indexNonZeroGeneric
	kernelIndexNotAllOnes = indexNotAllOnesGeneric
)

// setKernels installs the kernel set for isa.
func setKernels(isa ISA) {
	switch isa {
	case POPCNT, NEON:
		kernelPopcountWords = popcountWordsNative
		kernelIndexNonZero = indexNonZeroUnrolled
		kernelIndexNotAllOnes = indexNotAllOnesUnrolled
	default:
		kernelPopcountWords = popcountWordsGeneric
		kernelIndexNonZero = indexNonZeroGeneric
		kernelIndexNotAllOnes = indexNotAllOnesGeneric
	}
}

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src)
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src)
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src)
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src)
}

// NotWords performs dst[i] = ^dst[i] for all words.
func NotWords(dst []uint64) {
	kernelNotWords(dst)
}

// PopcountWords counts all set bits across words.
// Uses the POPCNT/CNT instructions on supported platforms.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// IndexNonZero returns the index of the first word that is not zero, or -1.
func IndexNonZero(words []uint64) int {
	return kernelIndexNonZero(words)
}

// IndexNotAllOnes returns the index of the first word that has a clear bit, or -1.
func IndexNotAllOnes(words []uint64) int {
	return kernelIndexNotAllOnes(words)
}

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	if v == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = v
	}
}

// PopcountGeneric counts the set bits of x without relying on a hardware
// population count instruction.
func PopcountGeneric(x uint64) int {
	const (
		m1  = 0x5555555555555555
		m2  = 0x3333333333333333
		m4  = 0x0f0f0f0f0f0f0f0f
		h01 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andWordsGeneric(dst, src []uint64) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ^src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func notWordsGeneric(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += PopcountGeneric(w)
	}
	return count
}

func indexNonZeroGeneric(words []uint64) int {
	for i, w := range words {
		if w != 0 {
			return i
		}
	}
	return -1
}

func indexNotAllOnesGeneric(words []uint64) int {
	for i, w := range words {
		if w != ^uint64(0) {
			return i
		}
	}
	return -1
}

// ==============================================================================
// Native implementations (math/bits intrinsics)
// ==============================================================================

func popcountWordsNative(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func indexNonZeroUnrolled(words []uint64) int {
	i := 0
	for ; i+4 <= len(words); i += 4 {
		if words[i]|words[i+1]|words[i+2]|words[i+3] != 0 {
			break
		}
	}
	for ; i < len(words); i++ {
		if words[i] != 0 {
			return i
		}
	}
	return -1
}

func indexNotAllOnesUnrolled(words []uint64) int {
	i := 0
	for ; i+4 <= len(words); i += 4 {
		if words[i]&words[i+1]&words[i+2]&words[i+3] != ^uint64(0) {
			break
		}
	}
	for ; i < len(words); i++ {
		if words[i] != ^uint64(0) {
			return i
		}
	}
	return -1
}
