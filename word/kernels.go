package word

import (
	"math/bits"

	"github.com/hupe1980/bitseq/internal/simd"
)

// Kernels is the hardware-sensitive subset of the word primitives.
// Every implementation operates on a 64-bit value and must return the
// same results as Software.
type Kernels struct {
	Name          string
	Popcount      func(uint64) int
	TrailingZeros func(uint64) int // 64 for zero
	LeadingZeros  func(uint64) int // 64 for zero
	Reverse       func(uint64) uint64
}

// Software is the portable kernel set. It relies on no CPU instruction
// beyond plain shifts, masks and adds.
var Software = Kernels{
	Name:          "software",
	Popcount:      simd.PopcountGeneric,
	TrailingZeros: trailingZerosLoop,
	LeadingZeros:  leadingZerosLoop,
	Reverse:       reverseButterfly[uint64],
}

// Native is the kernel set built on the math/bits intrinsics. The wrappers
// keep the calls direct so the compiler lowers them to single instructions.
var Native = Kernels{
	Name:          "native",
	Popcount:      func(x uint64) int { return bits.OnesCount64(x) },
	TrailingZeros: func(x uint64) int { return bits.TrailingZeros64(x) },
	LeadingZeros:  func(x uint64) int { return bits.LeadingZeros64(x) },
	Reverse:       func(x uint64) uint64 { return bits.Reverse64(x) },
}

var active = Software

func init() {
	if simd.ActiveISA() != simd.Generic {
		active = Native
	}
}

// Active returns the kernel set selected at init.
func Active() Kernels {
	return active
}

func trailingZerosLoop(x uint64) int {
	if x == 0 {
		return 64
	}
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

func leadingZerosLoop(x uint64) int {
	if x == 0 {
		return 64
	}
	n := 0
	for x&(1<<63) == 0 {
		x <<= 1
		n++
	}
	return n
}
