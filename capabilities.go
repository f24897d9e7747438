package bitseq

import (
	"github.com/hupe1980/bitseq/internal/simd"
	"github.com/hupe1980/bitseq/word"
)

// CapabilityInfo describes the kernels chosen for this process.
type CapabilityInfo struct {
	// ISA is the instruction set used for []uint64 bulk kernels.
	ISA string
	// Kernels names the single-word primitive set, "native" or "software".
	Kernels string
	// Overridden reports whether BITSEQ_SIMD selected the ISA.
	Overridden bool
}

// Capabilities reports the kernel selection made at package init.
func Capabilities() CapabilityInfo {
	return CapabilityInfo{
		ISA:        simd.ActiveISA().String(),
		Kernels:    word.Active().Name,
		Overridden: simd.IsOverridden(),
	}
}
