// Package simd provides the bulk word kernels used by the bit algorithms.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: NEON (CNT)
//
// Runtime CPU feature detection selects the kernel set. Set BITSEQ_SIMD=generic
// to force the portable fallback; every kernel set returns identical results.
//
// # Operations
//
//   - Bitwise: AndWords, AndNotWords, OrWords, XorWords, NotWords
//   - Reduction: PopcountWords
//   - Scan: IndexNonZero, IndexNotAllOnes
//   - Fill: FillWords
package simd
