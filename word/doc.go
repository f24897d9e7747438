// Package word provides bit-twiddling primitives on a single unsigned word.
//
// All functions are generic over the Word constraint (uint8, uint16, uint32,
// uint64 and named types built on them) and are pure: they only produce the
// returned value or write through the explicit pointer arguments.
//
// # Kernels
//
// Population count, zero counts and whole-word reversal run through a
// Kernels strategy. The Software set is portable; the Native set uses the
// math/bits intrinsics (POPCNT, TZCNT/BSF, LZCNT/BSR, RBIT). Native is
// selected at init when internal/simd detects hardware support, and
// BITSEQ_SIMD=generic forces Software. Both sets return identical results.
//
// # Bit numbering
//
// Bit 0 is the least significant bit. A field (start, n) covers bits
// start .. start+n-1.
package word
