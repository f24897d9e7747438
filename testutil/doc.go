// Package testutil provides testing utilities for bitseq.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit patterns, packing them into
// words of any width, and reference implementations of the bit algorithms
// over plain []bool slices.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(200, 0.5)  // each bit set with probability 0.5
//	runs := rng.Runs(200, 16)    // alternating runs of up to 16 equal bits
//
// # Packing
//
//	words := testutil.Pack[uint16](bits)
//	back := testutil.Unpack(words, len(bits))
//
// # Oracles
//
//	want := slices.Clone(bits)
//	testutil.Rotate(want, 3, 40, 120)
package testutil
