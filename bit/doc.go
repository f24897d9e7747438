// Package bit addresses the individual bits of a packed word slice as the
// elements of a random-access sequence and provides word-granular bulk
// algorithms over such sequences.
//
// # Addressing model
//
//   - Value is a standalone bit (Zero or One).
//   - Reference is a borrowed handle to one bit of one word.
//   - Pointer is a nil-able, arithmetic-capable handle producing References.
//   - Iterator is a (word index, in-word offset) cursor over a []W.
//
// None of them own memory. A Reference, Pointer or Iterator is bound to the
// slice it was created from; after the owner reallocates that slice (for
// example when a Vector grows) the handle keeps pointing at the old array.
//
// # Algorithms
//
// Fill, Count, Find, Equal, Copy, CopyBackward, Reverse, ShiftLeft,
// ShiftRight, Rotate, Transform, Transform2, SwapRanges and Search take
// half-open iterator ranges [first, last). Each splits the range into a
// partial leading word, a run of whole words and a partial trailing word,
// blends at the boundaries and never writes a bit outside the range.
//
// # Preconditions
//
// Ranges must satisfy first <= last and both ends must belong to the same
// slice. Violations are checked only when built with -tags bitseqdebug;
// otherwise the result is undefined, as with the slice expressions the
// algorithms are built on.
package bit
