// Package bitseq provides a growable sequence of bits stored in unsigned
// words of a chosen width.
//
// The heavy lifting lives in package bit, which implements the bit-addressing
// model (Value, Reference, Pointer, Iterator) and the range algorithms over
// any []W word slice. Vector is a thin owner of such a slice; every insert or
// erase is a resize followed by a bit shift and a fill or copy.
//
// # Quick Start
//
//	v := bitseq.FromString[uint8]("011111010010")
//	bit.Reverse(v.Begin(), v.End())
//	fmt.Println(v.DebugString()) // 01001011 1110
//
//	v.PushBack(bit.Zero)
//	v.Insert(v.Len(), 10, bit.One)
//
// # Word Width
//
// Vector[W] accepts uint8, uint16, uint32 and uint64 (and named types built on
// them). Results never depend on W; wider words process more bits per step.
// uint64 storage additionally runs the aligned body of bulk operations on
// the kernels selected for the current CPU, see Capabilities.
//
// # Errors
//
// Indexing methods follow slice semantics. At is the checked accessor and
// returns an *OutOfRangeError, which matches ErrOutOfRange under errors.Is.
// Front, Back and PopBack report ErrEmpty on an empty vector.
//
// Contract violations inside package bit, such as a range whose end precedes
// its begin, are checked only when built with the bitseqdebug tag.
//
// # Logging and Metrics
//
// A Vector is silent by default. WithLogger enables debug logging of buffer
// reallocations and WithMetricsCollector records growth, insert and erase
// activity.
package bitseq
