// Package interop converts bit ranges to and from the bitmap types used
// elsewhere in the Go ecosystem.
//
// A range [first, last) maps to a set of positions relative to first:
// position i is a member exactly when bit first+i is set.
//
//	rb, err := interop.ToRoaring(v.Begin(), v.End())
//	bs := interop.ToBitSet(v.Begin(), v.End())
package interop
