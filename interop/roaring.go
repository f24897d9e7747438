package interop

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/word"
)

var (
	// ErrRangeTooLarge is returned when a range holds more bits than a
	// 32-bit roaring bitmap can address.
	ErrRangeTooLarge = errors.New("interop: range exceeds 32-bit positions")

	// ErrPositionOutOfRange is returned when a bitmap member does not fit the
	// destination range.
	ErrPositionOutOfRange = errors.New("interop: bitmap position out of range")
)

// ToRoaring returns the positions of the set bits of [first, last) as a
// roaring bitmap. Runs of set bits are added as ranges, so long runs stay
// compact.
func ToRoaring[W word.Word](first, last bit.Iterator[W]) (*roaring.Bitmap, error) {
	if n := last.Diff(first); int64(n) > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: %d bits", ErrRangeTooLarge, n)
	}
	rb := roaring.New()
	for it := first; ; {
		start := bit.Find(it, last, bit.One)
		if start.Equal(last) {
			break
		}
		end := bit.Find(start, last, bit.Zero)
		rb.AddRange(uint64(start.Diff(first)), uint64(end.Diff(first)))
		it = end
	}
	return rb, nil
}

// FromRoaring overwrites [first, last) with the members of rb: member i
// sets bit first+i, every other bit is cleared. The range is left untouched
// if rb holds a member at or beyond last-first.
func FromRoaring[W word.Word](rb *roaring.Bitmap, first, last bit.Iterator[W]) error {
	n := last.Diff(first)
	if !rb.IsEmpty() && int64(rb.Maximum()) >= int64(n) {
		return fmt.Errorf("%w: member %d, range of %d bits", ErrPositionOutOfRange, rb.Maximum(), n)
	}
	bit.Fill(first, last, bit.Zero)

	buf := make([]uint32, 256)
	it := rb.ManyIterator()
	for {
		k := it.NextMany(buf)
		if k == 0 {
			return nil
		}
		for _, x := range buf[:k] {
			first.Add(int(x)).Set(bit.One)
		}
	}
}
