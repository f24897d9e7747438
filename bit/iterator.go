package bit

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitseq/word"
)

// Iterator is a bit position inside a word slice: the index of a word and
// the offset of a bit within it. The zero Iterator is nil.
//
// Iterators are values; Add, Sub, Next and Prev return new iterators while
// Inc and Dec move the receiver in place. Only iterators over the same slice
// may be compared or subtracted.
type Iterator[W word.Word] struct {
	words  []W
	index  int
	offset int
}

// Begin returns an iterator to the first bit of words.
func Begin[W word.Word](words []W) Iterator[W] {
	return Iterator[W]{words: words}
}

// End returns an iterator one past the last bit of words.
func End[W word.Word](words []W) Iterator[W] {
	return Iterator[W]{words: words, index: len(words)}
}

// NewIterator returns an iterator to bit 0 of words[index].
func NewIterator[W word.Word](words []W, index int) Iterator[W] {
	return Iterator[W]{words: words, index: index}
}

// NewIteratorAt returns an iterator to bit offset of words[index].
// It panics if offset is not in [0, word.Digits[W]()).
func NewIteratorAt[W word.Word](words []W, index, offset int) Iterator[W] {
	if offset < 0 || offset >= word.Digits[W]() {
		panic(fmt.Sprintf("bit: offset %d out of range for %d-bit word", offset, word.Digits[W]()))
	}
	return Iterator[W]{words: words, index: index, offset: offset}
}

// Words returns the slice the iterator addresses.
func (it Iterator[W]) Words() []W {
	return it.words
}

// Base returns the index of the word holding the current bit.
func (it Iterator[W]) Base() int {
	return it.index
}

// Position returns the offset of the current bit within its word.
func (it Iterator[W]) Position() int {
	return it.offset
}

// IsNil reports whether the iterator is not bound to a slice.
func (it Iterator[W]) IsNil() bool {
	return it.words == nil
}

// Aligned reports whether the iterator sits on a word boundary.
func (it Iterator[W]) Aligned() bool {
	return it.offset == 0
}

// Deref returns a reference to the current bit.
func (it Iterator[W]) Deref() Reference[W] {
	return Reference[W](it)
}

// Get returns the current bit.
func (it Iterator[W]) Get() Value {
	return Value(it.words[it.index]>>it.offset) & One
}

// Set assigns v to the current bit.
func (it Iterator[W]) Set(v Value) {
	it.Deref().Assign(v)
}

// Index returns a reference to the bit n positions away.
func (it Iterator[W]) Index(n int) Reference[W] {
	return it.Add(n).Deref()
}

// Inc advances the iterator by one bit.
func (it *Iterator[W]) Inc() {
	it.offset++
	if it.offset == word.Digits[W]() {
		it.offset = 0
		it.index++
	}
}

// Dec moves the iterator back by one bit.
func (it *Iterator[W]) Dec() {
	if it.offset == 0 {
		it.offset = word.Digits[W]() - 1
		it.index--
		return
	}
	it.offset--
}

// Next returns the iterator one bit ahead.
func (it Iterator[W]) Next() Iterator[W] {
	it.Inc()
	return it
}

// Prev returns the iterator one bit back.
func (it Iterator[W]) Prev() Iterator[W] {
	it.Dec()
	return it
}

// Add returns the iterator n bits away. n may be negative; the word index
// is floor-divided so the offset always stays in [0, digits).
func (it Iterator[W]) Add(n int) Iterator[W] {
	q, r := split[W](it.offset + n)
	return Iterator[W]{words: it.words, index: it.index + q, offset: r}
}

// Sub returns the iterator n bits back.
func (it Iterator[W]) Sub(n int) Iterator[W] {
	return it.Add(-n)
}

// Diff returns the signed number of bits from o to it.
func (it Iterator[W]) Diff(o Iterator[W]) int {
	return (it.index-o.index)*word.Digits[W]() + it.offset - o.offset
}

// Compare returns -1, 0 or +1 depending on whether it is before, at or after o.
func (it Iterator[W]) Compare(o Iterator[W]) int {
	switch {
	case it.index < o.index:
		return -1
	case it.index > o.index:
		return 1
	case it.offset < o.offset:
		return -1
	case it.offset > o.offset:
		return 1
	default:
		return 0
	}
}

// Equal reports whether it and o address the same bit.
func (it Iterator[W]) Equal(o Iterator[W]) bool {
	return it.index == o.index && it.offset == o.offset
}

// Less reports whether it is before o.
func (it Iterator[W]) Less(o Iterator[W]) bool {
	return it.Compare(o) < 0
}

// String implements fmt.Stringer.
func (it Iterator[W]) String() string {
	return fmt.Sprintf("(%d,%d)", it.index, it.offset)
}

// split floor-divides a bit position into a word index and an in-word offset.
func split[W word.Word](pos int) (int, int) {
	d := word.Digits[W]()
	// Arithmetic shift floors negative positions.
	return pos >> bits.TrailingZeros(uint(d)), pos & (d - 1)
}
