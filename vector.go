package bitseq

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/internal/assert"
	"github.com/hupe1980/bitseq/word"
)

// Vector is a growable sequence of bits packed into words of type W.
//
// Bit i lives at bit i%digits of word i/digits. The bits of the last word
// beyond Len are unspecified. A Vector is not safe for concurrent use.
type Vector[W word.Word] struct {
	words  []W
	length int
	opts   options
}

// New returns an empty vector.
func New[W word.Word](optFns ...Option) *Vector[W] {
	o := applyOptions(optFns)
	o.logger = o.logger.WithWordBits(word.Digits[W]())
	o.logger.LogKernels(context.Background())
	v := &Vector[W]{opts: o}
	if o.initialCapacity > 0 {
		v.words = make([]W, 0, wordsFor[W](o.initialCapacity))
	}
	return v
}

// NewSized returns a vector of n bits. The bit values are unspecified.
func NewSized[W word.Word](n int, optFns ...Option) *Vector[W] {
	v := New[W](optFns...)
	v.resize(n)
	return v
}

// NewFilled returns a vector of n bits, each equal to val.
func NewFilled[W word.Word](n int, val bit.Value, optFns ...Option) *Vector[W] {
	v := New[W](optFns...)
	v.Resize(n, val)
	return v
}

// FromRange returns a vector holding a copy of [first, last).
func FromRange[W word.Word](first, last bit.Iterator[W], optFns ...Option) *Vector[W] {
	v := New[W](optFns...)
	v.resize(last.Diff(first))
	bit.Copy(first, last, v.Begin())
	return v
}

// FromString returns a vector holding one bit per '0' or '1' in s, read left
// to right. Every other character is skipped.
func FromString[W word.Word](s string, optFns ...Option) *Vector[W] {
	v := New[W](optFns...)
	v.Reserve(len(s))
	for _, c := range s {
		switch c {
		case '0':
			v.PushBack(bit.Zero)
		case '1':
			v.PushBack(bit.One)
		}
	}
	return v
}

// FromBools returns a vector holding b.
func FromBools[W word.Word](b []bool, optFns ...Option) *Vector[W] {
	v := New[W](optFns...)
	v.resize(len(b))
	it := v.Begin()
	for _, x := range b {
		it.Set(bit.ValueOf(x))
		it.Inc()
	}
	return v
}

// Len returns the number of bits.
func (v *Vector[W]) Len() int {
	return v.length
}

// Empty reports whether the vector holds no bits.
func (v *Vector[W]) Empty() bool {
	return v.length == 0
}

// Cap returns the number of bits the vector can hold without reallocating.
func (v *Vector[W]) Cap() int {
	return cap(v.words) * word.Digits[W]()
}

// Words returns the words backing the first Len bits. The slice aliases the
// vector until the next reallocation.
func (v *Vector[W]) Words() []W {
	return v.words[:wordsFor[W](v.length)]
}

// Begin returns an iterator to the first bit.
func (v *Vector[W]) Begin() bit.Iterator[W] {
	return bit.Begin(v.words)
}

// End returns an iterator one past the last bit.
func (v *Vector[W]) End() bit.Iterator[W] {
	return v.iter(v.length)
}

// Ref returns a reference to bit i. Like slice indexing it does not check
// i against Len.
func (v *Vector[W]) Ref(i int) bit.Reference[W] {
	if assert.Enabled {
		assert.That(i >= 0 && i < v.length, "index %d out of range [0, %d)", i, v.length)
	}
	return v.iter(i).Deref()
}

// At returns a reference to bit i, or an *OutOfRangeError if i is not in
// [0, Len).
func (v *Vector[W]) At(i int) (bit.Reference[W], error) {
	if i < 0 || i >= v.length {
		return bit.Reference[W]{}, &OutOfRangeError{Index: i, Size: v.length}
	}
	return v.iter(i).Deref(), nil
}

// Get returns bit i.
func (v *Vector[W]) Get(i int) bit.Value {
	return v.Ref(i).Get()
}

// Set assigns val to bit i.
func (v *Vector[W]) Set(i int, val bit.Value) {
	v.Ref(i).Assign(val)
}

// Flip inverts bit i.
func (v *Vector[W]) Flip(i int) {
	v.Ref(i).Flip()
}

// Front returns the first bit, or ErrEmpty.
func (v *Vector[W]) Front() (bit.Value, error) {
	if v.length == 0 {
		return bit.Zero, ErrEmpty
	}
	return v.Get(0), nil
}

// Back returns the last bit, or ErrEmpty.
func (v *Vector[W]) Back() (bit.Value, error) {
	if v.length == 0 {
		return bit.Zero, ErrEmpty
	}
	return v.Get(v.length - 1), nil
}

// PushBack appends val in amortized constant time.
func (v *Vector[W]) PushBack(val bit.Value) {
	n := v.length
	v.resize(n + 1)
	v.iter(n).Set(val)
}

// PopBack removes the last bit, or returns ErrEmpty.
func (v *Vector[W]) PopBack() error {
	if v.length == 0 {
		return ErrEmpty
	}
	v.length--
	return nil
}

// Insert inserts n copies of val before bit pos and returns an iterator to
// the first inserted bit. pos may equal Len.
func (v *Vector[W]) Insert(pos, n int, val bit.Value) bit.Iterator[W] {
	v.checkPos(pos)
	if n <= 0 {
		return v.iter(pos)
	}
	start := time.Now()
	oldLen := v.length
	v.resize(oldLen + n)
	bit.ShiftRight(v.iter(pos), v.iter(oldLen+n), n)
	bit.Fill(v.iter(pos), v.iter(pos+n), val)
	v.opts.metricsCollector.RecordInsert(n, time.Since(start))
	return v.iter(pos)
}

// InsertRange inserts a copy of [first, last) before bit pos and returns an
// iterator to the first inserted bit. The source may alias the vector.
func (v *Vector[W]) InsertRange(pos int, first, last bit.Iterator[W]) bit.Iterator[W] {
	v.checkPos(pos)
	n := last.Diff(first)
	if n <= 0 {
		return v.iter(pos)
	}
	start := time.Now()
	// Growing may reallocate the storage first points into.
	src := make([]W, wordsFor[W](n))
	bit.Copy(first, last, bit.Begin(src))

	oldLen := v.length
	v.resize(oldLen + n)
	bit.ShiftRight(v.iter(pos), v.iter(oldLen+n), n)
	bit.Copy(bit.Begin(src), bit.Begin(src).Add(n), v.iter(pos))
	v.opts.metricsCollector.RecordInsert(n, time.Since(start))
	return v.iter(pos)
}

// Append appends the bits of o. o may be v itself.
func (v *Vector[W]) Append(o *Vector[W]) {
	v.InsertRange(v.length, o.Begin(), o.End())
}

// Erase removes bit pos and returns an iterator to the bit that followed it.
func (v *Vector[W]) Erase(pos int) bit.Iterator[W] {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes bits [from, to) and returns an iterator to the bit that
// followed them.
func (v *Vector[W]) EraseRange(from, to int) bit.Iterator[W] {
	v.checkPos(from)
	v.checkPos(to)
	n := to - from
	if n <= 0 {
		return v.iter(from)
	}
	start := time.Now()
	bit.ShiftLeft(v.iter(from), v.End(), n)
	v.length -= n
	v.opts.metricsCollector.RecordErase(n, time.Since(start))
	return v.iter(from)
}

// Resize sets the length to n. New bits are set to val.
func (v *Vector[W]) Resize(n int, val bit.Value) {
	oldLen := v.length
	v.resize(n)
	if n > oldLen {
		bit.Fill(v.iter(oldLen), v.iter(n), val)
	}
}

// Reserve makes room for at least n bits without changing the length.
func (v *Vector[W]) Reserve(n int) {
	if need := wordsFor[W](n); need > cap(v.words) {
		v.realloc(need)
	}
}

// ShrinkToFit releases capacity beyond the words Len needs.
func (v *Vector[W]) ShrinkToFit() {
	if need := wordsFor[W](v.length); need < cap(v.words) {
		v.realloc(need)
	}
}

// Clear removes all bits and keeps the capacity.
func (v *Vector[W]) Clear() {
	v.length = 0
}

// Clone returns an independent copy of v with the same options.
func (v *Vector[W]) Clone() *Vector[W] {
	return &Vector[W]{
		words:  slices.Clone(v.Words()),
		length: v.length,
		opts:   v.opts,
	}
}

// Equal reports whether v and o hold the same bits.
func (v *Vector[W]) Equal(o *Vector[W]) bool {
	return v.length == o.length && bit.Equal(v.Begin(), v.End(), o.Begin())
}

// Count returns the number of bits equal to val.
func (v *Vector[W]) Count(val bit.Value) int {
	return bit.Count(v.Begin(), v.End(), val)
}

// Find returns the index of the first bit equal to val, or -1.
func (v *Vector[W]) Find(val bit.Value) int {
	it := bit.Find(v.Begin(), v.End(), val)
	if it.Equal(v.End()) {
		return -1
	}
	return it.Diff(v.Begin())
}

// And sets v to v AND o. Both vectors must have the same length.
func (v *Vector[W]) And(o *Vector[W]) error {
	return v.combine(o, bit.AndAssign[W])
}

// Or sets v to v OR o. Both vectors must have the same length.
func (v *Vector[W]) Or(o *Vector[W]) error {
	return v.combine(o, bit.OrAssign[W])
}

// Xor sets v to v XOR o. Both vectors must have the same length.
func (v *Vector[W]) Xor(o *Vector[W]) error {
	return v.combine(o, bit.XorAssign[W])
}

// AndNot clears the bits of v that are set in o. Both vectors must have the
// same length.
func (v *Vector[W]) AndNot(o *Vector[W]) error {
	return v.combine(o, bit.AndNotAssign[W])
}

// Not flips every bit.
func (v *Vector[W]) Not() {
	bit.Not(v.Begin(), v.End())
}

// Bools returns the bits as a []bool.
func (v *Vector[W]) Bools() []bool {
	out := make([]bool, v.length)
	it := v.Begin()
	for i := range out {
		out[i] = it.Get().Bool()
		it.Inc()
	}
	return out
}

// String renders the bits as '0' and '1', first bit first.
func (v *Vector[W]) String() string {
	return bit.String(v.Begin(), v.End())
}

// DebugString renders the bits like String, grouped by storage word and
// sub-grouped every 8 bits.
func (v *Vector[W]) DebugString() string {
	return bit.DebugString(v.Begin(), v.End())
}

func (v *Vector[W]) combine(o *Vector[W], assign func(first, last, src bit.Iterator[W])) error {
	if v.length != o.length {
		return lengthMismatch(v.length, o.length)
	}
	assign(v.Begin(), v.End(), o.Begin())
	return nil
}

func (v *Vector[W]) iter(pos int) bit.Iterator[W] {
	return bit.Begin(v.words).Add(pos)
}

func (v *Vector[W]) checkPos(pos int) {
	if pos < 0 || pos > v.length {
		panic(&OutOfRangeError{Index: pos, Size: v.length})
	}
}

// resize sets the length to n, growing the word buffer geometrically. Bits
// exposed by growth are unspecified.
func (v *Vector[W]) resize(n int) {
	need := wordsFor[W](n)
	if need > cap(v.words) {
		v.realloc(max(need, int(float64(cap(v.words))*v.opts.growthFactor)))
	}
	if need > len(v.words) {
		v.words = v.words[:need]
	}
	v.length = n
}

// realloc moves the words into a buffer of capacity c. c never drops below
// the words Len needs.
func (v *Vector[W]) realloc(c int) {
	grown := make([]W, min(len(v.words), c), c)
	copy(grown, v.words)
	v.opts.logger.WithLength(v.length).LogGrow(context.Background(), cap(v.words), c)
	v.opts.metricsCollector.RecordGrow(cap(v.words), c)
	v.words = grown
}

func wordsFor[W word.Word](bits int) int {
	d := word.Digits[W]()
	return (bits + d - 1) / d
}
