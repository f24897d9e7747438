package bit

import "github.com/hupe1980/bitseq/word"

// Pointer is a nil-able handle to a bit supporting bit-unit arithmetic with
// the same carry rules as Iterator. The zero Pointer is nil.
type Pointer[W word.Word] Iterator[W]

// IsNil reports whether p has no backing storage.
func (p Pointer[W]) IsNil() bool {
	return p.words == nil
}

// Deref returns a reference to the addressed bit. It panics if p is nil.
func (p Pointer[W]) Deref() Reference[W] {
	if p.IsNil() {
		panic("bit: nil pointer dereference")
	}
	return Reference[W](p)
}

// Add returns the pointer n bits away.
func (p Pointer[W]) Add(n int) Pointer[W] {
	return Pointer[W](Iterator[W](p).Add(n))
}

// Sub returns the pointer n bits back.
func (p Pointer[W]) Sub(n int) Pointer[W] {
	return p.Add(-n)
}

// Index returns a reference to the bit n positions away, like p[n].
func (p Pointer[W]) Index(n int) Reference[W] {
	return p.Add(n).Deref()
}

// Diff returns the signed number of bits from o to p.
func (p Pointer[W]) Diff(o Pointer[W]) int {
	return Iterator[W](p).Diff(Iterator[W](o))
}

// Equal reports whether p and o address the same bit. Two nil pointers are equal.
func (p Pointer[W]) Equal(o Pointer[W]) bool {
	if p.IsNil() || o.IsNil() {
		return p.IsNil() == o.IsNil()
	}
	return Iterator[W](p).Equal(Iterator[W](o))
}

// Less reports whether p addresses an earlier bit than o.
func (p Pointer[W]) Less(o Pointer[W]) bool {
	return Iterator[W](p).Less(Iterator[W](o))
}

// Iterator converts p to an iterator at the same bit.
func (p Pointer[W]) Iterator() Iterator[W] {
	return Iterator[W](p)
}
