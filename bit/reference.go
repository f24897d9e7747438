package bit

import "github.com/hupe1980/bitseq/word"

// Reference is a borrowed handle to one bit of one word. It never owns the
// word and must not be used after the slice it came from is reallocated.
type Reference[W word.Word] struct {
	words  []W
	index  int
	offset int
}

func (r Reference[W]) mask() W {
	return W(1) << r.offset
}

// Get returns the referenced bit.
func (r Reference[W]) Get() Value {
	return Value(r.words[r.index]>>r.offset) & One
}

// Bool reports whether the referenced bit is set.
func (r Reference[W]) Bool() bool {
	return r.words[r.index]&r.mask() != 0
}

// Set sets the referenced bit.
func (r Reference[W]) Set() {
	r.words[r.index] |= r.mask()
}

// Reset clears the referenced bit.
func (r Reference[W]) Reset() {
	r.words[r.index] &^= r.mask()
}

// Flip inverts the referenced bit.
func (r Reference[W]) Flip() {
	r.words[r.index] ^= r.mask()
}

// Assign stores v in the referenced bit.
func (r Reference[W]) Assign(v Value) {
	if v == Zero {
		r.Reset()
		return
	}
	r.Set()
}

// AssignFrom copies the bit referenced by o into r.
func (r Reference[W]) AssignFrom(o Reference[W]) {
	r.Assign(o.Get())
}

// And performs r &= v.
func (r Reference[W]) And(v Value) {
	if v == Zero {
		r.Reset()
	}
}

// Or performs r |= v.
func (r Reference[W]) Or(v Value) {
	if v == One {
		r.Set()
	}
}

// Xor performs r ^= v.
func (r Reference[W]) Xor(v Value) {
	if v == One {
		r.Flip()
	}
}

// Swap exchanges the bits referenced by r and o.
func (r Reference[W]) Swap(o Reference[W]) {
	a, b := r.Get(), o.Get()
	if a != b {
		r.Flip()
		o.Flip()
	}
}

// Pointer returns a pointer to the referenced bit.
func (r Reference[W]) Pointer() Pointer[W] {
	return Pointer[W](r)
}

// Base returns the index of the referenced word.
func (r Reference[W]) Base() int {
	return r.index
}

// Position returns the offset of the referenced bit within its word.
func (r Reference[W]) Position() int {
	return r.offset
}

// String returns "0" or "1".
func (r Reference[W]) String() string {
	return r.Get().String()
}
