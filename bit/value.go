package bit

import "github.com/hupe1980/bitseq/word"

// Value is a single bit that is not bound to any storage.
type Value uint8

const (
	// Zero is the cleared bit.
	Zero Value = 0
	// One is the set bit.
	One Value = 1
)

// ValueOf converts b to a Value.
func ValueOf(b bool) Value {
	if b {
		return One
	}
	return Zero
}

// Bool reports whether v is One.
func (v Value) Bool() bool {
	return v != Zero
}

// Not returns the complement of v.
func (v Value) Not() Value {
	return v ^ One
}

// And returns v & o.
func (v Value) And(o Value) Value {
	return v & o
}

// Or returns v | o.
func (v Value) Or(o Value) Value {
	return v | o
}

// Xor returns v ^ o.
func (v Value) Xor(o Value) Value {
	return v ^ o
}

// String returns "0" or "1".
func (v Value) String() string {
	if v == Zero {
		return "0"
	}
	return "1"
}

// pattern returns a word whose every bit equals v.
func pattern[W word.Word](v Value) W {
	if v == Zero {
		return 0
	}
	return ^W(0)
}
