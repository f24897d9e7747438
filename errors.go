package bitseq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a bit index is not below the vector length.
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrEmpty is returned when an element is requested from an empty vector.
	ErrEmpty = errors.New("vector is empty")

	// ErrLengthMismatch is returned when two vectors combined bit by bit
	// differ in length.
	ErrLengthMismatch = errors.New("vector length mismatch")
)

// OutOfRangeError reports the offending index and the vector length.
//
// errors.Is(err, ErrOutOfRange) holds for every OutOfRangeError.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bit index out of range: index %d, size %d", e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func lengthMismatch(want, got int) error {
	return fmt.Errorf("%w: %d and %d bits", ErrLengthMismatch, want, got)
}
