package precise

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is wrapped by the IndexError that vectors and quaternions panic with when a component is accessed by an
// index outside of their range. Use errors.Is on a recovered value to check for it.
var ErrInvalidIndex = errors.New("invalid index")

// IndexError describes an out-of-range component access.
type IndexError struct {
	Type  string // Name of the type that was indexed, e.g. "Vector3"
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: %v (index %d, valid range 0..%d)", err.Type, ErrInvalidIndex, err.Index, err.Len-1)
}

func (err *IndexError) Unwrap() error {
	return ErrInvalidIndex
}

func panicIndex(typeName string, index, length int) {
	panic(&IndexError{Type: typeName, Index: index, Len: length})
}
