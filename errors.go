package dlist

// Error is a constant sentinel error. Compare with errors.Is.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// Front, Back, the Pop operations and Erase on a list with no elements.
	ErrEmpty Error = "empty container"

	// Erase or Value on the end position.
	ErrInvalidPosition Error = "invalid position"

	// Stepping past either end of a list.
	ErrOutOfRange Error = "position out of range"

	// A position used with a list that does not own it.
	ErrForeignPosition Error = "position belongs to another list"

	// A position whose element has been erased.
	ErrStalePosition Error = "position references an erased element"
)
