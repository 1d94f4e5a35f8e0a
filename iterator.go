package dlist

import "math"

// Iterator is a position in a List: an element, or End, one past the last
// element. It does not keep the element alive. Once the element is erased
// every operation on the position fails with ErrStalePosition.
//
// The zero value is an End position of no list.
type Iterator[T any] struct {
	list *List[T] // owner of an End, and where Prev from End goes
	n    *node[T]
}

func (it Iterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal reports whether both positions refer to the same element.
// End positions of different lists are equal too, so Equal cannot tell
// which list an End came from. List operations reject another list's End
// with ErrForeignPosition.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.n == o.n
}

func (it Iterator[T]) Value() (T, error) {
	var zero T
	switch {
	case it.n == nil:
		return zero, ErrInvalidPosition
	case it.n.erased():
		return zero, ErrStalePosition
	}
	return it.n.value, nil
}

// Next returns the following position, End after the last element.
func (it Iterator[T]) Next() (Iterator[T], error) {
	switch {
	case it.n == nil:
		return it, ErrOutOfRange
	case it.n.erased():
		return it, ErrStalePosition
	}
	return Iterator[T]{list: it.n.list(), n: it.n.next}, nil
}

// Prev returns the preceding position. From End it is the last element.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if it.n == nil {
		if it.list == nil || it.list.tail == nil {
			return it, ErrOutOfRange
		}
		return Iterator[T]{list: it.list, n: it.list.tail}, nil
	}
	if it.n.erased() {
		return it, ErrStalePosition
	}
	if it.n.prev == nil {
		return it, ErrOutOfRange
	}
	return Iterator[T]{list: it.n.list(), n: it.n.prev}, nil
}

// Advance steps it forward and returns where it was.
// it is unchanged on error.
func (it *Iterator[T]) Advance() (Iterator[T], error) {
	was := *it
	next, err := it.Next()
	if err != nil {
		return was, err
	}
	*it = next
	return was, nil
}

// Retreat steps it backward and returns where it was.
// it is unchanged on error.
func (it *Iterator[T]) Retreat() (Iterator[T], error) {
	was := *it
	prev, err := it.Prev()
	if err != nil {
		return was, err
	}
	*it = prev
	return was, nil
}

// Add steps n positions forward, or backward when n is negative. Landing on
// End is allowed, stepping past it is not. it is returned on error.
func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	cur := it
	for ; n > 0; n-- {
		next, err := cur.Next()
		if err != nil {
			return it, err
		}
		cur = next
	}
	for ; n < 0; n++ {
		prev, err := cur.Prev()
		if err != nil {
			return it, err
		}
		cur = prev
	}
	return cur, nil
}

// Sub steps n positions backward, or forward when n is negative.
func (it Iterator[T]) Sub(n int) (Iterator[T], error) {
	if n == math.MinInt {
		return it, ErrOutOfRange // -n overflows, and no list is that long.
	}
	return it.Add(-n)
}

// The list owning the position, nil for the zero value.
func (it Iterator[T]) owner() *List[T] {
	if it.n == nil {
		return it.list
	}
	return it.n.list()
}
