package dlist

import (
	"iter"

	"github.com/graxinc/errutil"
)

// owner tags every node of one chain. Merge forwards the adopted chain's
// owner to the adopting list's owner instead of retagging each node.
// A list always holds a root owner.
type owner[T any] struct {
	parent *owner[T]
	list   *List[T] // only set on roots
}

func (o *owner[T]) root() *owner[T] {
	for o.parent != nil {
		if o.parent.parent != nil {
			o.parent = o.parent.parent
		}
		o = o.parent
	}
	return o
}

type node[T any] struct {
	prev, next *node[T]
	owner      *owner[T] // nil once erased
	value      T
}

func (n *node[T]) erased() bool {
	return n.owner == nil
}

// The list currently owning n.
func (n *node[T]) list() *List[T] {
	return n.owner.root().list
}

// List is a doubly linked list whose positions stay valid until their
// element is erased, including across Merge, Move and Swap.
// The zero value is an empty list ready to use. A List must not be copied
// by value, use Clone.
// Not concurrent safe.
type List[T any] struct {
	zero  T
	head  *node[T]
	tail  *node[T]
	len   int
	owner *owner[T] // lazy
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Non-positive count gives an empty list.
func NewFilled[T any](count int, v T) *List[T] {
	l := &List[T]{}
	for range count {
		l.PushBack(v)
	}
	return l
}

// NewRange copies the values in [first, last). last must be reachable from
// first by stepping forward through the same list.
func NewRange[T any](first, last Iterator[T]) (*List[T], error) {
	if _, err := span(first, last); err != nil {
		return nil, err
	}
	l := &List[T]{}
	for n := first.n; n != last.n; n = n.next {
		l.PushBack(n.value)
	}
	return l, nil
}

// Deep copy.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Move returns a list owning all of l's elements and leaves l empty.
// Positions into l stay valid and now belong to the returned list.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{}
	m.MoveFrom(l)
	return m
}

// Assign replaces l's contents with a copy of other's. Positions into l's
// previous elements become stale.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// MoveFrom releases l's elements and takes other's, leaving other empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()

	l.head, l.tail, l.len, l.owner = other.head, other.tail, other.len, other.owner
	other.head, other.tail, other.len, other.owner = nil, nil, 0, nil

	if l.owner != nil {
		l.owner.list = l
	}
}

func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.len, other.len = other.len, l.len
	l.owner, other.owner = other.owner, l.owner

	if l.owner != nil {
		l.owner.list = l
	}
	if other.owner != nil {
		other.owner.list = other
	}
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.len }

func (l *List[T]) Empty() bool { return l.len == 0 }

func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		return l.zero, ErrEmpty
	}
	return l.head.value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		return l.zero, ErrEmpty
	}
	return l.tail.value, nil
}

// Position of the first element, End when empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, n: l.head}
}

// One past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l}
}

// Position of the last element, End when empty.
func (l *List[T]) Last() Iterator[T] {
	return Iterator[T]{list: l, n: l.tail}
}

func (l *List[T]) PushFront(v T) Iterator[T] {
	return Iterator[T]{list: l, n: l.insert(v, l.head)}
}

func (l *List[T]) PushBack(v T) Iterator[T] {
	return Iterator[T]{list: l, n: l.insert(v, nil)}
}

func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		return l.zero, ErrEmpty
	}
	v := l.head.value
	l.erase(l.head)
	return v, nil
}

func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		return l.zero, ErrEmpty
	}
	v := l.tail.value
	l.erase(l.tail)
	return v, nil
}

// Insert places values before pos, keeping their order. Inserting at End
// appends. Returns the position of the first inserted value, or pos if
// values is empty.
func (l *List[T]) Insert(pos Iterator[T], values ...T) (Iterator[T], error) {
	if err := l.check(pos); err != nil {
		return Iterator[T]{}, err
	}
	first := Iterator[T]{list: l, n: pos.n}
	for i, v := range values {
		n := l.insert(v, pos.n)
		if i == 0 {
			first.n = n
		}
	}
	return first, nil
}

// Erase removes the element at pos and returns the position that followed it.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if l.len == 0 {
		return Iterator[T]{}, ErrEmpty
	}
	if pos.n == nil {
		return Iterator[T]{}, ErrInvalidPosition
	}
	if err := l.check(pos); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{list: l, n: l.erase(pos.n)}, nil
}

// EraseRange removes [first, last) and returns last. The range is validated
// before anything is removed, so a failed call leaves l unchanged.
func (l *List[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	if l.len == 0 {
		return Iterator[T]{}, ErrEmpty
	}
	if err := l.check(first); err != nil {
		return Iterator[T]{}, err
	}
	if err := l.check(last); err != nil {
		return Iterator[T]{}, err
	}
	if _, err := span(first, last); err != nil {
		return Iterator[T]{}, err
	}

	n := first.n
	for n != last.n {
		n = l.erase(n)
	}
	return Iterator[T]{list: l, n: n}, nil
}

// Position stays valid.
func (l *List[T]) MoveToFront(pos Iterator[T]) error {
	if err := l.checkElement(pos); err != nil {
		return err
	}
	if l.head == pos.n {
		return nil
	}
	l.unlink(pos.n)
	l.link(pos.n, l.head)
	return nil
}

// Position stays valid.
func (l *List[T]) MoveToBack(pos Iterator[T]) error {
	if err := l.checkElement(pos); err != nil {
		return err
	}
	if l.tail == pos.n {
		return nil
	}
	l.unlink(pos.n)
	l.link(pos.n, nil)
	return nil
}

// Merge appends other's elements to l in O(1) and leaves other empty.
// Positions into other stay valid and now belong to l.
// Merging a list into itself does nothing.
func (l *List[T]) Merge(other *List[T]) {
	if l == other || other.len == 0 {
		return
	}
	own := l.lazyInit()
	if other.owner.parent != nil {
		panic(errutil.New(errutil.Tags{"ownerNotRoot": other.len}))
	}

	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
	}
	l.tail = other.tail
	l.len += other.len

	other.owner.parent = own
	other.owner.list = nil
	other.head, other.tail, other.len, other.owner = nil, nil, 0, nil
}

// MergeCopy appends a copy of other's elements. other is unchanged.
func (l *List[T]) MergeCopy(other *List[T]) {
	l.Merge(other.Clone())
}

// In place, no allocation.
func (l *List[T]) Reverse() {
	for n := l.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Clear erases every element. Positions into l become stale.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		release(n)
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// Front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// A nil list equals only another nil list.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.len != b.len {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

func (l *List[T]) lazyInit() *owner[T] {
	if l.owner == nil {
		l.owner = &owner[T]{list: l}
	}
	return l.owner
}

func (l *List[T]) owns(n *node[T]) bool {
	return l.owner != nil && n.owner.root() == l.owner
}

// l's End and the zero Iterator are accepted.
func (l *List[T]) check(pos Iterator[T]) error {
	switch {
	case pos.n == nil:
		if pos.list != nil && pos.list != l {
			return ErrForeignPosition
		}
		return nil
	case pos.n.erased():
		return ErrStalePosition
	case !l.owns(pos.n):
		return ErrForeignPosition
	}
	return nil
}

func (l *List[T]) checkElement(pos Iterator[T]) error {
	if pos.n == nil {
		return ErrInvalidPosition
	}
	return l.check(pos)
}

// insert allocates a node for v before at, or at the back when at is nil.
func (l *List[T]) insert(v T, at *node[T]) *node[T] {
	n := &node[T]{value: v, owner: l.lazyInit()}
	l.link(n, at)
	l.len++
	return n
}

// link places a detached n before at, or at the back when at is nil.
func (l *List[T]) link(n, at *node[T]) {
	if at == nil {
		n.prev = l.tail
		n.next = nil
		if l.tail == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
		return
	}

	n.next = at
	n.prev = at.prev
	if at.prev == nil {
		l.head = n
	} else {
		at.prev.next = n
	}
	at.prev = n
}

// unlink detaches n from the chain, leaving its ownership alone.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// erase removes n and returns its successor.
func (l *List[T]) erase(n *node[T]) *node[T] {
	next := n.next
	l.unlink(n)
	release(n)
	l.len--
	return next
}

func release[T any](n *node[T]) {
	n.prev = nil // avoid memory leaks
	n.next = nil // avoid memory leaks
	n.owner = nil
}

// span counts the elements in [first, last).
func span[T any](first, last Iterator[T]) (int, error) {
	if first.n != nil && first.n.erased() || last.n != nil && last.n.erased() {
		return 0, ErrStalePosition
	}
	if a, b := first.owner(), last.owner(); a != nil && b != nil && a != b {
		return 0, ErrForeignPosition
	}

	var c int
	for n := first.n; n != last.n; n = n.next {
		if n == nil {
			return 0, ErrOutOfRange
		}
		c++
	}
	return c, nil
}
