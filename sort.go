package dlist

import (
	"github.com/graxinc/errutil"
	"golang.org/x/exp/constraints"
)

// Sort orders l ascending, in place. Stable.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool { return a < b })
}

// SortFunc orders l by less, in place. Stable.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.Empty() {
		return
	}
	l.MoveFrom(MergeSort(l, less))
}

// MergeSort returns a sorted copy of l, which is not modified.
// Recursion depth is log2(l.Len()).
func MergeSort[T any](l *List[T], less func(a, b T) bool) *List[T] {
	if l.Len() <= 1 {
		return l.Clone()
	}

	mid, err := l.Begin().Add(l.Len() / 2)
	if err != nil {
		panic(errutil.New(errutil.Tags{"midpoint": l.Len() / 2, "err": err}))
	}
	left := mustRange(l.Begin(), mid)
	right := mustRange(mid, l.End())

	return MergeSorted(MergeSort(left, less), MergeSort(right, less), less)
}

// MergeSorted merges two sorted lists into a new one, consuming both.
// On equal fronts left goes first. Whatever remains of one side once the
// other is exhausted is adopted whole.
func MergeSorted[T any](left, right *List[T], less func(a, b T) bool) *List[T] {
	res := New[T]()

	for !left.Empty() && !right.Empty() {
		if less(mustFront(right), mustFront(left)) {
			res.PushBack(mustPopFront(right))
		} else {
			res.PushBack(mustPopFront(left))
		}
	}

	res.Merge(left)
	res.Merge(right)
	return res
}

func mustRange[T any](first, last Iterator[T]) *List[T] {
	l, err := NewRange(first, last)
	if err != nil {
		panic(errutil.New(errutil.Tags{"range": err}))
	}
	return l
}

// list must not be empty.
func mustFront[T any](l *List[T]) T {
	v, err := l.Front()
	if err != nil {
		panic(errutil.New(errutil.Tags{"front": err}))
	}
	return v
}

// list must not be empty.
func mustPopFront[T any](l *List[T]) T {
	v, err := l.PopFront()
	if err != nil {
		panic(errutil.New(errutil.Tags{"popFront": err}))
	}
	return v
}
