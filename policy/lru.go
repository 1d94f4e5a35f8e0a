package policy

import "iter"

// LRU evicts the least recently added or promoted key.
// Not concurrent safe.
type LRU[T comparable] struct {
	l keyed[T]
}

func NewLRU[T comparable]() *LRU[T] {
	return &LRU[T]{l: makeKeyed[T]()}
}

func (c *LRU[T]) Clear() {
	c.l.Clear()
}

func (c *LRU[T]) Promote(key T) bool {
	return c.l.Promote(key)
}

func (c *LRU[T]) Evict() (_ T, ok bool) {
	if c.l.Len() == 0 {
		var zero T
		return zero, false
	}
	return c.l.RemoveBack(), true
}

func (c *LRU[T]) Add(key T) bool {
	if c.l.Has(key) {
		return false
	}
	c.l.PushFront(key)
	return true
}

func (c *LRU[T]) Values() iter.Seq[T] {
	return c.l.All()
}
