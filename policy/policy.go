package policy

import (
	"iter"
	"math"

	"github.com/graxinc/dlist"
	"github.com/graxinc/errutil"
)

// Based on https://github.com/dgryski/go-arc / https://github.com/hashicorp/golang-lru.
// Algo overview at https://en.wikipedia.org/wiki/Adaptive_replacement_cache.
// Details at https://www2.cs.uh.edu/~paris/7360/PAPERS03/arcfast.pdf.

// Not concurrent safe.
type Policy[T any] interface {
	Clear()
	Promote(T) (exists bool)
	Evict() (_ T, ok bool)

	// !ok if already exists.
	Add(T) (ok bool)

	// Hottest to coldest.
	Values() iter.Seq[T]
}

// keyed is a list of unique keys with a position per key, so promotion and
// removal never walk the list.
type keyed[T comparable] struct {
	l    *dlist.List[T]
	keys map[T]dlist.Iterator[T]
}

func makeKeyed[T comparable]() keyed[T] {
	return keyed[T]{
		l:    dlist.New[T](),
		keys: make(map[T]dlist.Iterator[T]),
	}
}

func (c *keyed[T]) Has(key T) bool {
	_, ok := c.keys[key]
	return ok
}

// Moves to front, false if missing.
func (c *keyed[T]) Promote(key T) bool {
	pos, ok := c.keys[key]
	if !ok {
		return false
	}
	if err := c.l.MoveToFront(pos); err != nil {
		panic(errutil.New(errutil.Tags{"moveToFront": key, "err": err}))
	}
	return true
}

func (c *keyed[T]) PushFront(key T) {
	c.keys[key] = c.l.PushFront(key)
}

// false if missing.
func (c *keyed[T]) Remove(key T) bool {
	pos, ok := c.keys[key]
	if !ok {
		return false
	}
	delete(c.keys, key)
	if _, err := c.l.Erase(pos); err != nil {
		panic(errutil.New(errutil.Tags{"erase": key, "err": err}))
	}
	return true
}

// list must not be empty.
func (c *keyed[T]) RemoveBack() T {
	key, err := c.l.PopBack()
	if err != nil {
		panic(errutil.New(errutil.Tags{"popBack": err}))
	}
	delete(c.keys, key)
	return key
}

func (c *keyed[T]) Len() int {
	return c.l.Len()
}

func (c *keyed[T]) Clear() {
	c.l.Clear()
	clear(c.keys)
}

func (c *keyed[T]) All() iter.Seq[T] {
	return c.l.All()
}

// ARC splits residents between a recent list (seen once) and a frequent
// list (seen again), and keeps the keys it evicted from each as ghosts. A
// ghost hit moves the target split toward the list that lost it.
// Not concurrent safe.
type ARC[T comparable] struct {
	recent, frequent           keyed[T]
	recentGhost, frequentGhost keyed[T]

	split float64 // target share of residents in recent
}

func NewARC[T comparable]() *ARC[T] {
	return &ARC[T]{
		recent:        makeKeyed[T](),
		frequent:      makeKeyed[T](),
		recentGhost:   makeKeyed[T](),
		frequentGhost: makeKeyed[T](),
	}
}

func (c *ARC[T]) Clear() {
	for _, k := range c.lists() {
		k.Clear()
	}
	c.split = 0
}

func (c *ARC[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range []*keyed[T]{&c.frequent, &c.recent} {
			for v := range k.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (c *ARC[T]) Promote(key T) bool {
	if c.frequent.Promote(key) {
		return true
	}
	if !c.recent.Remove(key) {
		return false
	}
	c.frequent.PushFront(key)
	return true
}

func (c *ARC[T]) Evict() (_ T, ok bool) {
	from, ghost := &c.frequent, &c.frequentGhost
	if n := c.recent.Len(); n > 0 && (n > c.recentTarget() || c.frequent.Len() == 0) {
		from, ghost = &c.recent, &c.recentGhost
	}
	if from.Len() == 0 {
		var zero T
		return zero, false
	}
	key := from.RemoveBack()
	ghost.PushFront(key)
	return key, true
}

func (c *ARC[T]) Add(key T) bool {
	if c.frequent.Has(key) || c.recent.Has(key) {
		return false
	}

	switch {
	case c.frequentGhost.Has(key):
		c.shift(-ratio(c.recentGhost.Len(), c.frequentGhost.Len()))
		c.frequentGhost.Remove(key)
		c.frequent.PushFront(key)
		return true
	case c.recentGhost.Has(key):
		c.shift(ratio(c.frequentGhost.Len(), c.recentGhost.Len()))
		c.recentGhost.Remove(key)
		c.frequent.PushFront(key)
		return true
	}

	// residents grow by one, so ghosts shrink to fit the split.
	target := c.recentTarget()
	for c.recentGhost.Len() > 0 && c.recentGhost.Len() > c.residents()-target {
		c.recentGhost.RemoveBack()
	}
	for c.frequentGhost.Len() > 0 && c.frequentGhost.Len() > target {
		c.frequentGhost.RemoveBack()
	}
	c.recent.PushFront(key)
	return true
}

func (c *ARC[T]) lists() []*keyed[T] {
	return []*keyed[T]{&c.recent, &c.frequent, &c.recentGhost, &c.frequentGhost}
}

func (c *ARC[T]) recentTarget() int {
	return int(math.RoundToEven(c.split * float64(c.residents())))
}

// shift moves the recent target by delta residents, bounded to [0, residents].
func (c *ARC[T]) shift(delta int) {
	n := c.residents()
	target := min(max(c.recentTarget()+delta, 0), n)
	c.split = float64(target) / float64(n)
}

func (c *ARC[T]) residents() int {
	return c.recent.Len() + c.frequent.Len()
}

// how many times larger than the hit ghost list the other is, at least 1.
// hit must not be empty.
func ratio(other, hit int) int {
	if other > hit {
		return other / hit
	}
	return 1
}
