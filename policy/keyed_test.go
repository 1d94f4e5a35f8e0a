package policy

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkKeyed verifies every stored position still points at its own key.
func checkKeyed(t testing.TB, k *keyed[int]) {
	t.Helper()

	require.Len(t, k.keys, k.Len())
	for key, pos := range k.keys {
		v, err := pos.Value()
		require.NoError(t, err)
		require.Equal(t, key, v)
	}

	var walked []int
	for it := k.l.Begin(); !it.IsEnd(); {
		v, err := it.Value()
		require.NoError(t, err)
		walked = append(walked, v)
		it, err = it.Next()
		require.NoError(t, err)
	}
	require.Equal(t, slices.Collect(k.All()), walked)
}

func TestKeyed_positionsStable(t *testing.T) {
	t.Parallel()

	rando := rand.New(rand.NewSource(3)) //nolint:gosec
	k := makeKeyed[int]()

	for i := range 2000 {
		key := rando.Intn(50)
		switch rando.Intn(4) {
		case 0:
			if !k.Has(key) {
				k.PushFront(key)
			}
		case 1:
			require.Equal(t, k.Has(key), k.Promote(key))
		case 2:
			had := k.Has(key)
			require.Equal(t, had, k.Remove(key))
			require.False(t, k.Has(key))
		default:
			if k.Len() > 0 {
				back, err := k.l.Back()
				require.NoError(t, err)
				require.Equal(t, back, k.RemoveBack())
			}
		}
		if i%100 == 0 {
			checkKeyed(t, &k)
		}
	}
	checkKeyed(t, &k)

	k.Clear()
	checkKeyed(t, &k)
	require.Zero(t, k.Len())
}

func TestKeyed_removedPositionStale(t *testing.T) {
	t.Parallel()

	k := makeKeyed[int]()
	k.PushFront(1)
	k.PushFront(2)
	pos := k.keys[1]

	require.True(t, k.Promote(1))
	v, err := pos.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.True(t, k.Remove(1))
	_, err = pos.Value()
	require.Error(t, err)
	require.False(t, k.Remove(1))
	require.False(t, k.Promote(1))
}

func TestARC_positionsStable(t *testing.T) {
	t.Parallel()

	const cap = 40

	rando := rand.New(rand.NewSource(9)) //nolint:gosec
	c := NewARC[int]()
	var size int

	for i := range 5000 {
		key := rando.Intn(cap * 3)
		if c.Promote(key) {
			continue
		}
		if size >= cap {
			if _, ok := c.Evict(); ok {
				size--
			}
		}
		if c.Add(key) {
			size++
		}
		if i%250 == 0 {
			for _, k := range c.lists() {
				checkKeyed(t, k)
			}
		}
	}

	for _, k := range c.lists() {
		checkKeyed(t, k)
	}
	require.Equal(t, size, c.residents())

	// a key lives in exactly one of the lists.
	seen := map[int]int{}
	for _, k := range c.lists() {
		for v := range k.All() {
			seen[v]++
		}
	}
	for v, n := range seen {
		require.Equal(t, 1, n, v)
	}
}
