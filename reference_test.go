package dlist_test

import (
	"math/rand"
	"testing"

	"github.com/graxinc/dlist"

	"github.com/stretchr/testify/require"
	"github.com/szyhf/go-container/list"
)

func TestList_compareReference(t *testing.T) {
	t.Parallel()

	rando := rand.New(rand.NewSource(5)) //nolint:gosec

	ours := dlist.New[int]()
	theirs := list.New[int]()

	// element at idx in theirs, position at idx in ours.
	at := func(idx int) (*list.Element[int], dlist.Iterator[int]) {
		e := theirs.Front()
		for range idx {
			e = e.Next()
		}
		return e, mustAdd(t, ours.Begin(), idx)
	}

	for i := range 10_000 {
		switch rando.Intn(7) {
		case 0:
			ours.PushFront(i)
			theirs.PushFront(i)
		case 1, 2:
			ours.PushBack(i)
			theirs.PushBack(i)
		case 3:
			v, err := ours.PopFront()
			if theirs.Len() == 0 {
				require.ErrorIs(t, err, dlist.ErrEmpty)
				continue
			}
			require.NoError(t, err)
			e := theirs.Front()
			require.Equal(t, e.Value, v)
			theirs.Remove(e)
		case 4:
			v, err := ours.PopBack()
			if theirs.Len() == 0 {
				require.ErrorIs(t, err, dlist.ErrEmpty)
				continue
			}
			require.NoError(t, err)
			e := theirs.Back()
			require.Equal(t, e.Value, v)
			theirs.Remove(e)
		case 5:
			if theirs.Len() == 0 {
				continue
			}
			e, pos := at(rando.Intn(theirs.Len()))
			checkValue(t, pos, e.Value)
			theirs.Remove(e)
			_, err := ours.Erase(pos)
			require.NoError(t, err)
		case 6:
			if theirs.Len() == 0 {
				continue
			}
			e, pos := at(rando.Intn(theirs.Len()))
			theirs.MoveToFront(e)
			require.NoError(t, ours.MoveToFront(pos))
		}

		var want []int
		for e := theirs.Front(); e != nil; e = e.Next() {
			want = append(want, e.Value)
		}
		checkList(t, ours, want...)
	}
}
