package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntitySet_InsertHasErase(t *testing.T) {
	var a entityAllocator
	var s entitySet

	e0 := a.create()
	e1 := a.create()

	require.False(t, s.has(e0))
	require.True(t, s.insert(e0))
	require.True(t, s.has(e0))
	require.False(t, s.insert(e0), "duplicate insert is a no-op")

	require.True(t, s.insert(e1))
	require.Equal(t, 2, s.size())

	require.True(t, s.erase(e0))
	require.False(t, s.has(e0))
	require.True(t, s.has(e1), "swap-and-pop must not disturb the surviving entity")
	require.Equal(t, 1, s.size())

	require.False(t, s.erase(e0), "erasing an absent entity is a no-op")
}

func TestEntitySet_EraseMiddleSwapsFromTail(t *testing.T) {
	var a entityAllocator
	var s entitySet

	es := []Entity{a.create(), a.create(), a.create()}
	for _, e := range es {
		s.insert(e)
	}

	s.erase(es[0])

	require.True(t, s.has(es[1]))
	require.True(t, s.has(es[2]))
	require.Equal(t, 2, s.size())
	require.Equal(t, es[2], s.dense[0], "the last entity moves into the erased slot")
}
