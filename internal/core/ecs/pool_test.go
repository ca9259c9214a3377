package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_InsertGetErase(t *testing.T) {
	var a entityAllocator
	p := newPool[int](0)

	e0 := a.create()
	ref := p.insert(e0, 42)
	require.Equal(t, 42, *ref)
	require.True(t, p.has(e0))
	require.Equal(t, 42, *p.get(e0))

	*p.get(e0) = 43
	require.Equal(t, 43, *p.get(e0))

	require.True(t, p.erase(e0))
	require.False(t, p.has(e0))
	require.Nil(t, p.get(e0))
}

func TestPool_CoIndexing(t *testing.T) {
	var a entityAllocator
	p := newPool[string](0)

	es := []Entity{a.create(), a.create(), a.create()}
	for i, e := range es {
		p.insert(e, string(rune('a'+i)))
	}

	for i, e := range p.dense {
		require.Equal(t, e, es[i])
		require.Equal(t, p.components[i], string(rune('a'+i)))
	}
}

func TestPool_ReverseInsertionOrder(t *testing.T) {
	var a entityAllocator
	p := newPool[int](0)

	ea, eb, ec := a.create(), a.create(), a.create()
	p.insert(ea, 0)
	p.insert(eb, 1)
	p.insert(ec, 2)

	var got []Entity
	p.each(func(e Entity, _ *int) { got = append(got, e) })
	require.Equal(t, []Entity{ec, eb, ea}, got)
}

func TestPool_Position(t *testing.T) {
	var a entityAllocator
	p := newPool[int](0)

	e0, e1 := a.create(), a.create()
	p.insert(e0, 0)
	p.insert(e1, 1)

	require.Equal(t, 0, p.position(e0))
	require.Equal(t, 1, p.position(e1))

	var stray Entity
	require.Equal(t, -1, p.position(stray))
}

func TestPool_SortAscendingViewOrder(t *testing.T) {
	var a entityAllocator
	p := newPool[int](0)

	ea, eb, ec := a.create(), a.create(), a.create()
	p.insert(ea, 0)
	p.insert(eb, 1)
	p.insert(ec, 2)

	p.sort(func(x, y int) bool { return x < y })

	var got []int
	p.each(func(_ Entity, c *int) { got = append(got, *c) })
	require.Equal(t, []int{0, 1, 2}, got)
}
