package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView_ContainsGetAt(t *testing.T) {
	r := NewRegistry()
	e0, e1 := r.Create(), r.Create()
	Assign[int](r, e0, 10)
	Assign[int](r, e1, 20)

	v := ViewOf[int](r)
	require.Equal(t, 2, v.Len())
	require.True(t, v.Contains(e0))
	require.False(t, v.Contains(Entity{}))
	require.Equal(t, 20, *v.Get(e1))
	require.Equal(t, e1, v.At(0))
	require.Equal(t, e0, v.At(1))
}

func TestView_FindThenIterate(t *testing.T) {
	r := NewRegistry()
	ea, eb, ec := r.Create(), r.Create(), r.Create()
	Assign[int](r, ea, 0)
	Assign[int](r, eb, 1)
	Assign[int](r, ec, 2)

	v := ViewOf[int](r)

	require.True(t, v.Find(Entity{}).Done(), "find of a missing entity is End")

	it := v.Find(ec)
	require.False(t, it.Done())

	var got []Entity
	for !it.Done() {
		got = append(got, it.Entity())
		it.Next()
	}
	require.Equal(t, []Entity{ec, eb, ea}, got)
}

func TestView_EachVisitsReverseInsertionOrder(t *testing.T) {
	r := NewRegistry()
	ea, eb, ec := r.Create(), r.Create(), r.Create()
	Assign[int](r, ea, 0)
	Assign[int](r, eb, 1)
	Assign[int](r, ec, 2)

	v := ViewOf[int](r)
	var got []Entity
	v.Each(func(e Entity, _ *int) { got = append(got, e) })
	require.Equal(t, []Entity{ec, eb, ea}, got)
}
