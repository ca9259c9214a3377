package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuntimeView_MissingPoolIsPermanentlyEmpty(t *testing.T) {
	r := NewRegistry()
	e := r.Create()
	Assign[int](r, e, 1)

	intID := Type[int](r)
	byteID := Type[byte](r) // registers the type id, but no pool yet

	v := RuntimeViewOf(r, []TypeID{intID, byteID})
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Size())

	Assign[byte](r, e, 2) // creates byte's pool only now
	require.True(t, v.Empty(), "view snapshot was taken before byte's pool existed")
}

func TestRuntimeView_EmptyIDListIsPermanentlyEmpty(t *testing.T) {
	r := NewRegistry()
	v := RuntimeViewOf(r, nil)
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Size())
}

func TestRuntimeView_AgreesWithTypedView(t *testing.T) {
	r := NewRegistry()
	e0, e1 := r.Create(), r.Create()
	Assign[int](r, e0, 1)
	Assign[int](r, e1, 2)
	Assign[string](r, e0, "a")

	intID, strID := Type[int](r), Type[string](r)
	rv := RuntimeViewOf(r, []TypeID{intID, strID})
	tv := View2Of[int, string](r)

	require.Equal(t, tv.Contains(e0), rv.Contains(e0))
	require.Equal(t, tv.Contains(e1), rv.Contains(e1))

	var got []Entity
	rv.Each(func(e Entity) { got = append(got, e) })
	require.Equal(t, []Entity{e0}, got)
}

func TestRuntimeView_Idempotence(t *testing.T) {
	r := NewRegistry()
	e0, e1, e2 := r.Create(), r.Create(), r.Create()
	Assign[int](r, e0, 1)
	Assign[int](r, e1, 2)
	Assign[int](r, e2, 3)
	Assign[string](r, e0, "a")
	Assign[string](r, e2, "c")

	intID, strID := Type[int](r), Type[string](r)

	v1 := RuntimeViewOf(r, []TypeID{intID, strID})
	v2 := RuntimeViewOf(r, []TypeID{intID, strID})

	var got1, got2 []Entity
	v1.Each(func(e Entity) { got1 = append(got1, e) })
	v2.Each(func(e Entity) { got2 = append(got2, e) })
	require.Equal(t, got1, got2)
}
