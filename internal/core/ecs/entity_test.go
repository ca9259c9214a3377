package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntityAllocator_CreateAssignsDistinctHandles(t *testing.T) {
	var a entityAllocator

	e0 := a.create()
	e1 := a.create()

	require.NotEqual(t, e0, e1)
	require.True(t, a.alive(e0))
	require.True(t, a.alive(e1))
}

func TestEntityAllocator_DestroyThenRecycle(t *testing.T) {
	var a entityAllocator

	e0 := a.create()
	require.True(t, a.destroy(e0))
	require.False(t, a.alive(e0))

	e1 := a.create()
	require.Equal(t, e0.Index(), e1.Index(), "index should be recycled")
	require.NotEqual(t, e0.Generation(), e1.Generation(), "generation must not repeat")
	require.False(t, a.alive(e0), "stale handle must stay dead after recycling")
	require.True(t, a.alive(e1))
}

func TestEntityAllocator_DestroyIsFalseWhenNotAlive(t *testing.T) {
	var a entityAllocator

	e0 := a.create()
	require.True(t, a.destroy(e0))
	require.False(t, a.destroy(e0), "destroying twice is a no-op")

	var stray Entity
	require.False(t, a.destroy(stray))
}

func TestEntity_IsNull(t *testing.T) {
	var zero Entity
	require.True(t, zero.IsNull())

	var a entityAllocator
	require.False(t, a.create().IsNull())
}
