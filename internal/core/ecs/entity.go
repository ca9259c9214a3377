package ecs

import "fmt"

// Entity is an opaque handle identifying a row in the world. It combines a
// recyclable index with a generation tag so that a stale handle referring
// to a destroyed-and-recycled index can never be mistaken for the entity
// that currently occupies that index.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the dense index portion of the handle. Sparse sets use
// this as the key into their sparse array.
func (e Entity) Index() uint32 { return e.index }

// Generation returns the recycling tag.
func (e Entity) Generation() uint32 { return e.generation }

// IsNull reports whether e is the zero Entity. A null entity is never
// alive and never present in any pool.
func (e Entity) IsNull() bool { return e.index == 0 && e.generation == 0 }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.index, e.generation)
}

// entityAllocator issues and recycles entity handles.
//
// versions[idx] == 0 means the index is dead (never created, or destroyed
// and not yet recreated). A live index holds the generation last handed
// out for it, drawn from a monotonic counter so two entities never share
// a (index, generation) pair even across recycling.
type entityAllocator struct {
	versions   []uint32
	free       []uint32
	nextGenVer uint32
}

func (a *entityAllocator) create() Entity {
	a.nextGenVer++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.versions[idx] = a.nextGenVer
		return Entity{index: idx, generation: a.nextGenVer}
	}
	idx := uint32(len(a.versions))
	a.versions = append(a.versions, a.nextGenVer)
	return Entity{index: idx, generation: a.nextGenVer}
}

func (a *entityAllocator) alive(e Entity) bool {
	if e.IsNull() || int(e.index) >= len(a.versions) {
		return false
	}
	return a.versions[e.index] != 0 && a.versions[e.index] == e.generation
}

func (a *entityAllocator) destroy(e Entity) bool {
	if !a.alive(e) {
		return false
	}
	a.versions[e.index] = 0
	a.free = append(a.free, e.index)
	return true
}
