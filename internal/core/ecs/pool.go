package ecs

import "sort"

// poolHandle is the type-erased face every component pool presents to the
// registry and to the join engine behind multi-component and runtime
// views. It lets the registry dispatch persistent-index maintenance and
// entity destruction without knowing T.
type poolHandle interface {
	typeID() TypeID
	has(e Entity) bool
	size() int
	entities() []Entity // dense, in append (physical) order
	removeEntity(e Entity) bool
	position(e Entity) int // physical dense index of e, or -1 if absent
}

// pool is the component storage for one component type: a sparse set of
// entities with a parallel dense array of component values, co-indexed
// with the entity array. dense and components grow by append and shrink
// by swap-and-pop together, so dense[i] always owns components[i].
type pool[T any] struct {
	id         TypeID
	sparse     []int32
	dense      []Entity
	components []T
}

func newPool[T any](id TypeID) *pool[T] {
	return &pool[T]{id: id}
}

func (p *pool[T]) typeID() TypeID     { return p.id }
func (p *pool[T]) size() int          { return len(p.dense) }
func (p *pool[T]) entities() []Entity { return p.dense }
func (p *pool[T]) raw() []T           { return p.components }

func (p *pool[T]) removeEntity(e Entity) bool {
	return p.erase(e)
}

func (p *pool[T]) position(e Entity) int {
	idx := e.Index()
	if int(idx) >= len(p.sparse) {
		return -1
	}
	pos := p.sparse[idx]
	if pos == noPosition || p.dense[pos] != e {
		return -1
	}
	return int(pos)
}

func (p *pool[T]) grow(index uint32) {
	if int(index) < len(p.sparse) {
		return
	}
	next := make([]int32, int(index)+1)
	copy(next, p.sparse)
	for i := len(p.sparse); i < len(next); i++ {
		next[i] = noPosition
	}
	p.sparse = next
}

func (p *pool[T]) has(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.sparse) {
		return false
	}
	pos := p.sparse[idx]
	return pos != noPosition && p.dense[pos] == e
}

// insert requires !has(e); it is only ever called from Registry.Assign,
// which is the one place the precondition can be checked against caller
// intent.
func (p *pool[T]) insert(e Entity, v T) *T {
	p.grow(e.Index())
	p.sparse[e.Index()] = int32(len(p.dense))
	p.dense = append(p.dense, e)
	p.components = append(p.components, v)
	return &p.components[len(p.components)-1]
}

func (p *pool[T]) get(e Entity) *T {
	idx := e.Index()
	if int(idx) >= len(p.sparse) {
		return nil
	}
	pos := p.sparse[idx]
	if pos == noPosition || p.dense[pos] != e {
		return nil
	}
	return &p.components[pos]
}

func (p *pool[T]) erase(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.sparse) {
		return false
	}
	pos := p.sparse[idx]
	if pos == noPosition || p.dense[pos] != e {
		return false
	}
	last := int32(len(p.dense)) - 1
	if pos != last {
		movedEntity := p.dense[last]
		p.dense[pos] = movedEntity
		p.components[pos] = p.components[last]
		p.sparse[movedEntity.Index()] = pos
	}
	p.dense = p.dense[:last]
	p.components = p.components[:last]
	p.sparse[idx] = noPosition
	return true
}

// viewIndex maps a "view index" (0 = most recently inserted) to its
// physical position in the append-ordered dense arrays.
func (p *pool[T]) viewIndex(i int) int { return len(p.dense) - 1 - i }

// each invokes f for every (entity, *component) pair in reverse-insertion
// order.
func (p *pool[T]) each(f func(Entity, *T)) {
	for i := len(p.dense) - 1; i >= 0; i-- {
		f(p.dense[i], &p.components[i])
	}
}

// sort reorders dense/components/sparse so that subsequent view-order
// iteration (each/viewIndex) visits components in cmp's ascending order.
// cmp compares two components the way sort.Slice's less does. Because
// view order is the reverse of physical storage order, the permutation
// that achieves ascending view order is the one that leaves physical
// storage in descending cmp order.
func (p *pool[T]) sort(cmp func(a, b T) bool) {
	n := len(p.dense)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return cmp(p.components[perm[j]], p.components[perm[i]])
	})
	newDense := make([]Entity, n)
	newComponents := make([]T, n)
	for newPos, oldPos := range perm {
		newDense[newPos] = p.dense[oldPos]
		newComponents[newPos] = p.components[oldPos]
	}
	p.dense = newDense
	p.components = newComponents
	for pos, e := range p.dense {
		p.sparse[e.Index()] = int32(pos)
	}
}
