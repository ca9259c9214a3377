package ecs

// View iterates a single component pool's dense entity array, yielding
// entities rather than components. It shares the same backing pool as
// RawView[T].
type View[T any] struct {
	pool *pool[T]
}

// ViewOf constructs a View over T's pool.
func ViewOf[T any](r *Registry) View[T] {
	return View[T]{pool: poolFor[T](r)}
}

// Len returns the number of entities in the view.
func (v View[T]) Len() int { return v.pool.size() }

// Empty reports whether the view has no entities.
func (v View[T]) Empty() bool { return v.pool.size() == 0 }

// Contains reports pool membership.
func (v View[T]) Contains(e Entity) bool { return v.pool.has(e) }

// Get returns e's component. Requires Contains(e).
func (v View[T]) Get(e Entity) *T { return v.pool.get(e) }

// At returns the entity at view index i (0 = most recently assigned).
func (v View[T]) At(i int) Entity { return v.pool.dense[v.pool.viewIndex(i)] }

// Each invokes f for every (entity, *component) pair, in
// reverse-insertion order.
func (v View[T]) Each(f func(e Entity, c *T)) { v.pool.each(f) }

// Iterator walks a View[T] in its reverse-insertion view order, starting
// from a position established by Find. viewPos == pool.size() denotes
// end().
type Iterator[T any] struct {
	pool    *pool[T]
	viewPos int
}

// Done reports whether the iterator has advanced past the last element.
func (it Iterator[T]) Done() bool { return it.viewPos >= it.pool.size() }

// Entity returns the entity at the iterator's current position.
// Calling it when Done() is a precondition violation.
func (it Iterator[T]) Entity() Entity { return it.pool.dense[it.pool.viewIndex(it.viewPos)] }

// Next advances the iterator by one view position.
func (it *Iterator[T]) Next() { it.viewPos++ }

// End returns the view's one-past-the-last iterator position.
func (v View[T]) End() Iterator[T] { return Iterator[T]{pool: v.pool, viewPos: v.pool.size()} }

// Find positions an iterator at e, or returns End() if e is not in the
// view. Find(e) != End() iff Contains(e).
func (v View[T]) Find(e Entity) Iterator[T] {
	if !v.pool.has(e) {
		return v.End()
	}
	physicalPos := v.pool.sparse[e.Index()]
	viewPos := v.pool.size() - 1 - int(physicalPos)
	return Iterator[T]{pool: v.pool, viewPos: viewPos}
}
