package ecs

// RawView iterates a single component pool's dense array directly,
// yielding components rather than entities. Constructing one creates T's
// pool if it does not already exist.
type RawView[T any] struct {
	pool *pool[T]
}

// RawViewOf constructs a RawView over T's pool.
func RawViewOf[T any](r *Registry) RawView[T] {
	return RawView[T]{pool: poolFor[T](r)}
}

// Len returns the number of components in the view.
func (v RawView[T]) Len() int { return v.pool.size() }

// Empty reports whether the view has no components.
func (v RawView[T]) Empty() bool { return v.pool.size() == 0 }

// At returns a pointer to the component at view index i (0 = most
// recently assigned).
func (v RawView[T]) At(i int) *T {
	return &v.pool.components[v.pool.viewIndex(i)]
}

// Data returns the pool's dense entity array, parallel to Raw().
func (v RawView[T]) Data() []Entity { return v.pool.entities() }

// Raw returns the pool's dense component array, in physical (append)
// order — callers that want reverse-insertion order should use Each or
// At instead.
func (v RawView[T]) Raw() []T { return v.pool.raw() }

// Each invokes f for every component in the view, in reverse-insertion
// order. Mutating the component through f is observed by subsequent
// reads.
func (v RawView[T]) Each(f func(c *T)) {
	for i := len(v.pool.dense) - 1; i >= 0; i-- {
		f(&v.pool.components[i])
	}
}
