package ecs

// View2 joins two component pools on the fly. Constructing one creates
// both pools if they do not already exist.
type View2[A, B any] struct {
	a *pool[A]
	b *pool[B]
	j join
}

// View2Of constructs a View2 over A's and B's pools.
func View2Of[A, B any](r *Registry) View2[A, B] {
	pa, pb := poolFor[A](r), poolFor[B](r)
	return View2[A, B]{a: pa, b: pb, j: newJoin([]poolHandle{pa, pb})}
}

func (v View2[A, B]) Contains(e Entity) bool { return v.j.contains(e) }
func (v View2[A, B]) Size() int              { return v.j.size() }
func (v View2[A, B]) Empty() bool            { return v.j.empty() }

// GetA returns e's A component. Requires Contains(e).
func (v View2[A, B]) GetA(e Entity) *A { return v.a.get(e) }

// GetB returns e's B component. Requires Contains(e).
func (v View2[A, B]) GetB(e Entity) *B { return v.b.get(e) }

// Get returns both of e's components. Requires Contains(e).
func (v View2[A, B]) Get(e Entity) (*A, *B) { return v.a.get(e), v.b.get(e) }

// Each invokes f for every matching entity.
func (v View2[A, B]) Each(f func(e Entity, a *A, b *B)) {
	v.j.each(func(e Entity) { f(e, v.a.get(e), v.b.get(e)) })
}

// Cursor2 is an iterator over a View2, positioned by Find.
type Cursor2[A, B any] struct {
	v View2[A, B]
	c joinCursor
}

func (c Cursor2[A, B]) Done() bool   { return c.c.Done() }
func (c Cursor2[A, B]) Entity() Entity { return c.c.Entity() }
func (c *Cursor2[A, B]) Next()       { c.c.Next() }

// End returns the view's one-past-the-last cursor position.
func (v View2[A, B]) End() Cursor2[A, B] { return Cursor2[A, B]{v: v, c: v.j.end()} }

// Find positions a cursor at e, or End() if e does not match.
func (v View2[A, B]) Find(e Entity) Cursor2[A, B] {
	return Cursor2[A, B]{v: v, c: v.j.find(e)}
}

// View3 joins three component pools on the fly.
type View3[A, B, C any] struct {
	a *pool[A]
	b *pool[B]
	c *pool[C]
	j join
}

// View3Of constructs a View3 over A's, B's and C's pools.
func View3Of[A, B, C any](r *Registry) View3[A, B, C] {
	pa, pb, pc := poolFor[A](r), poolFor[B](r), poolFor[C](r)
	return View3[A, B, C]{a: pa, b: pb, c: pc, j: newJoin([]poolHandle{pa, pb, pc})}
}

func (v View3[A, B, C]) Contains(e Entity) bool { return v.j.contains(e) }
func (v View3[A, B, C]) Size() int              { return v.j.size() }
func (v View3[A, B, C]) Empty() bool            { return v.j.empty() }

func (v View3[A, B, C]) GetA(e Entity) *A { return v.a.get(e) }
func (v View3[A, B, C]) GetB(e Entity) *B { return v.b.get(e) }
func (v View3[A, B, C]) GetC(e Entity) *C { return v.c.get(e) }

func (v View3[A, B, C]) Get(e Entity) (*A, *B, *C) { return v.a.get(e), v.b.get(e), v.c.get(e) }

// Each invokes f for every matching entity.
func (v View3[A, B, C]) Each(f func(e Entity, a *A, b *B, c *C)) {
	v.j.each(func(e Entity) { f(e, v.a.get(e), v.b.get(e), v.c.get(e)) })
}

// Cursor3 is an iterator over a View3, positioned by Find.
type Cursor3[A, B, C any] struct {
	v View3[A, B, C]
	c joinCursor
}

func (c Cursor3[A, B, C]) Done() bool     { return c.c.Done() }
func (c Cursor3[A, B, C]) Entity() Entity { return c.c.Entity() }
func (c *Cursor3[A, B, C]) Next()         { c.c.Next() }

func (v View3[A, B, C]) End() Cursor3[A, B, C] { return Cursor3[A, B, C]{v: v, c: v.j.end()} }

func (v View3[A, B, C]) Find(e Entity) Cursor3[A, B, C] {
	return Cursor3[A, B, C]{v: v, c: v.j.find(e)}
}
