package ecs

// RuntimeView mirrors the join in View2/View3 but is parameterised at
// call time by a slice of TypeID rather than by compile-time type
// parameters. Component access is not type-erased here — Each only
// passes the entity; callers recover components via Get[T] using the
// TypeIDs they already know.
type RuntimeView struct {
	j     join
	valid bool
}

// RuntimeViewOf constructs a view over the pools named by ids.
//
// If any id names a pool that does not exist yet, the view is
// permanently empty, even if a pool for that type is created later — the
// existence check runs once, here, at construction. An empty ids slice
// is also permanently empty.
func RuntimeViewOf(r *Registry, ids []TypeID) RuntimeView {
	if len(ids) == 0 {
		return RuntimeView{valid: false}
	}
	pools := make([]poolHandle, 0, len(ids))
	for _, id := range ids {
		if int(id) >= len(r.pools) || r.pools[id] == nil {
			return RuntimeView{valid: false}
		}
		pools = append(pools, r.pools[id])
	}
	return RuntimeView{j: newJoin(pools), valid: true}
}

// Contains reports whether e matches every named pool. Always false for
// an invalid (missing-pool or empty-range) view.
func (v RuntimeView) Contains(e Entity) bool {
	return v.valid && v.j.contains(e)
}

// Size returns an upper bound on the number of matching entities; 0 for
// an invalid view.
func (v RuntimeView) Size() int {
	if !v.valid {
		return 0
	}
	return v.j.size()
}

// Empty is exact, unlike Size.
func (v RuntimeView) Empty() bool {
	return !v.valid || v.j.empty()
}

// Each invokes f with each matching entity; a no-op for an invalid view.
func (v RuntimeView) Each(f func(e Entity)) {
	if !v.valid {
		return
	}
	v.j.each(f)
}

// RuntimeCursor is an iterator over a RuntimeView, positioned by Find.
type RuntimeCursor struct {
	c joinCursor
}

func (c RuntimeCursor) Done() bool     { return c.c.Done() }
func (c RuntimeCursor) Entity() Entity { return c.c.Entity() }
func (c *RuntimeCursor) Next()         { c.c.Next() }

// End returns the view's one-past-the-last cursor position.
func (v RuntimeView) End() RuntimeCursor {
	if !v.valid {
		return RuntimeCursor{c: joinCursor{physPos: -1}}
	}
	return RuntimeCursor{c: v.j.end()}
}

// Find positions a cursor at e, or End() if e does not match.
func (v RuntimeView) Find(e Entity) RuntimeCursor {
	if !v.valid {
		return v.End()
	}
	return RuntimeCursor{c: v.j.find(e)}
}
