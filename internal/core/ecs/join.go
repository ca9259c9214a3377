package ecs

// join is the on-the-fly multi-component join engine shared by the
// fixed-arity generic views (View2, View3) and the dynamically-typed
// RuntimeView, so typed and runtime views are guaranteed to agree — both
// are thin façades over this one code path.
//
// The driving pool is the smallest of the supplied pools; ties favor the
// leftmost pool in the argument list.
type join struct {
	driving poolHandle
	others  []poolHandle
}

func newJoin(pools []poolHandle) join {
	drivingIdx := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].size() < pools[drivingIdx].size() {
			drivingIdx = i
		}
	}
	others := make([]poolHandle, 0, len(pools)-1)
	for i, p := range pools {
		if i != drivingIdx {
			others = append(others, p)
		}
	}
	return join{driving: pools[drivingIdx], others: others}
}

func (j join) matchOthers(e Entity) bool {
	for _, o := range j.others {
		if !o.has(e) {
			return false
		}
	}
	return true
}

// contains reports whether every pool in the join has e.
func (j join) contains(e Entity) bool {
	return j.driving.has(e) && j.matchOthers(e)
}

// size returns the driving pool's size, an upper bound on the number of
// matching entities.
func (j join) size() int { return j.driving.size() }

// empty is exact, unlike size.
func (j join) empty() bool {
	ent := j.driving.entities()
	for i := len(ent) - 1; i >= 0; i-- {
		if j.matchOthers(ent[i]) {
			return false
		}
	}
	return true
}

// each visits every matching entity, driven by the driving pool's
// reverse-insertion view order.
func (j join) each(f func(Entity)) {
	ent := j.driving.entities()
	for i := len(ent) - 1; i >= 0; i-- {
		if e := ent[i]; j.matchOthers(e) {
			f(e)
		}
	}
}

// joinCursor walks the driving pool's dense array from a starting
// physical position down to 0, honoring the filter. physPos == -1
// denotes end().
type joinCursor struct {
	j       *join
	physPos int
}

func (j *join) end() joinCursor { return joinCursor{j: j, physPos: -1} }

// find positions a cursor at e, or returns end() if e does not match.
func (j *join) find(e Entity) joinCursor {
	if !j.contains(e) {
		return j.end()
	}
	return joinCursor{j: j, physPos: j.driving.position(e)}
}

func (c joinCursor) Done() bool { return c.physPos < 0 }

func (c joinCursor) Entity() Entity { return c.j.driving.entities()[c.physPos] }

func (c *joinCursor) Next() {
	ent := c.j.driving.entities()
	for p := c.physPos - 1; p >= 0; p-- {
		if c.j.matchOthers(ent[p]) {
			c.physPos = p
			return
		}
	}
	c.physPos = -1
}
