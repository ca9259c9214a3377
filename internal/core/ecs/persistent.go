package ecs

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// persistentIndex is a dedicated sparse set holding the entities that
// currently possess every include type and no exclude type, kept
// coherent with pool mutations by Registry.notify.
type persistentIndex struct {
	include []TypeID
	exclude []TypeID
	set     entitySet
}

func signatureKey(include, exclude []TypeID) string {
	inc := slices.Clone(include)
	exc := slices.Clone(exclude)
	slices.Sort(inc)
	slices.Sort(exc)
	var b strings.Builder
	for _, id := range inc {
		b.WriteString(strconv.FormatUint(uint64(id), 10))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, id := range exc {
		b.WriteString(strconv.FormatUint(uint64(id), 10))
		b.WriteByte(',')
	}
	return b.String()
}

// matches recomputes full (include, exclude) membership for e directly
// against the registry's pools, rather than branching on which pool
// changed and in which direction. Both renderings are observably
// identical because insert/erase are already idempotent; this one is a
// single code path instead of several.
func (idx *persistentIndex) matches(r *Registry, e Entity) bool {
	for _, id := range idx.include {
		p := r.pools[id]
		if p == nil || !p.has(e) {
			return false
		}
	}
	for _, id := range idx.exclude {
		if int(id) < len(r.pools) && r.pools[id] != nil && r.pools[id].has(e) {
			return false
		}
	}
	return true
}

// reconcile inserts or erases e so that membership matches idx.matches,
// idempotently in both directions.
func (idx *persistentIndex) reconcile(r *Registry, e Entity) {
	if idx.matches(r, e) {
		idx.set.insert(e)
	} else {
		idx.set.erase(e)
	}
}

// getOrCreateIndex returns the persistent index for (include, exclude),
// creating and populating it on first request and returning the same
// instance on every later request for the same signature.
func getOrCreateIndex(r *Registry, include, exclude []TypeID) *persistentIndex {
	key := signatureKey(include, exclude)
	if idx, ok := r.bySignature[key]; ok {
		return idx
	}
	idx := &persistentIndex{include: include, exclude: exclude}
	r.bySignature[key] = idx
	r.indices = append(r.indices, idx)
	for _, id := range include {
		r.subscriptions[id] = append(r.subscriptions[id], idx)
	}
	for _, id := range exclude {
		r.subscriptions[id] = append(r.subscriptions[id], idx)
	}

	// Seed initial membership by scanning the smallest populated include
	// pool and reconciling each of its entities; any entity not matching
	// every include/exclude constraint is simply never inserted.
	var driver poolHandle
	for _, id := range include {
		if p := r.pools[id]; p != nil && (driver == nil || p.size() < driver.size()) {
			driver = p
		}
	}
	if driver != nil {
		for _, e := range driver.entities() {
			idx.reconcile(r, e)
		}
	}

	r.log.Debug("ecs: created persistent view", zap.String("signature", key))
	return idx
}

// PersistentView1 is the typed façade over a single-include persistent
// index — e.g. "every entity with A, excluding B".
type PersistentView1[A any] struct {
	idx *persistentIndex
	a   *pool[A]
}

// PersistentView1Of returns the registry's persistent view over A minus
// exclude, creating it on first request.
func PersistentView1Of[A any](r *Registry, exclude ...TypeID) PersistentView1[A] {
	pa := poolFor[A](r)
	idx := getOrCreateIndex(r, []TypeID{pa.id}, exclude)
	return PersistentView1[A]{idx: idx, a: pa}
}

func (v PersistentView1[A]) Size() int             { return v.idx.set.size() }
func (v PersistentView1[A]) Empty() bool            { return v.idx.set.size() == 0 }
func (v PersistentView1[A]) Contains(e Entity) bool { return v.idx.set.has(e) }
func (v PersistentView1[A]) Get(e Entity) *A        { return v.a.get(e) }
func (v PersistentView1[A]) Data() []Entity         { return v.idx.set.dense }

// Each walks the index in reverse-insertion order, the same convention
// every other view uses.
func (v PersistentView1[A]) Each(f func(e Entity, a *A)) {
	dense := v.idx.set.dense
	for i := len(dense) - 1; i >= 0; i-- {
		e := dense[i]
		f(e, v.a.get(e))
	}
}

// SortPersistentBy1 reorders v's index to match U's pool order. U must
// be A; with a single include type that is the only legal choice.
func SortPersistentBy1[A, U any](r *Registry, v PersistentView1[A]) {
	sortIndexBy[U](r, &v.idx.set)
}

// PersistentView2 is the typed façade over a two-include persistent
// index.
type PersistentView2[A, B any] struct {
	idx *persistentIndex
	a   *pool[A]
	b   *pool[B]
}

// PersistentView2Of returns the registry's persistent view over
// (A, B) minus exclude, creating it on first request.
func PersistentView2Of[A, B any](r *Registry, exclude ...TypeID) PersistentView2[A, B] {
	pa, pb := poolFor[A](r), poolFor[B](r)
	idx := getOrCreateIndex(r, []TypeID{pa.id, pb.id}, exclude)
	return PersistentView2[A, B]{idx: idx, a: pa, b: pb}
}

func (v PersistentView2[A, B]) Size() int              { return v.idx.set.size() }
func (v PersistentView2[A, B]) Empty() bool             { return v.idx.set.size() == 0 }
func (v PersistentView2[A, B]) Contains(e Entity) bool  { return v.idx.set.has(e) }
func (v PersistentView2[A, B]) GetA(e Entity) *A        { return v.a.get(e) }
func (v PersistentView2[A, B]) GetB(e Entity) *B        { return v.b.get(e) }
func (v PersistentView2[A, B]) Get(e Entity) (*A, *B)   { return v.a.get(e), v.b.get(e) }
func (v PersistentView2[A, B]) Data() []Entity          { return v.idx.set.dense }

// Each visits every entity in the index exactly once, in reverse-
// insertion order.
func (v PersistentView2[A, B]) Each(f func(e Entity, a *A, b *B)) {
	dense := v.idx.set.dense
	for i := len(dense) - 1; i >= 0; i-- {
		e := dense[i]
		f(e, v.a.get(e), v.b.get(e))
	}
}

// SortPersistentBy2 reorders v's index to match U's pool order. U must
// be A or B; that every entity in the index is also in U's pool then
// holds by construction.
func SortPersistentBy2[A, B, U any](r *Registry, v PersistentView2[A, B]) {
	sortIndexBy[U](r, &v.idx.set)
}

// PersistentView3 is the typed façade over a three-include persistent
// index.
type PersistentView3[A, B, C any] struct {
	idx *persistentIndex
	a   *pool[A]
	b   *pool[B]
	c   *pool[C]
}

// PersistentView3Of returns the registry's persistent view over
// (A, B, C) minus exclude, creating it on first request.
func PersistentView3Of[A, B, C any](r *Registry, exclude ...TypeID) PersistentView3[A, B, C] {
	pa, pb, pc := poolFor[A](r), poolFor[B](r), poolFor[C](r)
	idx := getOrCreateIndex(r, []TypeID{pa.id, pb.id, pc.id}, exclude)
	return PersistentView3[A, B, C]{idx: idx, a: pa, b: pb, c: pc}
}

func (v PersistentView3[A, B, C]) Size() int             { return v.idx.set.size() }
func (v PersistentView3[A, B, C]) Empty() bool            { return v.idx.set.size() == 0 }
func (v PersistentView3[A, B, C]) Contains(e Entity) bool { return v.idx.set.has(e) }
func (v PersistentView3[A, B, C]) GetA(e Entity) *A       { return v.a.get(e) }
func (v PersistentView3[A, B, C]) GetB(e Entity) *B       { return v.b.get(e) }
func (v PersistentView3[A, B, C]) GetC(e Entity) *C       { return v.c.get(e) }
func (v PersistentView3[A, B, C]) Data() []Entity         { return v.idx.set.dense }

func (v PersistentView3[A, B, C]) Get(e Entity) (*A, *B, *C) {
	return v.a.get(e), v.b.get(e), v.c.get(e)
}

func (v PersistentView3[A, B, C]) Each(f func(e Entity, a *A, b *B, c *C)) {
	dense := v.idx.set.dense
	for i := len(dense) - 1; i >= 0; i-- {
		e := dense[i]
		f(e, v.a.get(e), v.b.get(e), v.c.get(e))
	}
}

// SortPersistentBy3 reorders v's index to match U's pool order.
func SortPersistentBy3[A, B, C, U any](r *Registry, v PersistentView3[A, B, C]) {
	sortIndexBy[U](r, &v.idx.set)
}

// sortIndexBy rewrites set's physical dense order to match U's pool's
// physical dense order, filtered down to the entities set already
// contains. Each reads set.dense back-to-front, same as a pool, so
// mirroring the driver's physical order here reproduces the driver's
// view order on the next iteration.
func sortIndexBy[U any](r *Registry, set *entitySet) {
	driver := poolFor[U](r)
	newDense := make([]Entity, 0, set.size())
	for _, e := range driver.entities() {
		if set.has(e) {
			newDense = append(newDense, e)
		}
	}
	set.dense = newDense
	for pos, e := range newDense {
		set.grow(e.Index())
		set.sparse[e.Index()] = int32(pos)
	}
}
