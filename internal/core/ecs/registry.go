package ecs

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// TypeID is the stable, small integer identifier assigned to a
// component type on first use. It is scoped to a single Registry.
type TypeID uint32

// Registry owns one component pool per registered component type and
// mediates every mutation that could affect a persistent view's index.
// It is not safe for concurrent use.
type Registry struct {
	entities entityAllocator

	typeIDs map[reflect.Type]TypeID
	pools   []poolHandle // indexed by TypeID

	indices       []*persistentIndex
	bySignature   map[string]*persistentIndex
	subscriptions map[TypeID][]*persistentIndex

	log *zap.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a structured logger for the registry's
// coarse-grained lifecycle events (pool creation, persistent-view
// construction, sorts). A nil logger is replaced with a no-op logger so
// Registry never needs a nil check on the hot path.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry constructs an empty registry. Pools and persistent indices
// are created lazily, on first use.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		typeIDs:       make(map[reflect.Type]TypeID),
		bySignature:   make(map[string]*persistentIndex),
		subscriptions: make(map[TypeID][]*persistentIndex),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create issues a new entity with no components.
func (r *Registry) Create() Entity { return r.entities.create() }

// Alive reports whether e currently denotes a live entity.
func (r *Registry) Alive(e Entity) bool { return r.entities.alive(e) }

// Destroy removes e from every pool that contains it (which in turn
// drives persistent-index maintenance) and recycles its index.
// Destroying an entity that is not alive is a no-op.
func (r *Registry) Destroy(e Entity) {
	if !r.entities.alive(e) {
		return
	}
	for _, p := range r.pools {
		if p == nil || !p.has(e) {
			continue
		}
		p.removeEntity(e)
		r.notify(p.typeID(), e)
	}
	r.entities.destroy(e)
}

// Type returns T's stable TypeID within this registry, assigning one on
// first use.
func Type[T any](r *Registry) TypeID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := r.typeIDs[t]; ok {
		return id
	}
	id := TypeID(len(r.pools))
	r.typeIDs[t] = id
	r.pools = append(r.pools, nil)
	r.log.Debug("ecs: registered component type", zap.String("type", t.String()), zap.Uint32("type_id", uint32(id)))
	return id
}

// Reserve ensures a pool for T exists without inserting anything. The
// capacity hint n is accepted for interface parity with callers that
// know their entity counts up front, but this implementation grows
// pools on demand and otherwise ignores it.
func Reserve[T any](r *Registry, n int) {
	poolFor[T](r)
}

func poolFor[T any](r *Registry) *pool[T] {
	id := Type[T](r)
	if r.pools[id] == nil {
		p := newPool[T](id)
		r.pools[id] = p
		r.log.Debug("ecs: created pool", zap.Uint32("type_id", uint32(id)))
	}
	return r.pools[id].(*pool[T])
}

// lookupPool returns T's pool without creating one: Get and Has are
// read-only queries and must not have the side effect of allocating
// storage for a type that was never assigned.
func lookupPool[T any](r *Registry) *pool[T] {
	id, ok := r.typeIDs[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok || r.pools[id] == nil {
		return nil
	}
	return r.pools[id].(*pool[T])
}

// Assign attaches component v of type T to e. Panics if e already has a
// T component. It returns a pointer to the stored value and drives
// persistent-index maintenance for every index whose signature mentions
// T.
func Assign[T any](r *Registry, e Entity, v T) *T {
	p := poolFor[T](r)
	if p.has(e) {
		panic(fmt.Sprintf("ecs.Assign: entity %v already has this component", e))
	}
	ref := p.insert(e, v)
	r.notify(p.id, e)
	return ref
}

// Remove detaches T from e. Panics if e has no T component.
func Remove[T any](r *Registry, e Entity) {
	p := poolFor[T](r)
	if !p.erase(e) {
		panic(fmt.Sprintf("ecs.Remove: entity %v has no such component", e))
	}
	r.notify(p.id, e)
}

// Get returns a pointer to e's T component. Panics if e has no T
// component.
func Get[T any](r *Registry, e Entity) *T {
	p := lookupPool[T](r)
	if p == nil {
		panic(fmt.Sprintf("ecs.Get: entity %v has no such component", e))
	}
	ref := p.get(e)
	if ref == nil {
		panic(fmt.Sprintf("ecs.Get: entity %v has no such component", e))
	}
	return ref
}

// Has reports whether e currently carries a T component.
func Has[T any](r *Registry, e Entity) bool {
	p := lookupPool[T](r)
	if p == nil {
		return false
	}
	return p.has(e)
}

// Has2 reports whether e carries both A and B.
func Has2[A, B any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e)
}

// Has3 reports whether e carries A, B and C.
func Has3[A, B, C any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e) && Has[C](r, e)
}

// Has4 reports whether e carries A, B, C and D.
func Has4[A, B, C, D any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e) && Has[C](r, e) && Has[D](r, e)
}

// Sort reorders T's pool so that subsequent view iteration follows cmp's
// ascending order. It invalidates iterators over T's pool and any
// persistent view's ordering; callers typically follow it with a
// matching SortPersistentBy* call.
func Sort[T any](r *Registry, cmp func(a, b T) bool) {
	p := poolFor[T](r)
	p.sort(cmp)
	r.log.Debug("ecs: sorted pool", zap.Uint32("type_id", uint32(p.id)))
}

// notify runs persistent-index maintenance for every index subscribed to
// changedType. It is called after every Assign/Remove/Destroy-driven pool
// mutation.
func (r *Registry) notify(changedType TypeID, e Entity) {
	for _, idx := range r.subscriptions[changedType] {
		idx.reconcile(r, e)
	}
}
