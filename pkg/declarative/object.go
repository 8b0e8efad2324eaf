// Package declarative provides the owner side of the binding protocol: an
// attribute-storage object whose reads and writes are routed through a
// bind.Engine, and a prototype type that instantiates one compiled binding
// table per object.
//
// Object is NOT thread-safe. Like the engine it wraps, it expects all access
// on a single thread; coordinating background work is the caller's job.
package declarative

import "github.com/go-drift/bind/pkg/bind"

// Object is a declarative owner: a bag of named attributes backed by a
// binding engine. Reading an attribute with no stored value computes it
// through the engine's read handler and caches the result; storing a value
// notifies listeners and dispatches the engine's write chain.
type Object struct {
	engine    *bind.Engine
	values    map[string]any
	listeners map[int]func(bind.Change)
	nextID    int
}

// NewObject creates an object dispatching through the given engine.
// A nil engine gets a fresh empty one, leaving every attribute unbound.
func NewObject(engine *bind.Engine) *Object {
	if engine == nil {
		engine = bind.NewEngine()
	}
	return &Object{
		engine:    engine,
		values:    make(map[string]any),
		listeners: make(map[int]func(bind.Change)),
	}
}

// Engine returns the object's binding engine, for dynamic re-binding.
func (o *Object) Engine() *bind.Engine {
	return o.engine
}

// AddListener registers fn to be called for every change on the object.
// Returns an unregister function. Listener invocation order is unspecified.
func (o *Object) AddListener(fn func(bind.Change)) func() {
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Object) ListenerCount() int {
	return len(o.listeners)
}

// Get returns the value of the named attribute. A stored or previously
// computed value is returned as-is; otherwise the value is computed through
// the engine's read handler and cached until Set, Delete, or Invalidate
// touches the attribute. An attribute that is neither stored nor bound for
// reading fails with bind.NoReadHandlerError.
func (o *Object) Get(name string) (any, error) {
	if v, ok := o.values[name]; ok {
		return v, nil
	}
	v, err := o.engine.Read(o, name)
	if err != nil {
		return nil, err
	}
	o.values[name] = v
	return v, nil
}

// Set stores a value for the named attribute, notifies listeners, and
// dispatches the change to the engine's write chain. The first Set of an
// attribute reports ChangeCreate; later ones report ChangeUpdate with the
// previous value. A write-handler error propagates to the caller; the value
// stays stored and earlier handlers' effects stand.
func (o *Object) Set(name string, value any) error {
	old, existed := o.values[name]
	o.values[name] = value

	change := bind.Change{Kind: bind.ChangeCreate, Name: name, New: value}
	if existed {
		change.Kind = bind.ChangeUpdate
		change.Old = old
	}
	return o.dispatch(change)
}

// Delete removes the stored value for the named attribute, notifying
// listeners and the write chain with ChangeDelete. Deleting an attribute
// with no stored value is a no-op.
func (o *Object) Delete(name string) error {
	old, ok := o.values[name]
	if !ok {
		return nil
	}
	delete(o.values, name)
	return o.dispatch(bind.Change{Kind: bind.ChangeDelete, Name: name, Old: old})
}

// Emit dispatches a one-shot event through the named attribute without
// touching stored values. The payload travels in the change's New field.
func (o *Object) Emit(name string, payload any) error {
	return o.dispatch(bind.Change{Kind: bind.ChangeEvent, Name: name, New: payload})
}

// Invalidate drops the cached value for the named attribute so the next Get
// recomputes it. No change is reported: invalidation marks a value stale, it
// does not mutate it.
func (o *Object) Invalidate(name string) {
	delete(o.values, name)
}

func (o *Object) dispatch(change bind.Change) error {
	for _, fn := range o.listeners {
		fn(change)
	}
	return o.engine.Write(o, change.Name, change)
}
