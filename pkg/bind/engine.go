package bind

// Engine routes attribute reads and writes through per-attribute handler
// chains. It is a pure dispatch table: the only state it carries is the set
// of registered handlers, and the only transitions are registration and the
// Read/Write dispatch calls.
//
// The two registries are independent. An attribute may be bound for reading,
// for writing, for both, or for neither; presence in one registry implies
// nothing about the other. Every key is a non-empty attribute name on the
// eventual owner — registration does not validate names, the binding layer
// that produces handlers does (see the manifest package).
//
// Engine is NOT thread-safe. Callers that share one instance across
// goroutines must serialize access; distinct instances produced by Copy
// share no mutable state and need no coordination.
type Engine struct {
	readHandlers  *handlerMap[ReadHandler]
	writeHandlers *handlerMap[[]WriteHandler]
}

// NewEngine creates an engine with no bindings.
func NewEngine() *Engine {
	return &Engine{
		readHandlers:  newHandlerMap[ReadHandler](),
		writeHandlers: newHandlerMap[[]WriteHandler](),
	}
}

// SetReadHandler binds the read handler for name. At most one read handler
// exists per attribute; rebinding a name replaces the previous handler
// (last registration wins).
func (e *Engine) SetReadHandler(name string, h ReadHandler) {
	e.readHandlers.put(name, h)
}

// RemoveReadHandler unbinds the read handler for name, if any. Subsequent
// reads of name fail with [NoReadHandlerError].
func (e *Engine) RemoveReadHandler(name string) {
	e.readHandlers.remove(name)
}

// AddWriteHandler appends a write handler to the chain for name. Chains grow
// only; handlers run in the order they were added.
func (e *Engine) AddWriteHandler(name string, h WriteHandler) {
	chain, _ := e.writeHandlers.get(name)
	e.writeHandlers.put(name, append(chain, h))
}

// ClearWriteHandlers drops the whole write chain for name, if any.
func (e *Engine) ClearWriteHandlers(name string) {
	e.writeHandlers.remove(name)
}

// BoundForRead reports whether a read handler is registered for name.
func (e *Engine) BoundForRead(name string) bool {
	_, ok := e.readHandlers.get(name)
	return ok
}

// ReadNames returns the attributes bound for reading, in registration order.
func (e *Engine) ReadNames() []string {
	return e.readHandlers.keys()
}

// WriteNames returns the attributes with a write chain, in registration order.
func (e *Engine) WriteNames() []string {
	return e.writeHandlers.keys()
}

// Read computes and returns the value of the attribute bound at name by
// invoking its read handler with (owner, name).
//
// Read fails with [NoReadHandlerError] if name was never bound for reading.
// A handler error is returned unchanged; the engine never catches, wraps,
// or logs it.
func (e *Engine) Read(owner any, name string) (any, error) {
	h, ok := e.readHandlers.get(name)
	if !ok {
		return nil, &NoReadHandlerError{Name: name}
	}
	return h.Read(owner, name)
}

// Write dispatches a change to the write chain bound at name, invoking each
// handler in registration order with identical (owner, name, change)
// arguments. An attribute with no write chain is read-only: Write is a
// no-op and returns nil.
//
// A handler error aborts the chain: later handlers do not run for this
// change, and the error is returned unchanged. Earlier handlers' side
// effects stand (partial-write semantics); recovery, if any, belongs to
// the caller.
func (e *Engine) Write(owner any, name string, change Change) error {
	chain, _ := e.writeHandlers.get(name)
	for _, h := range chain {
		if err := h.Write(owner, name, change); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns an engine with the same bindings as e and no shared mutable
// state. Handler objects are shared (handlers are treated as immutable);
// the registries and every per-attribute write chain are independent, so
// registrations made on either engine after the copy never affect the other.
//
// Copy is how one compiled binding table is instantiated per owner instance
// without re-running binding resolution.
func (e *Engine) Copy() *Engine {
	return &Engine{
		readHandlers: e.readHandlers.copy(nil),
		writeHandlers: e.writeHandlers.copy(func(chain []WriteHandler) []WriteHandler {
			dup := make([]WriteHandler, len(chain))
			copy(dup, chain)
			return dup
		}),
	}
}
