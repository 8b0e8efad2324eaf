package bind

// handlerMap is a string-keyed map that preserves insertion order. Both
// engine registries are built on it: the read side stores one ReadHandler
// per name, the write side stores a []WriteHandler chain per name.
//
// Order matters: write chains run in registration order, and tooling that
// lists bindings must report them in the order they were declared.
type handlerMap[H any] struct {
	names []string
	items map[string]H
}

func newHandlerMap[H any]() *handlerMap[H] {
	return &handlerMap[H]{items: make(map[string]H)}
}

// get returns the value bound at name.
func (m *handlerMap[H]) get(name string) (H, bool) {
	h, ok := m.items[name]
	return h, ok
}

// put binds a value at name. A new name is appended to the iteration order;
// rebinding an existing name keeps its original position.
func (m *handlerMap[H]) put(name string, h H) {
	if _, ok := m.items[name]; !ok {
		m.names = append(m.names, name)
	}
	m.items[name] = h
}

// remove unbinds name. Removing an absent name is a no-op.
func (m *handlerMap[H]) remove(name string) {
	if _, ok := m.items[name]; !ok {
		return
	}
	delete(m.items, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// keys returns the bound names in insertion order.
func (m *handlerMap[H]) keys() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// copy returns an independent map with the same keys and iteration order.
// clone duplicates each value; pass nil to share values between the copies.
func (m *handlerMap[H]) copy(clone func(H) H) *handlerMap[H] {
	out := &handlerMap[H]{
		names: make([]string, len(m.names)),
		items: make(map[string]H, len(m.items)),
	}
	copy(out.names, m.names)
	for name, h := range m.items {
		if clone != nil {
			h = clone(h)
		}
		out.items[name] = h
	}
	return out
}
