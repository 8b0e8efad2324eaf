package declarative

import "github.com/go-drift/bind/pkg/bind"

// Prototype holds one compiled binding table for an owner type. Binding
// resolution can be expensive, so it runs once per type; every instance then
// gets an independent copy of the table via Instantiate.
type Prototype struct {
	engine *bind.Engine
}

// NewPrototype wraps a compiled engine. A nil engine gets a fresh empty one.
func NewPrototype(engine *bind.Engine) *Prototype {
	if engine == nil {
		engine = bind.NewEngine()
	}
	return &Prototype{engine: engine}
}

// Engine returns the prototype's engine. Registrations made here are picked
// up by future Instantiate calls, never by existing instances.
func (p *Prototype) Engine() *bind.Engine {
	return p.engine
}

// Instantiate creates an object with an independent copy of the binding
// table. Re-binding the object's engine never affects the prototype or any
// sibling instance.
func (p *Prototype) Instantiate() *Object {
	return NewObject(p.engine.Copy())
}
