package manifest

import (
	"fmt"

	"github.com/go-drift/bind/pkg/bind"
)

// Resolver maps handler names from a manifest to implementations.
type Resolver interface {
	// ReadHandler returns the read handler registered under name.
	ReadHandler(name string) (bind.ReadHandler, bool)
	// WriteHandler returns the write handler registered under name.
	WriteHandler(name string) (bind.WriteHandler, bool)
}

// HandlerSet is a Resolver backed by plain registration maps. The zero
// value is not usable; call NewHandlerSet.
type HandlerSet struct {
	reads  map[string]bind.ReadHandler
	writes map[string]bind.WriteHandler
}

// NewHandlerSet creates an empty handler set.
func NewHandlerSet() *HandlerSet {
	return &HandlerSet{
		reads:  make(map[string]bind.ReadHandler),
		writes: make(map[string]bind.WriteHandler),
	}
}

// RegisterRead registers a read handler under name, replacing any previous
// registration.
func (s *HandlerSet) RegisterRead(name string, h bind.ReadHandler) {
	s.reads[name] = h
}

// RegisterWrite registers a write handler under name, replacing any
// previous registration.
func (s *HandlerSet) RegisterWrite(name string, h bind.WriteHandler) {
	s.writes[name] = h
}

// ReadHandler implements Resolver.
func (s *HandlerSet) ReadHandler(name string) (bind.ReadHandler, bool) {
	h, ok := s.reads[name]
	return h, ok
}

// WriteHandler implements Resolver.
func (s *HandlerSet) WriteHandler(name string) (bind.WriteHandler, bool) {
	h, ok := s.writes[name]
	return h, ok
}

// Build compiles one object's bindings into an engine, resolving each
// handler name through r. Bindings apply in manifest order, so write chains
// run in the order they were declared. The resulting engine is the
// per-type prototype; instantiate it per owner with Engine.Copy (see
// declarative.Prototype).
func Build(spec ObjectSpec, r Resolver) (*bind.Engine, error) {
	engine := bind.NewEngine()
	for _, b := range spec.Bindings {
		switch b.Mode {
		case ModeRead:
			h, ok := r.ReadHandler(b.Handler)
			if !ok {
				return nil, fmt.Errorf("manifest: %s.%s: unknown read handler %q", spec.Type, b.Attr, b.Handler)
			}
			engine.SetReadHandler(b.Attr, h)
		case ModeWrite:
			h, ok := r.WriteHandler(b.Handler)
			if !ok {
				return nil, fmt.Errorf("manifest: %s.%s: unknown write handler %q", spec.Type, b.Attr, b.Handler)
			}
			engine.AddWriteHandler(b.Attr, h)
		default:
			return nil, fmt.Errorf("manifest: %s.%s: unknown mode %q", spec.Type, b.Attr, b.Mode)
		}
	}
	return engine, nil
}
