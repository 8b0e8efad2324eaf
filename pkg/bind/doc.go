// Package bind implements the data-binding core of a declarative UI toolkit.
//
// The central type is [Engine], a dispatch table that routes attribute reads
// and writes through per-attribute handler chains. An engine holds two
// independent registries: one read handler per attribute name, and an ordered
// chain of write handlers per attribute name.
//
// # Handlers
//
// A [ReadHandler] computes the current value of a bound attribute on demand.
// A [WriteHandler] reacts to a reported change in a dependency. Both receive
// the owner object and the attribute name; the engine treats the owner as an
// opaque handle and never inspects it.
//
// Handlers are usually closures adapted with [ReadHandlerFunc] and
// [WriteHandlerFunc]:
//
//	engine := bind.NewEngine()
//	engine.SetReadHandler("area", bind.ReadHandlerFunc(
//	    func(owner any, name string) (any, error) {
//	        r := owner.(*rect)
//	        return r.w * r.h, nil
//	    }))
//
// # Dispatch
//
// The engine is purely reactive: it never initiates calls itself. The owner's
// attribute machinery calls [Engine.Read] when a bound attribute is accessed
// and no cached value exists, and [Engine.Write] whenever a dependency
// changes. Reading an attribute that was never bound for reading is a binding
// error and fails with [NoReadHandlerError]; writing an attribute with no
// registered write handlers is a normal no-op (read-only attributes are
// expected).
//
// # Instantiation
//
// A binding table is compiled once per owner type and instantiated per owner
// instance with [Engine.Copy]. The copy shares the (immutable) handler
// objects but owns independent registries, so dynamic re-binding on one
// instance never leaks into another. See the declarative package for the
// owner-side protocol built on this.
//
// # Concurrency
//
// Engines are NOT thread-safe. Read and Write are ordinary synchronous calls
// made on whatever thread the owner runs on; callers that share an engine
// across goroutines must serialize access themselves. Re-entrancy is
// permitted: a write handler may trigger further reads and writes, and the
// engine does not detect cycles — bounding cascades is the caller's job.
package bind
