package bind

import "fmt"

// NoReadHandlerError reports a read of an attribute that was never bound for
// read access. It indicates a binding error in the surrounding toolkit, not
// a recoverable condition: the engine always propagates it to the caller.
type NoReadHandlerError struct {
	// Name is the attribute the read was dispatched for.
	Name string
}

func (e *NoReadHandlerError) Error() string {
	return fmt.Sprintf("bind: no read handler for attribute %q", e.Name)
}
