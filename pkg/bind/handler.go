package bind

// ReadHandler computes the value of a bound attribute.
//
// Read receives the owner object and the attribute name the value is for.
// It must not write the attribute it is computing; re-entrant reads of other
// attributes are allowed.
type ReadHandler interface {
	Read(owner any, name string) (any, error)
}

// ReadHandlerFunc adapts an ordinary function to the ReadHandler interface.
type ReadHandlerFunc func(owner any, name string) (any, error)

// Read calls f(owner, name).
func (f ReadHandlerFunc) Read(owner any, name string) (any, error) {
	return f(owner, name)
}

// WriteHandler reacts to a change notification for a bound attribute.
//
// Write receives the owner object, the attribute name, and the change that
// triggered the notification. A handler may mutate the owner and trigger
// further reads or writes; execution stays synchronous on the calling thread.
type WriteHandler interface {
	Write(owner any, name string, change Change) error
}

// WriteHandlerFunc adapts an ordinary function to the WriteHandler interface.
type WriteHandlerFunc func(owner any, name string, change Change) error

// Write calls f(owner, name, change).
func (f WriteHandlerFunc) Write(owner any, name string, change Change) error {
	return f(owner, name, change)
}
