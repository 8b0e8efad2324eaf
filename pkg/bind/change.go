package bind

import "fmt"

// ChangeKind identifies the category of an attribute change.
type ChangeKind int

const (
	// ChangeCreate means the attribute received its first value.
	ChangeCreate ChangeKind = iota
	// ChangeUpdate means an existing value was replaced.
	ChangeUpdate
	// ChangeDelete means the attribute's value was removed.
	ChangeDelete
	// ChangeEvent means a one-shot event was emitted through the attribute.
	ChangeEvent
)

// String returns a human-readable representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeCreate:
		return "create"
	case ChangeUpdate:
		return "update"
	case ChangeDelete:
		return "delete"
	case ChangeEvent:
		return "event"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes a single attribute mutation on an owner object.
//
// The engine forwards changes verbatim to every write handler in the chain
// and imposes no meaning on the fields; producing accurate changes is the
// owner's job.
type Change struct {
	// Kind categorizes the mutation.
	Kind ChangeKind
	// Name is the attribute that changed.
	Name string
	// Old is the previous value. Nil for ChangeCreate and ChangeEvent.
	Old any
	// New is the current value, or the payload for ChangeEvent.
	New any
}
