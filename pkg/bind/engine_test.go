package bind

import (
	"errors"
	"reflect"
	"testing"
)

// testOwner is a minimal owner object for dispatch tests.
type testOwner struct {
	x int
}

// recordedCall captures the arguments one write-handler invocation received.
type recordedCall struct {
	id     string
	owner  any
	name   string
	change Change
}

// recorder appends one entry to a shared log per invocation, so tests can
// assert chain order and argument identity.
func recorder(id string, log *[]recordedCall) WriteHandler {
	return WriteHandlerFunc(func(owner any, name string, change Change) error {
		*log = append(*log, recordedCall{id: id, owner: owner, name: name, change: change})
		return nil
	})
}

func constRead(v any) ReadHandler {
	return ReadHandlerFunc(func(any, string) (any, error) {
		return v, nil
	})
}

func TestEngineRead(t *testing.T) {
	e := NewEngine()
	e.SetReadHandler("title", constRead("hello"))

	v, err := e.Read(&testOwner{}, "title")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if v != "hello" {
		t.Errorf("Read() = %v, want hello", v)
	}
}

func TestEngineRead_NoHandler(t *testing.T) {
	e := NewEngine()
	e.SetReadHandler("title", constRead("hello"))

	_, err := e.Read(&testOwner{}, "subtitle")
	if err == nil {
		t.Fatal("Read() of an unbound attribute succeeded")
	}
	var nrh *NoReadHandlerError
	if !errors.As(err, &nrh) {
		t.Fatalf("Read() error = %T, want *NoReadHandlerError", err)
	}
	if nrh.Name != "subtitle" {
		t.Errorf("error names attribute %q, want subtitle", nrh.Name)
	}
}

func TestEngineRead_LastRegistrationWins(t *testing.T) {
	e := NewEngine()
	e.SetReadHandler("title", constRead("first"))
	e.SetReadHandler("title", constRead("second"))

	v, err := e.Read(&testOwner{}, "title")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if v != "second" {
		t.Errorf("Read() = %v, want second (last registration wins)", v)
	}
}

func TestEngineRead_HandlerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	e := NewEngine()
	e.SetReadHandler("title", ReadHandlerFunc(func(any, string) (any, error) {
		return nil, boom
	}))

	_, err := e.Read(&testOwner{}, "title")
	if !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want the handler's error unchanged", err)
	}
}

func TestEngineRead_RemovedHandler(t *testing.T) {
	e := NewEngine()
	e.SetReadHandler("title", constRead("hello"))
	e.RemoveReadHandler("title")

	if _, err := e.Read(&testOwner{}, "title"); err == nil {
		t.Error("Read() succeeded after RemoveReadHandler")
	}
	if e.BoundForRead("title") {
		t.Error("BoundForRead() = true after RemoveReadHandler")
	}
}

func TestEngineWrite_ChainOrder(t *testing.T) {
	var log []recordedCall
	e := NewEngine()
	e.AddWriteHandler("value", recorder("h1", &log))
	e.AddWriteHandler("value", recorder("h2", &log))
	e.AddWriteHandler("value", recorder("h3", &log))

	owner := &testOwner{}
	change := Change{Kind: ChangeUpdate, Name: "value", Old: 1, New: 2}
	if err := e.Write(owner, "value", change); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if len(log) != 3 {
		t.Fatalf("got %d handler invocations, want 3", len(log))
	}
	for i, id := range []string{"h1", "h2", "h3"} {
		if log[i].id != id {
			t.Errorf("invocation %d was %s, want %s", i, log[i].id, id)
		}
		if log[i].owner != owner || log[i].name != "value" || log[i].change != change {
			t.Errorf("invocation %d received (%v, %q, %+v), want identical arguments",
				i, log[i].owner, log[i].name, log[i].change)
		}
	}
}

func TestEngineWrite_NoHandlersIsNoOp(t *testing.T) {
	e := NewEngine()
	if err := e.Write(&testOwner{}, "anything", Change{}); err != nil {
		t.Errorf("Write() with no chain returned %v, want nil", err)
	}
}

func TestEngineWrite_AbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var log []recordedCall
	e := NewEngine()
	e.AddWriteHandler("value", recorder("h1", &log))
	e.AddWriteHandler("value", WriteHandlerFunc(func(any, string, Change) error {
		return boom
	}))
	e.AddWriteHandler("value", recorder("h3", &log))

	err := e.Write(&testOwner{}, "value", Change{})
	if !errors.Is(err, boom) {
		t.Fatalf("Write() error = %v, want the handler's error unchanged", err)
	}
	if len(log) != 1 || log[0].id != "h1" {
		t.Errorf("invocations after failure = %v, want only h1 before the failing handler", log)
	}
}

func TestEngineCopy_RegistrationIsolation(t *testing.T) {
	var log []recordedCall
	e1 := NewEngine()
	e1.AddWriteHandler("value", recorder("shared", &log))

	e2 := e1.Copy()
	e2.AddWriteHandler("value", recorder("only-e2", &log))
	e1.AddWriteHandler("other", recorder("only-e1", &log))
	e1.SetReadHandler("title", constRead("from e1"))

	// e1's chain for "value" is untouched by the append on e2.
	if err := e1.Write(&testOwner{}, "value", Change{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if len(log) != 1 || log[0].id != "shared" {
		t.Errorf("e1 chain ran %v, want only the shared handler", log)
	}

	// And e2 never saw the registrations made on e1 after the copy.
	if _, err := e2.Read(&testOwner{}, "title"); err == nil {
		t.Error("read handler registered on e1 after Copy() is visible on e2")
	}
	log = log[:0]
	if err := e2.Write(&testOwner{}, "other", Change{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("write chain registered on e1 after Copy() ran on e2: %v", log)
	}
}

func TestEngineCopy_PreservesBehavior(t *testing.T) {
	var log []recordedCall
	e1 := NewEngine()
	e1.SetReadHandler("title", constRead("hello"))
	e1.AddWriteHandler("value", recorder("h1", &log))
	e1.AddWriteHandler("value", recorder("h2", &log))

	e2 := e1.Copy()

	if !reflect.DeepEqual(e2.ReadNames(), e1.ReadNames()) {
		t.Errorf("ReadNames() differ: %v vs %v", e2.ReadNames(), e1.ReadNames())
	}
	if !reflect.DeepEqual(e2.WriteNames(), e1.WriteNames()) {
		t.Errorf("WriteNames() differ: %v vs %v", e2.WriteNames(), e1.WriteNames())
	}

	owner := &testOwner{}
	for _, e := range []*Engine{e1, e2} {
		v, err := e.Read(owner, "title")
		if err != nil || v != "hello" {
			t.Errorf("Read() = %v, %v, want hello, nil", v, err)
		}
		log = log[:0]
		if err := e.Write(owner, "value", Change{}); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if len(log) != 2 || log[0].id != "h1" || log[1].id != "h2" {
			t.Errorf("chain ran %v, want h1 then h2", log)
		}
	}
}

func TestEngineWrite_ReentrantWrite(t *testing.T) {
	var order []string
	e := NewEngine()
	e.AddWriteHandler("a", WriteHandlerFunc(func(owner any, _ string, _ Change) error {
		order = append(order, "a")
		// Cascading update: a change to "a" forces a change to "b".
		return e.Write(owner, "b", Change{Kind: ChangeUpdate, Name: "b"})
	}))
	e.AddWriteHandler("b", WriteHandlerFunc(func(any, string, Change) error {
		order = append(order, "b")
		return nil
	}))

	if err := e.Write(&testOwner{}, "a", Change{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("invocation order = %v, want %v", order, want)
	}
}

func TestEngineRead_SquareScenario(t *testing.T) {
	e := NewEngine()
	e.SetReadHandler("y", ReadHandlerFunc(func(owner any, _ string) (any, error) {
		o := owner.(*testOwner)
		return o.x * o.x, nil
	}))

	v, err := e.Read(&testOwner{x: 4}, "y")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if v != 16 {
		t.Errorf("Read() = %v, want 16", v)
	}
}

func TestEngineWrite_LogThenClampScenario(t *testing.T) {
	var log []recordedCall
	e := NewEngine()
	e.AddWriteHandler("z", recorder("log_change", &log))
	e.AddWriteHandler("z", recorder("clamp_change", &log))

	change := Change{Kind: ChangeUpdate, Name: "z", Old: 1, New: 200}
	if err := e.Write(&testOwner{}, "z", change); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if len(log) != 2 || log[0].id != "log_change" || log[1].id != "clamp_change" {
		t.Fatalf("chain ran %v, want log_change then clamp_change", log)
	}
	for i := range log {
		if log[i].change != change {
			t.Errorf("handler %d received change %+v, want %+v", i, log[i].change, change)
		}
	}
}
