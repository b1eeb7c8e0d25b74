package runtime

import (
	"fmt"

	"vellum/internal/bytecode"
	"vellum/internal/object"
)

// scenarios maps a scenario id (as named in the .txtar scripts under
// testdata/scenario) to its implementation. Each function builds the
// scenario's setup through this package's exported constructors and
// returns an error describing the first mismatch against §8's expected
// outcome, or nil if the scenario holds.
var scenarios = map[string]func() error{
	"s1-dict-collision": scenarioS1,
	"s2-run-trivial-fn": scenarioS2,
	"s3-format-string":  scenarioS3,
	"s4-range-equality": scenarioS4,
	"s5-string-find":    scenarioS5,
	"s6-field-count":    scenarioS6,
}

func scenarioS1() error {
	vm := New()
	d := vm.NewDict()
	a := object.FromObject(vm.NewString([]byte("a")))
	b := object.FromObject(vm.NewString([]byte("b")))

	d.Set(object.Int(1), a)
	collidingKey := object.Int(int64(1 + d.Capacity()))
	d.Set(collidingKey, b)
	d.Remove(object.Int(1))

	got := d.Get(collidingKey)
	s, ok := got.Obj.(*object.String)
	if !ok || string(s.Bytes) != "b" {
		return fmt.Errorf("get(1+capacity) = %v, want interned string \"b\"", got)
	}
	return nil
}

func scenarioS2() error {
	vm := New()
	fn := vm.NewFunction(bytecode.NewCode(), []object.Value{object.Int(7)}, nil, 1, 0, 0, object.Debug{})
	closure := vm.NewClosure(fn, nil)
	f := vm.NewFiber(closure)
	vm.SetActiveFiber(f)

	f.AppendCallFrame(closure, 1)
	f.SetStackSlot(1, fn.Constants[0])
	f.PopCallFrame()

	if !f.Error.IsNull() {
		return fmt.Errorf("fiber.Error = %v, want Null", f.Error)
	}
	top := f.StackSlot(f.StackTop() - 1)
	if !top.IsInteger() || top.Int != 7 {
		return fmt.Errorf("top of stack = %v, want Integer(7)", top)
	}
	return nil
}

func scenarioS3() error {
	got, err := object.FormatString("$/@", "foo", &object.String{Bytes: []byte("bar")})
	if err != nil {
		return err
	}
	if got != "foo/bar" {
		return fmt.Errorf("FormatString(\"$/@\", \"foo\", \"bar\") = %q, want \"foo/bar\"", got)
	}
	return nil
}

func scenarioS4() error {
	a := object.FromObject(&object.Range{From: 0, To: 5, Inclusive: true})
	b := object.FromObject(&object.Range{From: 0, To: 5, Inclusive: true})
	c := object.FromObject(&object.Range{From: 0, To: 5, Inclusive: false})
	if !object.Equal(a, b) {
		return fmt.Errorf("Range(0,5,inclusive) should equal a structurally identical range")
	}
	if object.Equal(a, c) {
		return fmt.Errorf("Range(0,5,inclusive) should not equal Range(0,5,exclusive)")
	}
	return nil
}

func scenarioS5() error {
	if got := object.Find([]byte("hello world"), []byte("world")); got != 6 {
		return fmt.Errorf(`Find("hello world", "world") = %d, want 6`, got)
	}
	if got := object.Find([]byte("hello"), []byte("xyz")); got != object.NotFound {
		return fmt.Errorf(`Find("hello", "xyz") = %d, want NotFound`, got)
	}
	return nil
}

func scenarioS6() error {
	vm := New()
	a := vm.NewClass(vm.NewString([]byte("A")), 2, 0)
	b := vm.NewClass(vm.NewString([]byte("B")), 1, 0)
	vm.BindSuperclass(b, a)

	if b.FieldCount != 3 {
		return fmt.Errorf("B.FieldCount = %d, want 3", b.FieldCount)
	}
	if b.SuperFieldCount != 2 {
		return fmt.Errorf("B.SuperFieldCount = %d, want 2", b.SuperFieldCount)
	}
	inst := vm.CreateInstance(b)
	if len(inst.Fields) != 3 {
		return fmt.Errorf("len(instance.Fields) = %d, want 3", len(inst.Fields))
	}
	for i, f := range inst.Fields {
		if !f.IsNull() {
			return fmt.Errorf("instance.Fields[%d] = %v, want Null", i, f)
		}
	}
	return nil
}
