package runtime

import (
	"testing"

	"vellum/internal/object"
)

// TestFieldCountArithmetic is property 6 and concrete scenario S6: for
// any inheritance chain, class.FieldCount = class.Super.FieldCount +
// the class's own fields.
func TestFieldCountArithmetic(t *testing.T) {
	vm := New()
	nameA := vm.NewString([]byte("A"))
	nameB := vm.NewString([]byte("B"))

	a := vm.NewClass(nameA, 2, 0)
	b := vm.NewClass(nameB, 1, 0)

	vm.BindSuperclass(b, a)

	if b.FieldCount != 3 {
		t.Fatalf("B.FieldCount = %d, want 3", b.FieldCount)
	}
	if b.SuperFieldCount != 2 {
		t.Fatalf("B.SuperFieldCount = %d, want 2", b.SuperFieldCount)
	}

	inst := vm.CreateInstance(b)
	if len(inst.Fields) != 3 {
		t.Fatalf("len(instance.Fields) = %d, want 3", len(inst.Fields))
	}
	for i, f := range inst.Fields {
		if !f.IsNull() {
			t.Errorf("instance.Fields[%d] = %v, want Null", i, f)
		}
	}
}

// TestFieldCountArithmeticThreeLevels exercises property 6 ("for any
// inheritance chain") past the two-level case: A(own=2) -> B(own=1) ->
// C(own=1). B.FieldCount folds in A's fields once; C.FieldCount must
// fold in A's and B's fields exactly once each, not double-count B's
// already-cumulative total.
func TestFieldCountArithmeticThreeLevels(t *testing.T) {
	vm := New()
	a := vm.NewClass(vm.NewString([]byte("A")), 2, 0)
	b := vm.NewClass(vm.NewString([]byte("B")), 1, 0)
	c := vm.NewClass(vm.NewString([]byte("C")), 1, 0)

	vm.BindSuperclass(b, a)
	if b.FieldCount != 3 {
		t.Fatalf("B.FieldCount = %d, want 3", b.FieldCount)
	}
	if b.SuperFieldCount != 2 {
		t.Fatalf("B.SuperFieldCount = %d, want 2", b.SuperFieldCount)
	}

	vm.BindSuperclass(c, b)
	if c.SuperFieldCount != 3 {
		t.Fatalf("C.SuperFieldCount = %d, want 3 (B's cumulative FieldCount)", c.SuperFieldCount)
	}
	if c.FieldCount != 4 {
		t.Fatalf("C.FieldCount = %d, want 4 (A's 2 + B's 1 + C's own 1)", c.FieldCount)
	}

	inst := vm.CreateInstance(c)
	if len(inst.Fields) != 4 {
		t.Fatalf("len(instance.Fields) = %d, want 4", len(inst.Fields))
	}
}

func TestBindSuperclassRejectsBuiltinSuper(t *testing.T) {
	vm := New()
	super := vm.NewClass(vm.NewString([]byte("Builtin")), object.BuiltinFieldCount, 0)
	sub := vm.NewClass(vm.NewString([]byte("Sub")), 0, 0)

	vm.SetActiveFiber(vm.NewFiber(nil))
	vm.BindSuperclass(sub, super)
	if vm.ActiveFiber().Error.IsNull() {
		t.Fatal("binding to a built-in superclass (FieldCount == BuiltinFieldCount) should raise an error even without the Uninheritable flag")
	}
}

func TestBindSuperclassCopiesMethods(t *testing.T) {
	vm := New()
	super := vm.NewClass(vm.NewString([]byte("Super")), 0, 0)
	sub := vm.NewClass(vm.NewString([]byte("Sub")), 0, 0)

	methodName := vm.NewString([]byte("greet"))
	called := false
	prim := vm.NewPrimitiveMethod(func(ctx object.PrimitiveContext, argv []object.Value) bool {
		called = true
		return true
	})
	vm.BindMethod(super, methodName, prim)

	vm.BindSuperclass(sub, super)

	resolved, ok := vm.ResolveMethod(sub, methodName)
	if !ok {
		t.Fatal("subclass should have inherited the superclass's method at bind time")
	}
	resolved.Primitive(vm, nil)
	if !called {
		t.Error("resolved method should be directly invocable")
	}
}

func TestBindSuperclassRejectsUninheritable(t *testing.T) {
	vm := New()
	super := vm.NewClass(vm.NewString([]byte("Sealed")), 0, object.Uninheritable)
	sub := vm.NewClass(vm.NewString([]byte("Sub")), 0, 0)

	var fiberErr string
	vm.SetActiveFiber(vm.NewFiber(nil))
	vm.BindSuperclass(sub, super)
	if vm.ActiveFiber().Error.IsNull() {
		t.Fatal("binding to an Uninheritable superclass should raise an error")
	}
	_ = fiberErr
}
