package runtime

import (
	"testing"

	"vellum/internal/bytecode"
	"vellum/internal/object"
)

// TestFiberRunTrivialFunction is concrete scenario S2, adapted to this
// core's scope: the bytecode interpreter loop is an out-of-scope
// collaborator (§1), so there is no dispatcher here to actually step
// opcodes. What this core owns is everything S2 needs below that
// boundary — a compiled (here, trivially "compiled" by hand) Function,
// a Closure wrapping it, a Fiber to run it on, and the call-frame
// protocol a dispatcher would drive. This test builds that substrate
// and plays the dispatcher's part for one instruction ("push constant
// 7, return") to confirm the substrate behaves the way S2 requires:
// fiber.Error stays Null and the returned value ends up on top of
// stack.
func TestFiberRunTrivialFunction(t *testing.T) {
	vm := New()
	module := vm.NewModule(vm.NewString([]byte("main")))

	code := bytecode.NewCode()
	code.Append(0x01, 1) // opaque "push constant" byte, line 1
	code.Append(0x00, 1) // opaque "return" byte

	fn := vm.NewFunction(code, []object.Value{object.Int(7)}, module, 1, 0, 0, object.Debug{Name: "main", FirstLine: 1})
	closure := vm.NewClosure(fn, nil)
	f := vm.NewFiber(closure)
	vm.SetActiveFiber(f)

	f.AppendCallFrame(closure, 1)
	f.SetStackSlot(1, fn.Constants[0])
	f.PopCallFrame()

	if !f.Error.IsNull() {
		t.Fatalf("fiber.Error = %v, want Null", f.Error)
	}
	top := f.StackSlot(f.StackTop() - 1)
	if !top.IsInteger() || top.Int != 7 {
		t.Fatalf("top of stack = %v, want Integer(7)", top)
	}
}

func TestNewFiberSeedsReceiverSlot(t *testing.T) {
	vm := New()
	fn := vm.NewFunction(bytecode.NewCode(), nil, nil, 1, 0, 0, object.Debug{})
	closure := vm.NewClosure(fn, nil)
	f := vm.NewFiber(closure)

	recv := f.StackSlot(0)
	if recv.Obj != closure {
		t.Fatalf("fiber's receiver slot = %v, want the initial closure", recv)
	}
}
