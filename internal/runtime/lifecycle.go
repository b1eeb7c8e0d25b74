package runtime

import (
	"vellum/internal/bytecode"
	"vellum/internal/fiber"
	"vellum/internal/object"
)

// InitializeObject links a freshly allocated heap object into the VM's
// global object list and stamps its header, implementing the core's
// initialize_object lifecycle hook (§6). Every constructor in this file
// routes through it — nothing outside this package is allowed to
// fabricate a populated ObjHeader.
func (vm *VM) InitializeObject(obj object.HeapObject, t object.ObjectType, class *object.Class) {
	head := obj.Head()
	head.Type = t
	head.Class = class
	head.Next = vm.objects
	vm.objects = obj
	vm.objectCnt++
	vm.trace("initialize_object: %s (total live: %d)", t, vm.objectCnt)
}

// DestroyObject implements destroy_object: it is the mirror hook a
// sweep phase calls once an object is confirmed unreachable. Vellum
// leaves physical reclamation to the Go garbage collector — this only
// maintains the live-object accounting the collector's own bookkeeping
// depends on (gc.go's sweep unlinks the object from the global list that
// InitializeObject links it into; actual memory is freed by the host
// runtime, not by this call).
func (vm *VM) DestroyObject(obj object.HeapObject) {
	vm.objectCnt--
	vm.trace("destroy_object: %s (total live: %d)", obj.Head().Type, vm.objectCnt)
}

// newStringUnchecked allocates a String without interning — used only
// for internally synthesized values (e.g. a rendered error message)
// that are never compared for identity against source-code literals.
func (vm *VM) newStringUnchecked(bytes []byte) *object.String {
	s := &object.String{Bytes: bytes, Hash: object.FNV1a(bytes)}
	vm.InitializeObject(s, object.TypeString, nil)
	return s
}

// NewString interns bytes: a byte-identical String already produced by
// this VM is returned instead of allocating a duplicate (§4.2).
func (vm *VM) NewString(bytes []byte) *object.String {
	probe := &object.String{Bytes: bytes, Hash: object.FNV1a(bytes)}
	if idx := vm.StringTable.Lookup(probe); idx != object.NotPresent {
		return vm.StringTable.At(idx)
	}
	vm.InitializeObject(probe, object.TypeString, nil)
	vm.StringTable.Intern(probe)
	return probe
}

// NewStringFromInt renders i's decimal representation as an interned
// string, the construction path named "FromInteger" in the original.
func (vm *VM) NewStringFromInt(i int64) *object.String {
	return vm.NewString(object.IntegerToBytes(i))
}

// NewList allocates an empty list with the given initial capacity hint.
func (vm *VM) NewList(capacityHint int) *object.List {
	l := &object.List{}
	if capacityHint > 0 {
		l.Elements = make([]object.Value, 0, capacityHint)
	}
	vm.InitializeObject(l, object.TypeList, nil)
	return l
}

// NewDict allocates an empty dictionary.
func (vm *VM) NewDict() *object.Dict {
	d := &object.Dict{}
	vm.InitializeObject(d, object.TypeDict, nil)
	return d
}

// NewRange allocates an integer range.
func (vm *VM) NewRange(from, to int64, inclusive bool) *object.Range {
	r := &object.Range{Type: object.RangeInteger, From: from, To: to, Inclusive: inclusive}
	vm.InitializeObject(r, object.TypeRange, nil)
	return r
}

// NewUpvalue allocates an open upvalue aliasing owner's stack slot at
// index.
func (vm *VM) NewUpvalue(owner object.StackAccessor, index int) *object.Upvalue {
	uv := object.NewOpenUpvalue(owner, index)
	vm.InitializeObject(uv, object.TypeUpvalue, nil)
	return uv
}

// NewFunction allocates a Function around an already-compiled code
// buffer. The compiler that produces code, constants, and debug info
// is an out-of-scope collaborator (§1); this is purely the allocation
// and linkage step.
func (vm *VM) NewFunction(code *bytecode.Code, constants []object.Value, module *object.Module, maxStack, upvalueCount, arity int, debug object.Debug) *object.Function {
	fn := &object.Function{
		Code:         code,
		Constants:    constants,
		Module:       module,
		MaxStack:     maxStack,
		UpvalueCount: upvalueCount,
		Arity:        arity,
		Debug:        debug,
	}
	vm.InitializeObject(fn, object.TypeFunction, nil)
	return fn
}

// NewClosure binds fn to class (for super-call resolution) and
// allocates an upvalue vector sized to fn.UpvalueCount.
func (vm *VM) NewClosure(fn *object.Function, class *object.Class) *object.Closure {
	cl := &object.Closure{
		Function: fn,
		Class:    class,
		Upvalues: make([]*object.Upvalue, fn.UpvalueCount),
	}
	vm.InitializeObject(cl, object.TypeClosure, nil)
	return cl
}

// NewPrimitiveMethod wraps a primitive routine as a Method value.
func (vm *VM) NewPrimitiveMethod(fn object.PrimitiveFn) *object.Method {
	m := &object.Method{Kind: object.MethodPrimitive, Primitive: fn}
	vm.InitializeObject(m, object.TypeMethod, nil)
	return m
}

// NewForeignMethod wraps an embedder-supplied routine as a Method value.
func (vm *VM) NewForeignMethod(fn object.ForeignFn) *object.Method {
	m := &object.Method{Kind: object.MethodForeign, Foreign: fn}
	vm.InitializeObject(m, object.TypeMethod, nil)
	return m
}

// NewBoundMethod wraps closure as an ordinary (bound) instance method.
func (vm *VM) NewBoundMethod(closure *object.Closure) *object.Method {
	m := &object.Method{Kind: object.MethodBound, Closure: closure}
	vm.InitializeObject(m, object.TypeMethod, nil)
	return m
}

// NewUnboundMethod wraps closure as a superclass method reached via
// `super` — it must not re-resolve against the receiver's actual class
// (§4.6).
func (vm *VM) NewUnboundMethod(closure *object.Closure) *object.Method {
	m := &object.Method{Kind: object.MethodUnbound, Closure: closure}
	vm.InitializeObject(m, object.TypeMethod, nil)
	return m
}

// NewModule allocates an empty module owned by this VM.
func (vm *VM) NewModule(name *object.String) *object.Module {
	m := &object.Module{
		Name:          name,
		VariableNames: object.NewStringTable(),
		Strings:       object.NewStringTable(),
	}
	vm.InitializeObject(m, object.TypeModule, nil)
	return m
}

// NewFiber allocates a fiber ready to run initial, linking it into the
// object list like any other heap value (§4.8) — a fiber is a
// first-class object, not VM-private state.
func (vm *VM) NewFiber(initial *object.Closure) *fiber.Fiber {
	f := fiber.NewFiber(initial)
	vm.InitializeObject(f, object.TypeFiber, nil)
	return f
}
