package object

// MethodKind discriminates the tagged union a Method value holds: a
// primitive routine that manipulates the VM stack directly, an
// embedder-supplied foreign routine, or a closure bound (an ordinary
// instance method) or unbound (a superclass method reached via `super`,
// which must not re-resolve against the receiver's actual class).
type MethodKind uint8

const (
	MethodInvalid MethodKind = iota
	MethodPrimitive
	MethodBound
	MethodUnbound
	MethodForeign
)

// PrimitiveContext is the minimal surface a primitive method needs from
// the VM: the ability to signal a runtime error. It is an interface
// rather than a concrete *runtime.VM so this package never imports
// internal/runtime — runtime.VM satisfies it structurally.
type PrimitiveContext interface {
	RaiseError(format string, args ...any)
}

// PrimitiveFn is the primitive method ABI (§6): argv[0] is the receiver,
// the remaining argument count is implicit in the method's signature,
// and the return value is placed back into argv[0]. Returning false
// means a runtime error has been signalled through ctx.
type PrimitiveFn func(ctx PrimitiveContext, argv []Value) bool

// ForeignFn is the foreign method ABI: an opaque signature defined by
// the embedder. The core treats it as a tagged pointer only.
type ForeignFn any

// Method is a tagged value identifying which of Primitive, Foreign, or
// Closure is valid, per Kind (§4.6).
type Method struct {
	ObjHeader
	Kind      MethodKind
	Primitive PrimitiveFn
	Foreign   ForeignFn
	Closure   *Closure
}

func (m *Method) Trace(visit func(Value)) {
	if m.Closure != nil {
		visit(FromObject(m.Closure))
	}
}
