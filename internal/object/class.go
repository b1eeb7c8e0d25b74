package object

// ClassFlags carries the special-behavior bits of §3's Class flag set.
type ClassFlags uint32

const (
	// Uninheritable marks a class that cannot be subclassed — the
	// built-ins use this.
	Uninheritable ClassFlags = 1 << iota
	// SpecialCreation delegates instance allocation to a primitive
	// (List, Dict, String, Fiber, and the other built-ins allocate
	// their own representation rather than a plain field vector).
	SpecialCreation
	// Foreign marks a class whose instances carry an opaque embedder
	// payload.
	Foreign
)

// BuiltinFieldCount is the FieldCount sentinel that
// distinguishes a built-in class (whose instances are not a plain field
// vector) from a user-defined one.
const BuiltinFieldCount = -1

// Class is a runtime type: its name, superclass, module, field layout,
// method table, and flags (§3, §4.6). Method resolution never walks the
// superclass chain at call time — BindSuperclass (internal/runtime)
// copies the super's methods into the subclass at binding time, trading
// memory for branch-free dispatch.
type Class struct {
	ObjHeader
	Name            *String
	Super           *Class
	Module          *Module
	FieldCount      int
	SuperFieldCount int
	Methods         *Dict
	Flags           ClassFlags
}

func (c *Class) Trace(visit func(Value)) {
	if c.Name != nil {
		visit(FromObject(c.Name))
	}
	if c.Super != nil {
		visit(FromObject(c.Super))
	}
	if c.Module != nil {
		visit(FromObject(c.Module))
	}
	if c.Methods != nil {
		visit(FromObject(c.Methods))
	}
}

// IsBuiltin reports whether c is one of the core's built-in classes
// (FieldCount == BuiltinFieldCount), as opposed to a user-defined class
// with an ordinary field vector.
func (c *Class) IsBuiltin() bool { return c.FieldCount == BuiltinFieldCount }
