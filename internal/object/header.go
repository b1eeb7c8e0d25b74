package object

// ObjectType is the discriminant stored in every heap object's header. It
// names the taxonomy of §2: string, list, dictionary, range, function,
// closure, upvalue, class, instance, method, module, fiber.
type ObjectType uint8

const (
	TypeInvalid ObjectType = iota
	TypeString
	TypeList
	TypeDict
	TypeRange
	TypeUpvalue
	TypeFunction
	TypeClosure
	TypeMethod
	TypeClass
	TypeInstance
	TypeModule
	TypeFiber
)

func (t ObjectType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeList:
		return "List"
	case TypeDict:
		return "Dict"
	case TypeRange:
		return "Range"
	case TypeUpvalue:
		return "Upvalue"
	case TypeFunction:
		return "Function"
	case TypeClosure:
		return "Closure"
	case TypeMethod:
		return "Method"
	case TypeClass:
		return "Class"
	case TypeInstance:
		return "Instance"
	case TypeModule:
		return "Module"
	case TypeFiber:
		return "Fiber"
	default:
		return "Invalid"
	}
}

// ObjHeader is the uniform header every heap object carries. It is the
// sole root anchor for reachability: the collector inspects only these
// four fields directly, walking everything else through Trace.
type ObjHeader struct {
	Type ObjectType
	// Class describes the object's runtime type. May be set lazily —
	// the core Class objects form a small bootstrap cycle (a class's
	// class is eventually itself).
	Class *Class
	// Next is the intrusive link into the VM's global object list.
	Next HeapObject
	// NextGray is the "kiss" link: the temporary worklist of objects
	// that must survive the current collection cycle.
	NextGray HeapObject
}

// Head returns the object's header. Every concrete heap type gets this
// for free by embedding ObjHeader.
func (h *ObjHeader) Head() *ObjHeader { return h }

// HeapObject is implemented by every heap-allocated type in the object
// taxonomy. Trace is the per-type tracing hook: it must report every
// Value reachable directly from this object so the collector need not
// know the object's concrete layout.
type HeapObject interface {
	Head() *ObjHeader
	Trace(visit func(Value))
}
