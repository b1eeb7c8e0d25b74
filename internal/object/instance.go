package object

// Instance is a class instance: the class pointer plus an inline vector
// of exactly class.FieldCount values, initialized to Null (§3, §4.6).
//
// When Class.Flags&Foreign is set the instance additionally carries an
// opaque embedder payload instead of (or alongside) its field vector —
// the spec describes this as "the instance carries an opaque embedder
// payload" rather than introducing a separate object kind for it.
type Instance struct {
	ObjHeader
	Fields  []Value
	Payload any
}

func (i *Instance) Trace(visit func(Value)) {
	for _, f := range i.Fields {
		visit(f)
	}
}

// NewInstanceFields allocates a field vector of exactly count slots,
// each initialized to Null.
func NewInstanceFields(count int) []Value {
	fields := make([]Value, count)
	for i := range fields {
		fields[i] = Null
	}
	return fields
}
