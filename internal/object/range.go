package object

// RangeType discriminates the value type of a Range's endpoints. Only
// Integer is implemented; whether non-integer ranges are ever added is
// an open question the spec leaves unresolved, not a commitment this
// core makes (see DESIGN.md).
type RangeType uint8

const RangeInteger RangeType = 0

// Range is an immutable integer interval, [From, To] when Inclusive,
// [From, To) otherwise (§4.9).
type Range struct {
	ObjHeader
	Type      RangeType
	From, To  int64
	Inclusive bool
}

func (r *Range) Trace(visit func(Value)) {}
