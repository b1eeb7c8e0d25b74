package object

import "golang.org/x/exp/slices"

// List is a growable value array with geometric capacity growth (§4.4).
type List struct {
	ObjHeader
	Elements []Value
}

func (l *List) Trace(visit func(Value)) {
	for _, v := range l.Elements {
		visit(v)
	}
}

// Len returns the element count.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the element at i. The caller is responsible for bounds
// checking (out-of-range indexing is a precondition violation surfaced
// by the primitive that detects it, not by this method).
func (l *List) Get(i int) Value { return l.Elements[i] }

// Set overwrites the element at i.
func (l *List) Set(i int, v Value) { l.Elements[i] = v }

// Push appends an element, growing Elements geometrically via Go's
// append (which doubles capacity for small slices and grows large ones
// by a smaller factor).
func (l *List) Push(v Value) {
	l.Elements = append(l.Elements, v)
}

// Insert inserts element at index i (0 <= i <= Len()), shifting
// elements at i.. up by one.
func (l *List) Insert(i int, v Value) {
	l.Elements = slices.Insert(l.Elements, i, v)
}

// RemoveAt removes and returns the element at index i (0 <= i < Len()),
// shifting subsequent elements down.
func (l *List) RemoveAt(i int) Value {
	v := l.Elements[i]
	l.Elements = slices.Delete(l.Elements, i, i+1)
	return v
}

// Concatenate appends src's elements to dst and returns dst. If dst is
// nil, a new List is returned instead — this is also how a list is
// copied (concatenate onto an empty destination).
func Concatenate(dst *List, src *List) *List {
	if dst == nil {
		dst = &List{Elements: make([]Value, 0, len(src.Elements))}
	}
	dst.Elements = append(dst.Elements, src.Elements...)
	return dst
}

// Clear empties the list, releasing its backing array.
func (l *List) Clear() {
	l.Elements = nil
}
