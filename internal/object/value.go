// Package object implements the tagged value representation, the heap
// object header, and the full object taxonomy described by the core:
// string, list, dictionary, range, function, closure, upvalue, class,
// instance, method, module, and (by tag only — see internal/fiber) fiber.
//
// Object construction is deliberately NOT here: per the core's lifecycle
// rule, "all objects are created through the VM", which links every new
// object into its global object list and assigns its class. Those
// constructors live in internal/runtime. This package holds the data
// layout and the algorithms that operate on already-constructed values:
// equality, identity, truthiness, hashing, dict/list operations, UTF-8,
// and string formatting.
package object

import "unsafe"

// Kind is the Value discriminant.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindInteger
	KindObject
)

// Value is the tagged union at the center of the data model: Undefined,
// Null, a signed 64-bit Integer, or a heap Object reference. Undefined is
// a sentinel for "no entry" (dictionary free slots) and must never leak
// to user code; Null is the ordinary user-visible absent value.
type Value struct {
	Kind Kind
	Int  int64
	Obj  HeapObject
}

// Undefined is the sentinel for "no entry" / a free dictionary slot.
var Undefined = Value{Kind: KindUndefined}

// Null is the user-visible absent value.
var Null = Value{Kind: KindNull}

// Zero and One are the two canonical integer constants used for
// truthiness/boolean purposes — the core has no dedicated boolean type.
var (
	Zero = Value{Kind: KindInteger, Int: 0}
	One  = Value{Kind: KindInteger, Int: 1}
)

// False and True alias Zero and One: Chalk's CK_FALSE_VALUE/CK_TRUE_VALUE
// are literally #defined to CK_ZERO_VALUE/CK_ONE_VALUE, and Vellum keeps
// that choice rather than inventing a separate boolean object.
var (
	False = Zero
	True  = One
)

// Int constructs an integer value.
func Int(i int64) Value { return Value{Kind: KindInteger, Int: i} }

// FromObject wraps a heap object as a Value.
func FromObject(o HeapObject) Value {
	if o == nil {
		return Null
	}
	return Value{Kind: KindObject, Obj: o}
}

// Bool maps a Go bool onto the canonical False/True values.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

func (v Value) IsUndefined() bool { return v.Kind == KindUndefined }
func (v Value) IsNull() bool      { return v.Kind == KindNull }
func (v Value) IsInteger() bool   { return v.Kind == KindInteger }
func (v Value) IsObject() bool    { return v.Kind == KindObject }

// ObjectType reports the heap object tag, or TypeInvalid if v is not an
// object value.
func (v Value) ObjectType() ObjectType {
	if v.Kind != KindObject || v.Obj == nil {
		return TypeInvalid
	}
	return v.Obj.Head().Type
}

// Truthy implements the truthiness rule: Undefined, Null, and integer 0
// are falsy; every other value — including empty strings and empty
// lists — is truthy.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindUndefined, KindNull:
		return false
	case KindInteger:
		return v.Int != 0
	default:
		return true
	}
}

// Equal implements structural equality: identical types required. Two
// integers compare numerically, two strings compare by byte content
// (which, given interning, reduces to pointer equality), two ranges
// compare from/to/inclusivity, and every other object type falls back to
// identity. Undefined is not equal to anything, including itself.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUndefined:
		return false
	case KindNull:
		return true
	case KindInteger:
		return a.Int == b.Int
	case KindObject:
		return equalObjects(a.Obj, b.Obj)
	default:
		return false
	}
}

func equalObjects(a, b HeapObject) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *String:
		y, ok := b.(*String)
		return ok && x.Hash == y.Hash && string(x.Bytes) == string(y.Bytes)
	case *Range:
		y, ok := b.(*Range)
		return ok && x.From == y.From && x.To == y.To && x.Inclusive == y.Inclusive
	default:
		return false
	}
}

// Identical implements strict identity: pointer equality for every
// object type, numeric equality for integers. It differs from Equal for
// ranges, where two distinct but structurally equal Range objects compare
// unequal, and for strings, where two byte-equal-but-not-interned strings
// (which should not occur given the interning invariant, but Identical
// does not rely on it) would compare unequal.
func Identical(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUndefined:
		return false
	case KindNull:
		return true
	case KindInteger:
		return a.Int == b.Int
	case KindObject:
		return a.Obj == b.Obj
	default:
		return false
	}
}

// Hash returns the hash of v and whether v is hashable at all. An
// integer hashes to its own bit pattern — deliberately, not through an
// avalanche mixer: the dictionary's probe sequence is hash(k)&mask, so
// two integer keys a capacity apart collide at table size capacity,
// which is the concrete linear-probing behavior the core's scenario
// tests exercise. Strings use their precomputed header hash; ranges
// hash from/to/inclusivity together; classes hash by identity. No other
// object type is hashable.
func Hash(v Value) (uint64, bool) {
	switch v.Kind {
	case KindInteger:
		return uint64(v.Int), true
	case KindObject:
		switch o := v.Obj.(type) {
		case *String:
			return o.Hash, true
		case *Range:
			return hashRange(o), true
		case *Class:
			return identityHash(o), true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

func hashRange(r *Range) uint64 {
	h := splitmix64(uint64(r.From))
	h ^= splitmix64(uint64(r.To)) + 0x9E3779B9 + (h << 6) + (h >> 2)
	if r.Inclusive {
		h ^= 1
	}
	return h
}

// identityHash mixes a pointer's bit pattern through the same splitmix
// avalanche used for ranges, giving classes a stable per-process hash
// without needing an explicit object id field.
func identityHash(p *Class) uint64 {
	return splitmix64(uint64(uintptr(unsafe.Pointer(p))))
}
