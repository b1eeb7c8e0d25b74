package object

// StackAccessor is implemented by whatever owns the live value stack an
// open Upvalue aliases. The design notes call out that a target language
// with strict aliasing rules should store an upvalue's reference as
// (owner, offset) rather than a raw pointer so it survives the owner's
// stack being reallocated out from under it — exactly the situation a Go
// slice append can produce. Upvalue follows that recommendation instead
// of holding a *Value into the stack directly.
type StackAccessor interface {
	StackSlot(index int) Value
	SetStackSlot(index int, v Value)
}

// Upvalue is an indirect reference to a stack slot (§3, §4.5). While the
// captured slot is still live on the owning fiber's stack, reads and
// writes go through Owner/Index. When the slot goes out of scope, Close
// copies the current value into Closed and the upvalue no longer
// consults Owner.
type Upvalue struct {
	ObjHeader
	Owner  StackAccessor
	Index  int
	Closed Value
	open   bool
	// Next chains open upvalues belonging to the same fiber, sorted by
	// descending Index so that closing a range of the stack is a prefix
	// walk of this list.
	Next *Upvalue
}

// NewOpenUpvalue returns an upvalue aliasing owner's stack slot at index.
func NewOpenUpvalue(owner StackAccessor, index int) *Upvalue {
	return &Upvalue{Owner: owner, Index: index, open: true}
}

func (u *Upvalue) Trace(visit func(Value)) {
	if !u.open {
		visit(u.Closed)
	}
	// While open, the slot is reachable through the owning fiber's own
	// stack trace; visiting it again here would be redundant, not wrong.
}

// IsOpen reports whether the upvalue still aliases a live stack slot.
func (u *Upvalue) IsOpen() bool { return u.open }

// Get returns the upvalue's current value.
func (u *Upvalue) Get() Value {
	if u.open {
		return u.Owner.StackSlot(u.Index)
	}
	return u.Closed
}

// Set overwrites the upvalue's current value.
func (u *Upvalue) Set(v Value) {
	if u.open {
		u.Owner.SetStackSlot(u.Index, v)
		return
	}
	u.Closed = v
}

// Close hoists the current value into Closed and detaches the upvalue
// from its owning stack. Closing an already-closed upvalue is a
// programmer bug (double-close), not a runtime error — callers should
// check IsOpen first.
func (u *Upvalue) Close() {
	u.Closed = u.Get()
	u.open = false
	u.Owner = nil
}
