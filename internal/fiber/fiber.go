package fiber

import "vellum/internal/object"

// State is one of the five fiber lifecycle states of §4.8.
type State uint8

const (
	StateNew State = iota
	StateRunning
	StateSuspended
	StateFinished
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateFinished:
		return "finished"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	initialStackCapacity = 64
	initialFrameCapacity = 8
)

// Fiber is a first-class, cooperatively scheduled thread of execution
// (§3, §4.8, §5): a value stack, a call-frame stack, the head of the
// list of this fiber's open upvalues, an optional caller link, and an
// error slot.
type Fiber struct {
	object.ObjHeader

	stack    []object.Value
	frames   []Frame
	openHead *object.Upvalue

	Caller *Fiber
	Error  object.Value // Null when no error is pending
}

// NewFiber creates a fiber with an initial closure: an empty call-frame
// stack and a value stack preloaded with the closure as its sole
// receiver (slot 0). With a nil closure the value stack starts empty.
func NewFiber(initial *object.Closure) *Fiber {
	f := &Fiber{
		stack:  make([]object.Value, 0, initialStackCapacity),
		frames: make([]Frame, 0, initialFrameCapacity),
		Error:  object.Null,
	}
	if initial != nil {
		f.stack = append(f.stack, object.FromObject(initial))
	}
	return f
}

func (f *Fiber) Trace(visit func(object.Value)) {
	for _, v := range f.stack {
		visit(v)
	}
	for uv := f.openHead; uv != nil; uv = uv.Next {
		visit(object.FromObject(uv))
	}
	if f.Caller != nil {
		visit(object.FromObject(f.Caller))
	}
	visit(f.Error)
}

// State reports the fiber's lifecycle state from its own fields: Failed
// when the error slot is non-null, Running when it has at least one call
// frame, Finished when both its frame stack and its value stack are
// empty, and New otherwise. It never reports StateSuspended: the fiber
// does not record whether it is the one currently being executed.
func (f *Fiber) State() State {
	switch {
	case !f.Error.IsNull():
		return StateFailed
	case len(f.frames) == 0:
		if len(f.stack) == 0 {
			return StateFinished
		}
		return StateNew
	default:
		return StateRunning
	}
}

// StackTop returns the logical top of the value stack (one past the
// last valid slot).
func (f *Fiber) StackTop() int { return len(f.stack) }

// StackSlot and SetStackSlot implement object.StackAccessor so open
// Upvalues can alias this fiber's stack by index.
func (f *Fiber) StackSlot(index int) object.Value       { return f.stack[index] }
func (f *Fiber) SetStackSlot(index int, v object.Value) { f.stack[index] = v }

// Push appends a value to the stack, growing it if necessary.
func (f *Fiber) Push(v object.Value) {
	f.stack = append(f.stack, v)
}

// Pop removes and returns the top value.
func (f *Fiber) Pop() object.Value {
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v
}

// EnsureStack guarantees the stack can hold at least n slots, growing
// (by doubling, the same policy used elsewhere in the core) if needed.
//
// The spec frames stack growth as a relocation event: every open
// upvalue's value_ptr and every frame's stack_base must be adjusted by
// the reallocation's delta so they keep pointing at the same logical
// slot. Vellum's Upvalues and Frames reference stack slots by integer
// index (internal/object/upvalue.go) rather than by raw pointer, exactly
// per the design notes' guidance for a target language with strict
// aliasing rules — so growing the backing array never invalidates an
// index, and no relocation pass is needed here. The invariant the spec
// tests for (open upvalues and frame bases still denote the same
// logical slot after a grow) holds by construction.
func (f *Fiber) EnsureStack(n int) {
	if n <= cap(f.stack) {
		return
	}
	newCap := cap(f.stack)
	if newCap == 0 {
		newCap = initialStackCapacity
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]object.Value, len(f.stack), newCap)
	copy(grown, f.stack)
	f.stack = grown
}

// AppendCallFrame pushes a new call frame for closure starting at
// stackBase, growing both the frame stack and the value stack (via
// EnsureStack) to accommodate stackBase + closure.Function.MaxStack.
func (f *Fiber) AppendCallFrame(closure *object.Closure, stackBase int) {
	required := stackBase + closure.Function.MaxStack
	f.EnsureStack(required)
	for len(f.stack) < required {
		f.stack = append(f.stack, object.Null)
	}
	f.frames = append(f.frames, Frame{Closure: closure, StackBase: stackBase})
}

// PopCallFrame removes the innermost call frame and returns it.
func (f *Fiber) PopCallFrame() Frame {
	n := len(f.frames)
	fr := f.frames[n-1]
	f.frames = f.frames[:n-1]
	return fr
}

// CurrentFrame returns a pointer to the innermost call frame, or nil if
// the frame stack is empty.
func (f *Fiber) CurrentFrame() *Frame {
	if len(f.frames) == 0 {
		return nil
	}
	return &f.frames[len(f.frames)-1]
}

// FrameCount reports the number of active call frames.
func (f *Fiber) FrameCount() int { return len(f.frames) }

// FindOrCreateOpenUpvalue implements the upvalue capture protocol's
// stack-slot deduplication (§4.5): if an open upvalue already aliases
// index, it is reused; otherwise a new one is spliced into the fiber's
// open-upvalue list,
// keeping the list sorted by descending Index.
func (f *Fiber) FindOrCreateOpenUpvalue(index int) *object.Upvalue {
	var prev *object.Upvalue
	cur := f.openHead
	for cur != nil && cur.Index > index {
		prev = cur
		cur = cur.Next
	}
	if cur != nil && cur.Index == index {
		return cur
	}
	uv := object.NewOpenUpvalue(f, index)
	uv.Next = cur
	if prev == nil {
		f.openHead = uv
	} else {
		prev.Next = uv
	}
	return uv
}

// CloseUpvaluesFrom closes every open upvalue whose Index >= boundary:
// it copies the slot's current value into the upvalue and splices it out
// of the open-upvalue list. Because the list is sorted by descending Index, this
// is a prefix walk.
func (f *Fiber) CloseUpvaluesFrom(boundary int) {
	for f.openHead != nil && f.openHead.Index >= boundary {
		uv := f.openHead
		f.openHead = uv.Next
		uv.Next = nil
		uv.Close()
	}
}

// OpenUpvalueCount reports how many upvalues are currently open on this
// fiber — a test/diagnostic helper, not part of the execution protocol.
func (f *Fiber) OpenUpvalueCount() int {
	n := 0
	for uv := f.openHead; uv != nil; uv = uv.Next {
		n++
	}
	return n
}
