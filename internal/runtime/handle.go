package runtime

import "vellum/internal/object"

// Handle is a GC root held by the embedder: as long as a Handle is
// live, the Value it wraps (and everything reachable from it) survives
// collection even though nothing on any fiber's stack references it.
//
// Modeled directly on the original's CK_HANDLE, a doubly-linked list
// threaded through the VM so Release is an O(1) splice rather than a
// linear scan — spec.md only gestures at "Handle API (referenced but
// not specified here)"; this is the concrete shape SPEC_FULL.md commits
// to.
type Handle struct {
	Value object.Value

	vm         *VM
	prev, next *Handle
}

// NewHandle pins v as a GC root and returns the Handle the embedder
// must eventually Release.
func (vm *VM) NewHandle(v object.Value) *Handle {
	h := &Handle{Value: v, vm: vm, next: vm.handles}
	if vm.handles != nil {
		vm.handles.prev = h
	}
	vm.handles = h
	return h
}

// Release unpins the handle's value. Releasing an already-released
// handle is a no-op.
func (h *Handle) Release() {
	if h.vm == nil {
		return
	}
	if h.prev != nil {
		h.prev.next = h.next
	} else {
		h.vm.handles = h.next
	}
	if h.next != nil {
		h.next.prev = h.prev
	}
	h.prev, h.next, h.vm = nil, nil, nil
}

// traceHandles visits every value pinned by a live handle — the
// embedder root set the mark phase must include alongside every active
// fiber's stack.
func (vm *VM) traceHandles(visit func(object.Value)) {
	for h := vm.handles; h != nil; h = h.next {
		visit(h.Value)
	}
}
