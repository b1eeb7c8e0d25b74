package runtime

import "vellum/internal/object"

// Collect runs one full mark-and-sweep pass over the global object
// list. The mark phase's policy (when to collect, generational/
// incremental heuristics) is out of scope for this core — Collect is
// the mechanical substrate a policy would call, exercising the kiss
// list and per-type Trace hooks the rest of this package maintains.
//
// Roots are every value reachable from the active fiber (which in turn
// chains to its caller, per fiber.Fiber.Trace) plus every pinned
// Handle.
func (vm *VM) Collect() {
	vm.trace("gc: mark phase start (%d live objects)", vm.objectCnt)
	marked := vm.mark()
	freed := vm.sweep(marked)
	vm.trace("gc: sweep phase done (%d freed, %d live objects remain)", freed, vm.objectCnt)
	vm.traceObjectCounts()
}

// mark walks the kiss list (the gray worklist, threaded through each
// object's NextGray field) starting from the root set, returning the
// set of objects confirmed reachable.
func (vm *VM) mark() map[object.HeapObject]bool {
	marked := make(map[object.HeapObject]bool, vm.objectCnt)
	var gray object.HeapObject // kiss-list head

	push := func(v object.Value) {
		if !v.IsObject() || v.Obj == nil || marked[v.Obj] {
			return
		}
		marked[v.Obj] = true
		v.Obj.Head().NextGray = gray
		gray = v.Obj
	}

	if vm.active != nil {
		push(object.FromObject(vm.active))
	}
	vm.traceHandles(push)

	for gray != nil {
		obj := gray
		gray = obj.Head().NextGray
		obj.Head().NextGray = nil
		obj.Trace(push)
	}

	return marked
}

// sweep walks the global object list, unlinking and destroying every
// object mark did not visit, and returns the count freed.
func (vm *VM) sweep(marked map[object.HeapObject]bool) int {
	freed := 0
	var kept object.HeapObject
	var tail object.HeapObject

	cur := vm.objects
	for cur != nil {
		next := cur.Head().Next
		if marked[cur] {
			cur.Head().Next = nil
			if tail == nil {
				kept = cur
				tail = cur
			} else {
				tail.Head().Next = cur
				tail = cur
			}
		} else {
			vm.DestroyObject(cur)
			freed++
		}
		cur = next
	}
	vm.objects = kept
	return freed
}
