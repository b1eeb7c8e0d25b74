// Package runtime is the VM-level external interface of the core (§6):
// object lifecycle, the global object list and kiss-list worklist the
// tracing hook walks, the Handle API for embedder GC roots, and the
// construction functions every other package's doc comments point back
// to with "all objects are created through the VM".
package runtime

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"vellum/internal/fiber"
	"vellum/internal/object"
	"vellum/internal/verrors"
)

// VM owns every heap object's lifetime: the global object list (what the
// sweep phase walks), the handle list (the embedder's root set), and the
// currently active fiber, if any.
//
// Unlike the teacher's EnhancedVM, this VM does not itself run bytecode
// — the interpreter loop is an out-of-scope collaborator (§1) — but it
// is still the thing every Object constructor, BindSuperclass,
// BindMethod, and CreateInstance hangs off of, exactly as the teacher's
// VM owns globals/frames/modules for the pieces it does implement.
type VM struct {
	id uuid.UUID

	objects   object.HeapObject // head of the global object list
	objectCnt int
	handles   *Handle // head of the embedder handle list

	active *fiber.Fiber // the fiber currently being stepped, if any

	// Trace is an optional debug hook, invoked at object creation, GC
	// phase boundaries, and fiber transfer points. Nil is a no-op —
	// the same gated-debug-output pattern as the teacher's
	// EnhancedVM.debug/DebugHook, just expressed as a function value
	// instead of a bool-and-interface pair.
	Trace func(format string, args ...any)

	// StringTable interns every String this VM constructs (§4.2); two
	// byte-equal strings constructed through NewString always come back
	// as the same *object.String.
	StringTable *object.StringTable
}

// New returns a VM with no live objects and no handles.
func New() *VM {
	return &VM{
		id:          uuid.New(),
		StringTable: object.NewStringTable(),
	}
}

// ID returns the VM's stable identity, used only for diagnostics.
func (vm *VM) ID() uuid.UUID { return vm.id }

func (vm *VM) trace(format string, args ...any) {
	if vm.Trace != nil {
		vm.Trace(format, args...)
	}
}

// ActiveFiber returns the fiber currently being stepped, or nil.
func (vm *VM) ActiveFiber() *fiber.Fiber { return vm.active }

// SetActiveFiber records which fiber the interpreter is currently
// stepping, for RaiseError and diagnostics to find.
func (vm *VM) SetActiveFiber(f *fiber.Fiber) {
	vm.trace("fiber transfer: %v -> %v", vm.active, f)
	vm.active = f
}

// RaiseError implements object.PrimitiveContext: a primitive method
// signals failure by calling it, which renders a runtime *verrors.VMError
// and stores its message, as a String, in the active fiber's error slot
// (nothing is stored when no fiber is active). RaiseError has no return
// value; primitives call it and then `return false` themselves (see
// internal/object/method.go's PrimitiveFn contract).
func (vm *VM) RaiseError(format string, args ...any) {
	err := verrors.NewRuntime("", 0, format, args...)
	if vm.active != nil {
		vm.active.Error = object.FromObject(vm.newStringUnchecked([]byte(err.Error())))
	}
}

// Stats is a point-in-time snapshot of VM memory usage, rendered
// human-readably the way the teacher's reporting layer renders byte
// counts and record counts for its own audiences.
type Stats struct {
	LiveObjects     int
	InternedStrings int
	OpenHandles     int
}

// String renders the snapshot using github.com/dustin/go-humanize,
// matching the corpus's convention of humanizing counts and byte sizes
// in any operator-facing report.
func (s Stats) String() string {
	return fmt.Sprintf(
		"%s live objects, %s interned strings, %s open handles",
		humanize.Comma(int64(s.LiveObjects)),
		humanize.Comma(int64(s.InternedStrings)),
		humanize.Comma(int64(s.OpenHandles)),
	)
}

// Stats returns a snapshot of the VM's current memory usage.
func (vm *VM) Stats() Stats {
	handleCount := 0
	for h := vm.handles; h != nil; h = h.next {
		handleCount++
	}
	return Stats{
		LiveObjects:     vm.objectCnt,
		InternedStrings: vm.StringTable.Len(),
		OpenHandles:     handleCount,
	}
}

// ObjectCounts tallies live objects by type, for diagnostics (a more
// granular companion to Stats). traceObjectCounts sorts the key set from
// golang.org/x/exp/maps.Keys so Trace output doesn't jitter between
// calls purely from Go's randomized map iteration order.
func (vm *VM) ObjectCounts() map[object.ObjectType]int {
	counts := make(map[object.ObjectType]int)
	for cur := vm.objects; cur != nil; cur = cur.Head().Next {
		counts[cur.Head().Type]++
	}
	return counts
}

func (vm *VM) traceObjectCounts() {
	if vm.Trace == nil {
		return
	}
	counts := vm.ObjectCounts()
	types := maps.Keys(counts)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		vm.trace("  %s: %d", t, counts[t])
	}
}
