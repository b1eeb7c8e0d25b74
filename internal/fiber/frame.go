// Package fiber implements the execution substrate of the core: the
// per-fiber value stack, call-frame stack, and the rules for suspending
// and resuming cooperatively scheduled fibers (§4.8, §5).
package fiber

import "vellum/internal/object"

// Frame is the state of a single function call (§3's "call frame"): the
// next instruction offset in the current closure's code, the closure
// itself, and the base of this frame's region of the value stack. The
// receiver occupies stack slot StackBase, arguments follow, then locals.
//
// IP is a byte offset rather than a raw pointer into the code buffer —
// Functions are immutable once compiled, so an offset is exactly as
// fast as a pointer on the interpreter's hot path and never needs
// relocating.
type Frame struct {
	IP        int
	Closure   *object.Closure
	StackBase int
}
