// Package bytecode defines the opaque code buffer attached to a Function
// object. The compiler that emits it and the interpreter loop that
// dispatches it are both external collaborators (see §1 of the spec this
// module implements) — this package only owns the container: a raw byte
// stream plus a line program for mapping an offset back to a source line.
package bytecode

import "sort"

// Code is the bytecode buffer owned by a Function. Opcodes are treated
// as opaque bytes here; only the length and the debug line program are
// load-bearing for anything outside the interpreter.
type Code struct {
	Instructions []byte
	Debug        LineProgram
}

// NewCode returns an empty code buffer ready for a compiler to append to.
func NewCode() *Code {
	return &Code{
		Instructions: make([]byte, 0, 64),
	}
}

// Append adds a single opaque byte at the current source line, coalescing
// into the line program's last run when the line hasn't changed.
func (c *Code) Append(b byte, line int) int {
	offset := len(c.Instructions)
	c.Instructions = append(c.Instructions, b)
	c.Debug.record(offset, line)
	return offset
}

// Len reports the number of bytes emitted so far.
func (c *Code) Len() int { return len(c.Instructions) }

// LineEntry marks that bytecode offsets from Offset onward (until the next
// entry) belong to Line. Modeled on Chalk's line program
// (value.h CK_FUNCTION_DEBUG.LineProgram): much simpler than DWARF, a flat
// run-length list instead of a parallel per-instruction array.
type LineEntry struct {
	Offset int
	Line   int
}

// LineProgram is a sorted, run-length encoded offset→line table.
type LineProgram []LineEntry

func (lp *LineProgram) record(offset, line int) {
	n := len(*lp)
	if n > 0 && (*lp)[n-1].Line == line {
		return
	}
	*lp = append(*lp, LineEntry{Offset: offset, Line: line})
}

// LineFor returns the source line responsible for the instruction at the
// given bytecode offset, or 0 if the program is empty or the offset
// precedes the first recorded run.
func (lp LineProgram) LineFor(offset int) int {
	i := sort.Search(len(lp), func(i int) bool { return lp[i].Offset > offset })
	if i == 0 {
		return 0
	}
	return lp[i-1].Line
}
