package object

import "vellum/internal/bytecode"

// Debug is the debug block attached to a Function: its source name, the
// first line of its definition, and the compact line program that maps
// a bytecode offset back to a source line.
type Debug struct {
	Name      string
	FirstLine int
	Lines     bytecode.LineProgram
}

// LineFor returns the source line for the instruction at offset.
func (d Debug) LineFor(offset int) int { return d.Lines.LineFor(offset) }

// Function is compiled bytecode plus everything needed to run it: its
// constant pool, owning module, maximum stack depth, upvalue count,
// arity, and debug info (§3, §4.5). Functions are immutable once
// compiled; only a Closure instantiates one at a particular lexical
// binding.
type Function struct {
	ObjHeader
	Code         *bytecode.Code
	Constants    []Value
	Module       *Module
	MaxStack     int
	UpvalueCount int
	Arity        int
	Debug        Debug
}

func (f *Function) Trace(visit func(Value)) {
	for _, c := range f.Constants {
		visit(c)
	}
	if f.Module != nil {
		visit(FromObject(f.Module))
	}
}

// UpvalueDesc describes one entry of a function's upvalue list as the
// compiler emits it: either a local slot of the immediately enclosing
// frame, or an upvalue already captured by the enclosing closure.
type UpvalueDesc struct {
	Index   int
	IsLocal bool
}

// Closure binds a Function to a specific Class (for super calls) and
// carries a fixed-size vector of Upvalue references matching
// function.UpvalueCount (§4.5).
type Closure struct {
	ObjHeader
	Function *Function
	Class    *Class
	Upvalues []*Upvalue
}

func (c *Closure) Trace(visit func(Value)) {
	if c.Function != nil {
		visit(FromObject(c.Function))
	}
	if c.Class != nil {
		visit(FromObject(c.Class))
	}
	for _, uv := range c.Upvalues {
		if uv != nil {
			visit(FromObject(uv))
		}
	}
}
