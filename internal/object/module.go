package object

// Module owns module-level variable slots, a parallel name table, a
// table of interned string constants used by the module's bytecode, the
// module's own name, and an optional loader fiber (§4.7).
//
// Loader is typed as HeapObject rather than a concrete fiber type to
// avoid a package cycle: the fiber substrate (internal/fiber) imports
// object, not the reverse. Callers that need the loader as a fiber type
// assert it.
type Module struct {
	ObjHeader
	Variables     []Value
	VariableNames *StringTable
	Strings       *StringTable
	Name          *String
	Loader        HeapObject
}

func (m *Module) Trace(visit func(Value)) {
	for _, v := range m.Variables {
		visit(v)
	}
	if m.VariableNames != nil {
		for _, v := range m.VariableNames.List {
			visit(v)
		}
	}
	if m.Strings != nil {
		for _, v := range m.Strings.List {
			visit(v)
		}
	}
	if m.Name != nil {
		visit(FromObject(m.Name))
	}
	if m.Loader != nil {
		visit(FromObject(m.Loader))
	}
}

// DefineVariable appends a new module-scope variable named name with
// initial value v, returning its symbol index.
func (m *Module) DefineVariable(name *String, v Value) int {
	idx := len(m.Variables)
	m.Variables = append(m.Variables, v)
	m.VariableNames.Intern(name)
	return idx
}

// VariableIndex returns the symbol index of name, or NotPresent.
func (m *Module) VariableIndex(name *String) int {
	return m.VariableNames.Lookup(name)
}

// FinishLoading releases the loader fiber reference once the module's
// top-level code has finished executing.
func (m *Module) FinishLoading() {
	m.Loader = nil
}
