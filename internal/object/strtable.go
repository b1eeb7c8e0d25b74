package object

// StringTable is a pair of an ordered value array and an interning
// dictionary (§4.7): insertion returns the index in the array, and
// lookup by string content returns that index or NotPresent.
type StringTable struct {
	List []Value // each element is a Value wrapping a *String
	Dict *Dict   // *String content -> index, as an Integer Value
}

// NotPresent is returned by Lookup when no entry exists for the string.
const NotPresent = -1

// NewStringTable returns an empty string table.
func NewStringTable() *StringTable {
	return &StringTable{Dict: &Dict{}}
}

// Lookup returns the index of s in the table, or NotPresent.
func (t *StringTable) Lookup(s *String) int {
	v := t.Dict.Get(FromObject(s))
	if v.IsUndefined() {
		return NotPresent
	}
	return int(v.Int)
}

// Intern returns the existing index for s if present, otherwise appends
// s and returns its new index.
func (t *StringTable) Intern(s *String) int {
	if idx := t.Lookup(s); idx != NotPresent {
		return idx
	}
	idx := len(t.List)
	t.List = append(t.List, FromObject(s))
	t.Dict.Set(FromObject(s), Int(int64(idx)))
	return idx
}

// At returns the string at index i, or nil if out of range.
func (t *StringTable) At(i int) *String {
	if i < 0 || i >= len(t.List) {
		return nil
	}
	return t.List[i].Obj.(*String)
}

// Len reports the number of interned entries.
func (t *StringTable) Len() int { return len(t.List) }
