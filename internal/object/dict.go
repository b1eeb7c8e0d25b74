package object

// minDictCapacity is the smallest capacity a non-empty Dict ever has;
// capacity is always a power of two at or above this floor.
const minDictCapacity = 32

// dictLoadFactor is the occupancy threshold (count+tombstones vs.
// capacity) that triggers a resize before insertion.
const dictLoadFactor = 0.75

// entry is a single dictionary slot. Key == Undefined marks a free
// slot; Key != Undefined && Value == Undefined marks a tombstone
// (deleted — probing must not stop there).
type entry struct {
	Key   Value
	Value Value
}

func (e entry) isFree() bool      { return e.Key.IsUndefined() }
func (e entry) isTombstone() bool { return !e.Key.IsUndefined() && e.Value.IsUndefined() }

// Dict is an open-addressed hash table with linear probing (§4.3).
type Dict struct {
	ObjHeader
	entries    []entry
	count      int // live entries
	tombstones int
}

func (d *Dict) Trace(visit func(Value)) {
	for _, e := range d.entries {
		if e.isFree() || e.isTombstone() {
			continue
		}
		visit(e.Key)
		visit(e.Value)
	}
}

// Count returns the number of live entries.
func (d *Dict) Count() int { return d.count }

// Capacity returns the current table size.
func (d *Dict) Capacity() int { return len(d.entries) }

func nextPow2AtLeast(n int) int {
	cap := minDictCapacity
	for cap < n {
		cap <<= 1
	}
	return cap
}

// Get probes from hash(k)&mask, skipping tombstones, until the key is
// found (returns its value) or an empty slot is reached (returns
// Undefined). Unhashable keys always miss.
func (d *Dict) Get(k Value) Value {
	if len(d.entries) == 0 {
		return Undefined
	}
	h, ok := Hash(k)
	if !ok {
		return Undefined
	}
	mask := uint64(len(d.entries) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		e := d.entries[i]
		if e.isFree() {
			return Undefined
		}
		if e.isTombstone() {
			continue
		}
		if Equal(e.Key, k) {
			return e.Value
		}
	}
}

// Set inserts or overwrites the value for k, growing the table first if
// the occupancy threshold (count+tombstones >= 0.75*capacity) would
// otherwise be crossed. Reports false if k is unhashable.
func (d *Dict) Set(k Value, v Value) bool {
	if _, ok := Hash(k); !ok {
		return false
	}
	if len(d.entries) == 0 || float64(d.count+d.tombstones) >= dictLoadFactor*float64(len(d.entries)) {
		d.grow()
	}
	d.rawSet(k, v)
	return true
}

// rawSet assumes capacity headroom already exists and k is hashable.
func (d *Dict) rawSet(k, v Value) {
	h, _ := Hash(k)
	mask := uint64(len(d.entries) - 1)
	firstTombstone := -1
	for i := h & mask; ; i = (i + 1) & mask {
		e := d.entries[i]
		if e.isFree() {
			slot := int(i)
			if firstTombstone >= 0 {
				slot = firstTombstone
				d.tombstones--
			}
			d.entries[slot] = entry{Key: k, Value: v}
			d.count++
			return
		}
		if e.isTombstone() {
			if firstTombstone < 0 {
				firstTombstone = int(i)
			}
			continue
		}
		if Equal(e.Key, k) {
			d.entries[i].Value = v
			return
		}
	}
}

// grow rehashes all live entries into a newly allocated table at the
// next power of two large enough to hold them under the load factor;
// tombstones are dropped in the process.
func (d *Dict) grow() {
	old := d.entries
	newCap := nextPow2AtLeast((d.count + 1) * 2)
	if newCap < minDictCapacity {
		newCap = minDictCapacity
	}
	d.entries = make([]entry, newCap)
	d.count = 0
	d.tombstones = 0
	for _, e := range old {
		if e.isFree() || e.isTombstone() {
			continue
		}
		d.rawSet(e.Key, e.Value)
	}
}

// Remove locates the entry for k and sets its value to Undefined while
// leaving the key in place as a tombstone. Returns the old value, or
// Null if the key was absent (a dict_remove of a missing key is the one
// error the core's propagation policy silently swallows).
func (d *Dict) Remove(k Value) Value {
	if len(d.entries) == 0 {
		return Null
	}
	h, ok := Hash(k)
	if !ok {
		return Null
	}
	mask := uint64(len(d.entries) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		e := d.entries[i]
		if e.isFree() {
			return Null
		}
		if e.isTombstone() {
			continue
		}
		if Equal(e.Key, k) {
			old := e.Value
			d.entries[i].Value = Undefined
			d.count--
			d.tombstones++
			return old
		}
	}
}

// Clear releases all entries, resetting count and capacity to zero.
func (d *Dict) Clear() {
	d.entries = nil
	d.count = 0
	d.tombstones = 0
}

// Iterator is a single integer cursor into the table, per §4.3: it
// starts at 0 and each call to Next advances past empty/tombstone slots.
// Iterating a dict mutated mid-iteration is undefined behavior but must
// not crash; because this cursor is just an index into the (possibly
// reallocated) entries slice, a resize mid-iteration may repeat or skip
// entries but will never index out of range of the new table as long as
// Next is always called through this type.
type Iterator struct {
	dict *Dict
	next int
}

// Iterate returns a fresh iterator positioned before the first entry.
func (d *Dict) Iterate() *Iterator {
	return &Iterator{dict: d}
}

// Next advances past empty/tombstone slots and returns the next live
// key, or Undefined when exhausted.
func (it *Iterator) Next() Value {
	entries := it.dict.entries
	for it.next < len(entries) {
		e := entries[it.next]
		it.next++
		if !e.isFree() && !e.isTombstone() {
			return e.Key
		}
	}
	return Undefined
}
