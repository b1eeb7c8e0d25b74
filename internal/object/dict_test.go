package object

import "testing"

func internedString(b []byte) *String {
	return &String{Bytes: b, Hash: FNV1a(b)}
}

// TestDictRoundTrip verifies property 2: get after set returns the last
// value written, and get after remove returns Undefined.
func TestDictRoundTrip(t *testing.T) {
	d := &Dict{}
	k := Int(7)
	d.Set(k, FromObject(internedString([]byte("first"))))
	d.Set(k, FromObject(internedString([]byte("second"))))

	got := d.Get(k)
	s, ok := got.Obj.(*String)
	if !ok || string(s.Bytes) != "second" {
		t.Fatalf("Get after repeated Set = %v, want \"second\"", got)
	}

	d.Remove(k)
	if got := d.Get(k); !got.IsUndefined() {
		t.Fatalf("Get after Remove = %v, want Undefined", got)
	}
}

// TestDictResizePreservesContents verifies property 3: forcing a grow
// between inserts does not lose or corrupt any (k,v) pair.
func TestDictResizePreservesContents(t *testing.T) {
	d := &Dict{}
	const n = 200
	for i := 0; i < n; i++ {
		d.Set(Int(int64(i)), Int(int64(i*i)))
	}
	if d.Capacity() <= minDictCapacity {
		t.Fatalf("expected at least one resize for %d entries, capacity = %d", n, d.Capacity())
	}
	for i := 0; i < n; i++ {
		got := d.Get(Int(int64(i)))
		if !got.IsInteger() || got.Int != int64(i*i) {
			t.Fatalf("Get(%d) = %v, want Integer(%d)", i, got, i*i)
		}
	}
}

// TestDictLinearProbingCollisionScenario is concrete scenario S1: two
// keys that collide under linear probing at this table's starting
// capacity; removing the first must not disturb the second.
func TestDictLinearProbingCollisionScenario(t *testing.T) {
	d := &Dict{}
	d.Set(Int(1), FromObject(internedString([]byte("a"))))

	cap0 := minDictCapacity
	collidingKey := Int(int64(1 + cap0))
	d.Set(collidingKey, FromObject(internedString([]byte("b"))))

	d.Remove(Int(1))

	got := d.Get(collidingKey)
	s, ok := got.Obj.(*String)
	if !ok || string(s.Bytes) != "b" {
		t.Fatalf("Get(1+capacity) after removing the colliding key = %v, want \"b\"", got)
	}
}

func TestDictUnhashableKeyRejected(t *testing.T) {
	d := &Dict{}
	if d.Set(FromObject(&List{}), Int(1)) {
		t.Error("Set with an unhashable key should report false")
	}
}

func TestDictIteratorVisitsEveryLiveKey(t *testing.T) {
	d := &Dict{}
	want := map[int64]bool{}
	for i := int64(0); i < 50; i++ {
		d.Set(Int(i), Int(i))
		want[i] = true
	}
	d.Remove(Int(10))
	delete(want, 10)

	it := d.Iterate()
	seen := map[int64]bool{}
	for k := it.Next(); !k.IsUndefined(); k = it.Next() {
		seen[k.Int] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("iterator visited %d keys, want %d", len(seen), len(want))
	}
	for k := range want {
		if !seen[k] {
			t.Errorf("iterator missed key %d", k)
		}
	}
}
