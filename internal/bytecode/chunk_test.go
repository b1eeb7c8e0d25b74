package bytecode

import "testing"

func TestAppendTracksLength(t *testing.T) {
	c := NewCode()
	c.Append(0x01, 1)
	c.Append(0x02, 1)
	c.Append(0x03, 2)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
}

func TestLineForMapsOffsetToSourceLine(t *testing.T) {
	c := NewCode()
	c.Append(0x01, 1) // offset 0, line 1
	c.Append(0x02, 1) // offset 1, line 1
	c.Append(0x03, 2) // offset 2, line 2
	c.Append(0x04, 2) // offset 3, line 2
	c.Append(0x05, 5) // offset 4, line 5

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 5},
	}
	for _, tt := range tests {
		if got := c.Debug.LineFor(tt.offset); got != tt.want {
			t.Errorf("LineFor(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLineForEmptyProgram(t *testing.T) {
	var lp LineProgram
	if got := lp.LineFor(0); got != 0 {
		t.Errorf("LineFor(0) on an empty program = %d, want 0", got)
	}
}
