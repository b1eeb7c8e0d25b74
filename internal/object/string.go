package object

import (
	"fmt"
	"strconv"
	"strings"
)

// String is an immutable, interned byte buffer with a precomputed hash.
// Length is the byte length, not the codepoint count. The original
// Chalk design allocates the payload immediately after the header in one
// heap block terminated by a NUL so it can be handed to C consumers;
// Vellum has no C boundary to satisfy, so Bytes is an ordinary slice, but
// the "compute the hash once, up front" discipline is kept.
type String struct {
	ObjHeader
	Bytes []byte
	Hash  uint64
}

func (s *String) Trace(visit func(Value)) {}

// Len returns the byte length of the string.
func (s *String) Len() int { return len(s.Bytes) }

func (s *String) String() string { return string(s.Bytes) }

// FNV1a is the conformant hash the spec names for strings.
func FNV1a(b []byte) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// Find performs a Boyer-Moore-Horspool substring search and returns the
// byte offset of needle within haystack, or NotFound.
const NotFound = -1

func Find(haystack, needle []byte) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[needle[i]] = m - 1 - i
	}

	pos := 0
	for pos <= n-m {
		j := m - 1
		for j >= 0 && haystack[pos+j] == needle[j] {
			j--
		}
		if j < 0 {
			return pos
		}
		pos += shift[haystack[pos+m-1]]
	}
	return NotFound
}

// FormatString implements the tiny format language of §4.2: '$'
// interpolates a raw byte string, '@' interpolates a string object's
// bytes. No other specifiers are recognized; a bare '$'/'@' consumes one
// argument from args in order.
func FormatString(format string, args ...any) (string, error) {
	var sb strings.Builder
	argIdx := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '$' && c != '@' {
			sb.WriteByte(c)
			continue
		}
		if argIdx >= len(args) {
			return "", fmt.Errorf("format %q: missing argument for specifier %q", format, c)
		}
		arg := args[argIdx]
		argIdx++
		switch c {
		case '$':
			switch v := arg.(type) {
			case string:
				sb.WriteString(v)
			case []byte:
				sb.Write(v)
			default:
				return "", fmt.Errorf("format %q: %q expects a raw byte string argument", format, c)
			}
		case '@':
			s, ok := arg.(*String)
			if !ok {
				return "", fmt.Errorf("format %q: %q expects a string object argument", format, c)
			}
			sb.Write(s.Bytes)
		}
	}
	return sb.String(), nil
}

// IntegerToBytes renders an integer's decimal representation, the
// payload for FromInteger string construction.
func IntegerToBytes(i int64) []byte {
	return []byte(strconv.FormatInt(i, 10))
}

// SliceString implements the "from a slice of another string" string
// construction operation: Start is a codepoint index into src, Count is
// the number of codepoints to take, and Step is +1 or -1, letting a
// caller slice a string in reverse (e.g. Wren/Chalk-style str[5..0]
// ranges). Decoding walks Count codepoints from Start in the direction
// of Step and returns the concatenated bytes.
func SliceString(src []byte, start, count, step int) ([]byte, bool) {
	if step != 1 && step != -1 {
		return nil, false
	}
	offsets := codepointOffsets(src)
	numCodepoints := len(offsets) - 1
	if start < 0 || start > numCodepoints {
		return nil, false
	}

	out := make([]byte, 0, count)
	idx := start
	for n := 0; n < count; n++ {
		if idx < 0 || idx >= numCodepoints {
			return nil, false
		}
		out = append(out, src[offsets[idx]:offsets[idx+1]]...)
		idx += step
	}
	return out, true
}

// codepointOffsets returns the byte offset of every codepoint in src
// plus a trailing sentinel equal to len(src).
func codepointOffsets(src []byte) []int {
	offsets := make([]int, 0, len(src)+1)
	i := 0
	for i < len(src) {
		offsets = append(offsets, i)
		size := DecodeSize(src[i])
		if size == 0 {
			size = 1
		}
		i += size
	}
	offsets = append(offsets, len(src))
	return offsets
}
