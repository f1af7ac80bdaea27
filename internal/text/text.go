package text

import (
	"bytes"
	"hash/fnv"
	"unicode/utf8"
)

// ByteCount is a length or offset in the byte domain. Byte offsets address
// storage directly and are always the authoritative length.
type ByteCount int

// CharCount is a length or offset in the codepoint domain. Codepoint offsets
// are derived by scanning and never assume single-byte encoding.
type CharCount int

// Codepoint is a single Unicode scalar value.
type Codepoint rune

// View borrows a byte range without owning it. A View must not outlive the
// storage it was sliced from.
type View struct {
	b []byte
}

// NewView wraps the given bytes. The bytes are borrowed, not copied.
func NewView(b []byte) View {
	return View{b: b}
}

// ViewOf copies the given Go string into a fresh View. Use NewView to borrow.
func ViewOf(s string) View {
	return View{b: []byte(s)}
}

// Bytes exposes the borrowed byte range.
func (v View) Bytes() []byte { return v.b }

// Len returns the byte length of the view.
func (v View) Len() ByteCount { return ByteCount(len(v.b)) }

// Empty reports whether the view has zero bytes.
func (v View) Empty() bool { return len(v.b) == 0 }

// GoString returns the view content as a Go string (copying).
func (v View) GoString() string { return string(v.b) }

// CharLen returns the number of codepoints in the view. O(n).
func (v View) CharLen() CharCount { return CharCount(utf8.RuneCount(v.b)) }

// ByteAt returns the byte at the given byte offset.
func (v View) ByteAt(pos ByteCount) byte { return v.b[pos] }

// CharAt returns the codepoint at the given codepoint offset, scanning
// forward from the start of the view.
func (v View) CharAt(pos CharCount) Codepoint {
	offset := v.ByteCountTo(pos)
	r, _ := utf8.DecodeRune(v.b[offset:])
	return Codepoint(r)
}

// ByteCountTo converts a codepoint offset to the byte offset of that
// codepoint, clamped to the view length.
func (v View) ByteCountTo(count CharCount) ByteCount {
	off := 0
	for i := CharCount(0); i < count && off < len(v.b); i++ {
		_, size := utf8.DecodeRune(v.b[off:])
		off += size
	}
	return ByteCount(off)
}

// CharCountTo converts a byte offset to the number of codepoints before it.
func (v View) CharCountTo(count ByteCount) CharCount {
	if int(count) > len(v.b) {
		count = ByteCount(len(v.b))
	}
	return CharCount(utf8.RuneCount(v.b[:count]))
}

// SubstrBytes slices the view by byte range. A negative length means
// everything from the offset onwards; the range is clamped to the view.
func (v View) SubstrBytes(from, length ByteCount) View {
	if from < 0 {
		from = 0
	}
	if int(from) > len(v.b) {
		from = ByteCount(len(v.b))
	}
	remaining := ByteCount(len(v.b)) - from
	if length < 0 || length > remaining {
		length = remaining
	}
	return View{b: v.b[from : from+length]}
}

// SubstrChars slices the view by codepoint range, resolving both bounds to
// byte offsets by forward scanning before slicing.
func (v View) SubstrChars(from, length CharCount) View {
	beg := v.ByteCountTo(from)
	rest := View{b: v.b[beg:]}
	if length < 0 {
		return View{b: v.b[beg:]}
	}
	end := beg + rest.ByteCountTo(length)
	return View{b: v.b[beg:end]}
}

// Equal reports byte-wise equality.
func (v View) Equal(other View) bool {
	return len(v.b) == len(other.b) && bytes.Equal(v.b, other.b)
}

// Less reports byte-wise lexicographic ordering.
func (v View) Less(other View) bool {
	return bytes.Compare(v.b, other.b) < 0
}

// Compare returns -1, 0 or 1 ordering the views byte-wise.
func (v View) Compare(other View) int {
	return bytes.Compare(v.b, other.b)
}

// Hash returns a content-based hash of the viewed bytes.
func (v View) Hash() uint64 {
	h := fnv.New64a()
	h.Write(v.b)
	return h.Sum64()
}

// Str copies the viewed bytes into an owning String.
func (v View) Str() String {
	return String{b: append([]byte(nil), v.b...)}
}

// String owns its backing storage and may grow.
type String struct {
	b []byte
}

// NewString copies the given Go string into owned storage.
func NewString(s string) String {
	return String{b: []byte(s)}
}

// StringOfByte builds a string of count repetitions of a byte.
func StringOfByte(c byte, count CharCount) String {
	b := make([]byte, count)
	for i := range b {
		b[i] = c
	}
	return String{b: b}
}

// StringOfCodepoint builds a string of count repetitions of a codepoint.
func StringOfCodepoint(cp Codepoint, count CharCount) String {
	var s String
	for ; count > 0; count-- {
		s.PushCodepoint(cp)
	}
	return s
}

// View borrows the string content. The view is invalidated by any mutation
// of the string.
func (s *String) View() View { return View{b: s.b} }

// Len returns the byte length.
func (s *String) Len() ByteCount { return ByteCount(len(s.b)) }

// CharLen returns the codepoint length. O(n).
func (s *String) CharLen() CharCount { return CharCount(utf8.RuneCount(s.b)) }

// Empty reports whether the string has zero bytes.
func (s *String) Empty() bool { return len(s.b) == 0 }

// GoString returns the content as a Go string (copying).
func (s *String) GoString() string { return string(s.b) }

// Bytes exposes the backing storage.
func (s *String) Bytes() []byte { return s.b }

// Append appends the viewed bytes.
func (s *String) Append(v View) { s.b = append(s.b, v.b...) }

// AppendBytes appends raw bytes.
func (s *String) AppendBytes(b []byte) { s.b = append(s.b, b...) }

// PushByte appends one byte.
func (s *String) PushByte(c byte) { s.b = append(s.b, c) }

// PushCodepoint appends the UTF-8 encoding of one codepoint.
func (s *String) PushCodepoint(cp Codepoint) {
	s.b = utf8.AppendRune(s.b, rune(cp))
}

// Resize truncates or zero-extends the string to the given byte length.
func (s *String) Resize(size ByteCount) {
	if int(size) <= len(s.b) {
		s.b = s.b[:size]
		return
	}
	s.b = append(s.b, make([]byte, int(size)-len(s.b))...)
}

// Reserve grows the backing capacity without changing the length.
func (s *String) Reserve(size ByteCount) {
	if int(size) <= cap(s.b) {
		return
	}
	grown := make([]byte, len(s.b), size)
	copy(grown, s.b)
	s.b = grown
}

// Equal reports byte-wise equality.
func (s *String) Equal(other View) bool { return s.View().Equal(other) }

// Concat produces an owning copy sized to the exact combined length.
func Concat(lhs, rhs View) String {
	b := make([]byte, 0, len(lhs.b)+len(rhs.b))
	b = append(b, lhs.b...)
	b = append(b, rhs.b...)
	return String{b: b}
}

// CodepointToString returns the UTF-8 encoding of a codepoint as an owning
// string.
func CodepointToString(cp Codepoint) String {
	var s String
	s.PushCodepoint(cp)
	return s
}
