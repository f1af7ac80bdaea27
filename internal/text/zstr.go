package text

// ZeroTerminated is the result of adapting a view for consumers that need a
// terminator byte after the content. When the byte following the viewed
// range in its backing array is already zero the original storage is
// borrowed; otherwise the range is copied into fresh owned storage with a
// terminator appended.
type ZeroTerminated struct {
	b     []byte
	owned bool
}

// Content returns the string bytes without the terminator.
func (z ZeroTerminated) Content() []byte { return z.b[:len(z.b)-1] }

// WithTerminator returns the string bytes including the trailing zero.
func (z ZeroTerminated) WithTerminator() []byte { return z.b }

// Owned reports whether the adapter had to copy.
func (z ZeroTerminated) Owned() bool { return z.owned }

// ZStr adapts the view to zero-terminated form. The borrow path requires the
// view to have spare backing capacity holding a zero byte immediately after
// the range; anything else copies.
func (v View) ZStr() ZeroTerminated {
	if cap(v.b) > len(v.b) {
		full := v.b[:len(v.b)+1]
		if full[len(v.b)] == 0 {
			return ZeroTerminated{b: full}
		}
	}
	owned := make([]byte, len(v.b)+1)
	copy(owned, v.b)
	return ZeroTerminated{b: owned, owned: true}
}
