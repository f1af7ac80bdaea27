package text

import "testing"

func TestZStrBorrowsWhenTerminatorPresent(t *testing.T) {
	backing := []byte("hello\x00")
	v := NewView(backing).SubstrBytes(0, 5)
	z := v.ZStr()
	if z.Owned() {
		t.Fatalf("expected borrow when terminator follows the range")
	}
	if string(z.Content()) != "hello" {
		t.Fatalf("expected content %q, got %q", "hello", z.Content())
	}
	if &z.WithTerminator()[0] != &backing[0] {
		t.Fatalf("borrow path must alias the source storage")
	}
}

func TestZStrCopiesWhenNoTerminator(t *testing.T) {
	backing := []byte("hello world")
	v := NewView(backing).SubstrBytes(0, 5)
	z := v.ZStr()
	if !z.Owned() {
		t.Fatalf("expected copy when the following byte is not a terminator")
	}
	if string(z.Content()) != "hello" {
		t.Fatalf("expected content %q, got %q", "hello", z.Content())
	}
	if z.WithTerminator()[5] != 0 {
		t.Fatalf("copy path must append a terminator")
	}
}

func TestZStrBothPathsIdenticalContent(t *testing.T) {
	terminated := NewView([]byte("range\x00")).SubstrBytes(0, 5)
	unterminated := NewView([]byte("range!")).SubstrBytes(0, 5)
	a := terminated.ZStr()
	b := unterminated.ZStr()
	if string(a.Content()) != string(b.Content()) {
		t.Fatalf("paths disagree: %q vs %q", a.Content(), b.Content())
	}
	if a.Owned() == b.Owned() {
		t.Fatalf("expected one borrowed and one owned adapter")
	}
}

func TestZStrAtEndOfBacking(t *testing.T) {
	backing := []byte("tail")
	v := NewView(backing[:4:4])
	z := v.ZStr()
	if !z.Owned() {
		t.Fatalf("no spare capacity means the adapter must copy")
	}
	if string(z.Content()) != "tail" {
		t.Fatalf("expected content %q, got %q", "tail", z.Content())
	}
}
