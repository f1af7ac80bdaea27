package term

import (
	"testing"

	"github.com/wehlutyk/kakoune/internal/keys"
)

func feedParser(input string) *parser {
	raw := make(chan byte, len(input))
	for i := 0; i < len(input); i++ {
		raw <- input[i]
	}
	return &parser{raw: raw, done: make(chan struct{})}
}

func parseAll(t *testing.T, input string, count int) []keys.Key {
	t.Helper()
	p := feedParser(input)
	out := make([]keys.Key, 0, count)
	for i := 0; i < count; i++ {
		key, ok := p.next()
		if !ok {
			t.Fatalf("parser stopped after %d keys", i)
		}
		out = append(out, key)
	}
	return out
}

func TestParserLiteralKeys(t *testing.T) {
	got := parseAll(t, "aé漢", 3)
	want := []keys.Key{keys.Plain('a'), keys.Plain('é'), keys.Plain('漢')}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParserControlChords(t *testing.T) {
	got := parseAll(t, "\x03\x17", 2)
	want := []keys.Key{keys.Ctrl('c'), keys.Ctrl('w')}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParserNamedKeys(t *testing.T) {
	cases := []struct {
		input string
		want  keys.Key
	}{
		{"\r", keys.Key{Code: keys.Return}},
		{"\x7f", keys.Key{Code: keys.Backspace}},
		{"\x1b[A", keys.Key{Code: keys.Up}},
		{"\x1b[B", keys.Key{Code: keys.Down}},
		{"\x1b[C", keys.Key{Code: keys.Right}},
		{"\x1b[D", keys.Key{Code: keys.Left}},
		{"\x1bOH", keys.Key{Code: keys.Home}},
		{"\x1bOF", keys.Key{Code: keys.End}},
		{"\x1b[3~", keys.Key{Code: keys.Delete}},
		{"\x1b[5~", keys.Key{Code: keys.PageUp}},
		{"\x1b[6~", keys.Key{Code: keys.PageDown}},
		{"\x1b[7~", keys.Key{Code: keys.Home}},
		{"\x1b[8~", keys.Key{Code: keys.End}},
	}
	for _, tc := range cases {
		got := parseAll(t, tc.input, 1)
		if got[0] != tc.want {
			t.Fatalf("%q parsed as %v, want %v", tc.input, got[0], tc.want)
		}
	}
}

func TestParserFocusReports(t *testing.T) {
	got := parseAll(t, "\x1b[I\x1b[O", 2)
	if got[0].Code != keys.FocusIn || got[1].Code != keys.FocusOut {
		t.Fatalf("focus reports parsed as %v", got)
	}
}

func TestParserAltModifier(t *testing.T) {
	got := parseAll(t, "\x1bx", 1)
	want := keys.Key{Mod: keys.ModAlt, Code: 'x'}
	if got[0] != want {
		t.Fatalf("alt chord parsed as %v, want %v", got[0], want)
	}
}

func TestParserLoneEscapeTimesOut(t *testing.T) {
	got := parseAll(t, "\x1b", 1)
	if got[0].Code != keys.Escape {
		t.Fatalf("lone escape parsed as %v", got[0])
	}
}
