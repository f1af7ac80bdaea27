package text

import (
	"bytes"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SplitEscaped splits on separator, treating an escape byte immediately
// before a separator as a request to keep the separator literal. The escape
// byte itself is dropped from the output in that case. Elements are owning
// copies because escaped separators change the content.
func SplitEscaped(v View, separator, escape byte) []String {
	var res []String
	b := v.b
	i := 0
	for i < len(b) {
		var element String
		for i < len(b) {
			c := b[i]
			if c == escape && i+1 < len(b) && b[i+1] == separator {
				element.PushByte(separator)
				i += 2
			} else if c == separator {
				i++
				break
			} else {
				element.PushByte(c)
				i++
			}
		}
		res = append(res, element)
	}
	return res
}

// Split splits on separator with no escape handling. Elements are views into
// the source; a trailing separator yields a final empty element.
func Split(v View, separator byte) []View {
	var res []View
	beg := 0
	for i := 0; i < len(v.b); i++ {
		if v.b[i] == separator {
			res = append(res, View{b: v.b[beg:i]})
			beg = i + 1
		}
	}
	res = append(res, View{b: v.b[beg:]})
	return res
}

// Escape prefixes every occurrence of a byte from characters with the escape
// byte.
func Escape(v View, characters View, escape byte) String {
	var res String
	res.Reserve(v.Len())
	for _, c := range v.b {
		if bytes.IndexByte(characters.b, c) >= 0 {
			res.PushByte(escape)
		}
		res.PushByte(c)
	}
	return res
}

// Unescape drops the escape byte in front of any byte from characters.
func Unescape(v View, characters View, escape byte) String {
	var res String
	res.Reserve(v.Len())
	for i := 0; i < len(v.b); {
		c := v.b[i]
		if c == escape && i+1 < len(v.b) && bytes.IndexByte(characters.b, v.b[i+1]) >= 0 {
			res.PushByte(v.b[i+1])
			i += 2
		} else {
			res.PushByte(c)
			i++
		}
	}
	return res
}

// Indent inserts the indent view before the first byte of every line,
// preserving all existing whitespace.
func Indent(v View, indent View) String {
	var res String
	res.Reserve(v.Len())
	wasEOL := true
	for _, c := range v.b {
		if wasEOL {
			res.Append(indent)
		}
		res.PushByte(c)
		wasEOL = c == '\n'
	}
	return res
}

// ExpandTabs replaces tab bytes with spaces up to the next tab stop,
// counting columns in the codepoint domain starting at col.
func ExpandTabs(line View, tabstop, col CharCount) String {
	var res String
	for i := 0; i < len(line.b); {
		r, size := utf8.DecodeRune(line.b[i:])
		if r == '\t' {
			endCol := (col/tabstop + 1) * tabstop
			for ; col < endCol; col++ {
				res.PushByte(' ')
			}
		} else {
			res.PushCodepoint(Codepoint(r))
			col++
		}
		i += size
	}
	return res
}

type charCategory int

const (
	charWord charCategory = iota
	charBlank
	charEOL
	charPunctuation
)

func categorize(r rune) charCategory {
	switch {
	case r == '\n':
		return charEOL
	case unicode.IsSpace(r):
		return charBlank
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return charWord
	default:
		return charPunctuation
	}
}

// WrapLines breaks text into lines of at most maxWidth codepoints, wrapping
// at run boundaries so words are not cut. Newlines always end a line. The
// returned views alias the source.
func WrapLines(v View, maxWidth CharCount) []View {
	var lines []View
	b := v.b
	lineBegin := 0
	col := CharCount(0)
	wordBegin := 0
	for wordBegin < len(b) {
		r, size := utf8.DecodeRune(b[wordBegin:])
		cat := categorize(r)
		wordEnd := wordBegin + size
		runLen := CharCount(1)
		for wordEnd < len(b) {
			next, nextSize := utf8.DecodeRune(b[wordEnd:])
			if categorize(next) != cat {
				break
			}
			wordEnd += nextSize
			runLen++
		}
		col += runLen
		if (cat == charWord || cat == charPunctuation) && col > maxWidth && wordBegin > lineBegin {
			lines = append(lines, View{b: b[lineBegin:wordBegin]})
			lineBegin = wordBegin
			col = runLen
		}
		if cat == charEOL {
			lines = append(lines, View{b: b[lineBegin:wordBegin]})
			lineBegin = wordBegin + size
			col = 0
		}
		wordBegin = wordEnd
	}
	if lineBegin < len(b) {
		lines = append(lines, View{b: b[lineBegin:]})
	}
	return lines
}

// Join concatenates the elements with the joiner byte between them. When
// escJoiner is set, joiner bytes inside elements are escaped with a
// backslash so SplitEscaped round-trips.
func Join(elements []View, joiner byte, escJoiner bool) String {
	var res String
	joinerSet := View{b: []byte{joiner}}
	for _, element := range elements {
		if !res.Empty() {
			res.PushByte(joiner)
		}
		if escJoiner {
			escaped := Escape(element, joinerSet, '\\')
			res.Append(escaped.View())
		} else {
			res.Append(element)
		}
	}
	return res
}

// PrefixMatch reports whether str begins with prefix.
func PrefixMatch(str, prefix View) bool {
	return str.SubstrBytes(0, prefix.Len()).Equal(prefix)
}

// SubsequenceMatch reports whether every codepoint of subseq appears in str
// in order, not necessarily contiguously.
func SubsequenceMatch(str, subseq View) bool {
	return fuzzy.Match(subseq.GoString(), str.GoString())
}

// StrToInt parses a base-10 integer from the view.
func StrToInt(v View) (int, error) {
	return strconv.Atoi(v.GoString())
}
