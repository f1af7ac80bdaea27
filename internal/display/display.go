// Package display holds the presentation-level types exchanged between the
// client session, the window and the display backend: styled atoms, lines,
// whole-screen buffers, and the two coordinate domains.
package display

import (
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/text"
)

// BufferCoord addresses a position in buffer content: a line index and a
// byte column within that line.
type BufferCoord struct {
	Line   int
	Column text.ByteCount
}

// ScreenCoord addresses a position on the display surface in codepoint
// columns.
type ScreenCoord struct {
	Line   int
	Column text.CharCount
}

// Atom is a run of text drawn with a single face.
type Atom struct {
	Text text.String
	Face faces.Face
}

// NewAtom builds an atom from a Go string and a face.
func NewAtom(content string, face faces.Face) Atom {
	return Atom{Text: text.NewString(content), Face: face}
}

// Equal compares content and face name.
func (a Atom) Equal(other Atom) bool {
	return a.Face.Name == other.Face.Name && a.Text.Equal(other.Text.View())
}

// Line is an ordered sequence of atoms forming one display line.
type Line struct {
	Atoms []Atom
}

// Push appends an atom to the line.
func (l *Line) Push(atom Atom) {
	l.Atoms = append(l.Atoms, atom)
}

// Equal compares the atom sequences of both lines.
func (l Line) Equal(other Line) bool {
	if len(l.Atoms) != len(other.Atoms) {
		return false
	}
	for i := range l.Atoms {
		if !l.Atoms[i].Equal(other.Atoms[i]) {
			return false
		}
	}
	return true
}

// Content concatenates the text of every atom.
func (l Line) Content() string {
	var s text.String
	for _, atom := range l.Atoms {
		s.Append(atom.Text.View())
	}
	return s.GoString()
}

// CharLen returns the codepoint length of the whole line.
func (l Line) CharLen() text.CharCount {
	var n text.CharCount
	for _, atom := range l.Atoms {
		n += atom.Text.CharLen()
	}
	return n
}

// Buffer is a screen-sized grid of display lines produced by the window.
type Buffer struct {
	Lines []Line
}
