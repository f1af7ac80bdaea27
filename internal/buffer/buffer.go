// Package buffer defines the buffer collaborator consumed by the client
// session, plus a file-backed implementation. The session never mutates
// buffer content itself; it only inspects flags, compares file timestamps
// and requests reloads.
package buffer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wehlutyk/kakoune/internal/text"
)

// Flags describes buffer properties the session reacts to.
type Flags uint8

const (
	FlagFile Flags = 1 << iota
	FlagNew
	FlagFifo
)

// Buffer is the slice of the text-storage engine the session depends on.
type Buffer interface {
	Name() string
	DisplayName() string
	Flags() Flags
	IsModified() bool
	FsTimestamp() time.Time
	SetFsTimestamp(ts time.Time)
	Reload() error
	LineCount() int
	Line(i int) text.View
	ChangeCount() int
}

// FsTimestamp reads the on-disk modification time of a path. A missing or
// unreadable file yields the zero time, the sentinel for "invalid".
func FsTimestamp(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// FileBuffer is a buffer backed by a file on disk.
type FileBuffer struct {
	name        string
	flags       Flags
	lines       []text.String
	modified    bool
	fsTimestamp time.Time
	changes     int
}

// NewFileBuffer loads a file into a buffer. A nonexistent file produces an
// empty buffer carrying the New flag.
func NewFileBuffer(path string) (*FileBuffer, error) {
	b := &FileBuffer{name: path, flags: FlagFile}
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		b.flags |= FlagNew
		b.lines = []text.String{{}}
		return b, nil
	}
	b.setContent(content)
	b.fsTimestamp = FsTimestamp(path)
	return b, nil
}

// NewScratchBuffer builds an in-memory buffer with the given content.
func NewScratchBuffer(name, content string) *FileBuffer {
	b := &FileBuffer{name: name}
	b.setContent([]byte(content))
	return b
}

func (b *FileBuffer) setContent(content []byte) {
	raw := bytes.Split(content, []byte("\n"))
	if len(raw) > 1 && len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}
	b.lines = make([]text.String, len(raw))
	for i, line := range raw {
		b.lines[i] = text.NewView(line).Str()
	}
	if len(b.lines) == 0 {
		b.lines = []text.String{{}}
	}
	b.changes++
}

// Name returns the buffer name (the file path for file-backed buffers).
func (b *FileBuffer) Name() string { return b.name }

// DisplayName returns the short name shown in prompts and the mode line.
func (b *FileBuffer) DisplayName() string {
	if b.flags&FlagFile != 0 {
		return filepath.Base(b.name)
	}
	return b.name
}

// Flags returns the buffer property flags.
func (b *FileBuffer) Flags() Flags { return b.flags }

// SetFlags replaces the property flags.
func (b *FileBuffer) SetFlags(flags Flags) { b.flags = flags }

// IsModified reports unsaved changes.
func (b *FileBuffer) IsModified() bool { return b.modified }

// SetModified marks or clears the unsaved-changes flag.
func (b *FileBuffer) SetModified(modified bool) { b.modified = modified }

// FsTimestamp returns the recorded on-disk modification time.
func (b *FileBuffer) FsTimestamp() time.Time { return b.fsTimestamp }

// SetFsTimestamp records a new on-disk modification time.
func (b *FileBuffer) SetFsTimestamp(ts time.Time) { b.fsTimestamp = ts }

// Reload replaces the buffer content from disk and re-reads the timestamp.
func (b *FileBuffer) Reload() error {
	content, err := os.ReadFile(b.name)
	if err != nil {
		return fmt.Errorf("reload %s: %w", b.name, err)
	}
	b.setContent(content)
	b.modified = false
	b.flags &^= FlagNew
	b.fsTimestamp = FsTimestamp(b.name)
	return nil
}

// LineCount returns the number of content lines.
func (b *FileBuffer) LineCount() int { return len(b.lines) }

// Line borrows one content line without its newline.
func (b *FileBuffer) Line(i int) text.View {
	if i < 0 || i >= len(b.lines) {
		return text.View{}
	}
	return b.lines[i].View()
}

// ChangeCount increases on every content replacement; the window uses it to
// detect staleness.
func (b *FileBuffer) ChangeCount() int { return b.changes }

// SetLine replaces one line, marking the buffer modified.
func (b *FileBuffer) SetLine(i int, content string) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	b.lines[i] = text.NewString(content)
	b.modified = true
	b.changes++
}
