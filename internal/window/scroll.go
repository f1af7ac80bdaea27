package window

import (
	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/hooks"
	"github.com/wehlutyk/kakoune/internal/options"
	"github.com/wehlutyk/kakoune/internal/text"
)

const defaultTabstop = 8

// Scroll is a plain scrolling window over a buffer: no wrapping, no
// highlighting, tabs expanded to the tabstop option.
type Scroll struct {
	buf        buffer.Buffer
	opts       *options.Store
	hooks      *hooks.Runner
	width      int
	height     int
	position   display.BufferCoord
	dirty      bool
	lastChange int
}

// NewScroll builds a window over a buffer with its own option scope.
func NewScroll(buf buffer.Buffer, opts *options.Store) *Scroll {
	if opts == nil {
		opts = options.NewStore(nil)
	}
	return &Scroll{
		buf:   buf,
		opts:  opts,
		hooks: hooks.NewRunner(),
		dirty: true,
	}
}

// Buffer returns the displayed buffer.
func (w *Scroll) Buffer() buffer.Buffer { return w.buf }

// SetBuffer swaps the displayed buffer and forces a redraw.
func (w *Scroll) SetBuffer(buf buffer.Buffer) {
	w.buf = buf
	w.position = display.BufferCoord{}
	w.dirty = true
}

// NeedsRedraw reports whether window or buffer state changed since the last
// display update.
func (w *Scroll) NeedsRedraw() bool {
	return w.dirty || w.lastChange != w.buf.ChangeCount()
}

// ForceRedraw marks the window dirty regardless of buffer state.
func (w *Scroll) ForceRedraw() { w.dirty = true }

// SetDimensions resizes the window viewport.
func (w *Scroll) SetDimensions(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width = width
	w.height = height
	w.dirty = true
}

// Position returns the current scroll anchor.
func (w *Scroll) Position() display.BufferCoord { return w.position }

// ScrollTo moves the scroll anchor, clamped to buffer bounds.
func (w *Scroll) ScrollTo(line int) {
	max := w.buf.LineCount() - 1
	if line > max {
		line = max
	}
	if line < 0 {
		line = 0
	}
	if line != w.position.Line {
		w.position.Line = line
		w.dirty = true
	}
}

func (w *Scroll) tabstop() text.CharCount {
	if n, err := text.StrToInt(text.ViewOf(w.opts.Get("tabstop"))); err == nil && n > 0 {
		return text.CharCount(n)
	}
	return defaultTabstop
}

// UpdateDisplayBuffer renders the visible lines and clears the dirty state.
func (w *Scroll) UpdateDisplayBuffer() *display.Buffer {
	face := faces.Get("Default")
	tabstop := w.tabstop()
	lines := make([]display.Line, 0, w.height)
	for row := 0; row < w.height; row++ {
		i := w.position.Line + row
		var line display.Line
		if i < w.buf.LineCount() {
			expanded := text.ExpandTabs(w.buf.Line(i), tabstop, 0)
			line.Push(display.Atom{Text: expanded, Face: face})
		}
		lines = append(lines, line)
	}
	w.dirty = false
	w.lastChange = w.buf.ChangeCount()
	return &display.Buffer{Lines: lines}
}

// DisplayPosition translates a buffer coordinate to a screen coordinate.
// The second result is false when the coordinate is scrolled out of view.
func (w *Scroll) DisplayPosition(coord display.BufferCoord) (display.ScreenCoord, bool) {
	row := coord.Line - w.position.Line
	if row < 0 || row >= w.height {
		return display.ScreenCoord{}, false
	}
	col := w.buf.Line(coord.Line).CharCountTo(coord.Column)
	return display.ScreenCoord{Line: row, Column: col}, true
}

// Options returns the window's option scope.
func (w *Scroll) Options() *options.Store { return w.opts }

// Hooks returns the window's hook registry.
func (w *Scroll) Hooks() *hooks.Runner { return w.hooks }
