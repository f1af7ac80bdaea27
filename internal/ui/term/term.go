// Package term implements the display backend on a real terminal: raw mode,
// the alternate screen, focus reporting, escape-sequence key parsing and
// cell-addressed drawing of the window, status row and overlays.
package term

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/text"
	"github.com/wehlutyk/kakoune/internal/ui"
)

const (
	enterAltScreen  = "\x1b[?1049h"
	leaveAltScreen  = "\x1b[?1049l"
	enableFocus     = "\x1b[?1004h"
	disableFocus    = "\x1b[?1004l"
	hideCursor      = "\x1b[?25l"
	showCursor      = "\x1b[?25h"
	eraseLineSuffix = "\x1b[K"
)

// Backend drives one terminal. All drawing goes through an internal buffer
// flushed on Refresh, so a reconciliation pass costs one write.
type Backend struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
	width    int
	height   int
	buf      bytes.Buffer

	pending  []keys.Key
	keyCh    chan keys.Key
	resizeCh chan os.Signal
	done     chan struct{}
	callback func(ui.EventMode)

	menuLines []string
	menuRow   int
	menuCol   int
	selected  int
	infoLines []string
	infoRow   int
	infoCol   int

	options map[string]string
}

// New sets the terminal up: raw mode, alternate screen, focus reporting and
// the key reader goroutine. Stop restores everything.
func New(in, out *os.File) (*Backend, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", in.Name())
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	b := &Backend{
		in:       in,
		out:      out,
		oldState: oldState,
		width:    width,
		height:   height,
		keyCh:    make(chan keys.Key, 64),
		resizeCh: make(chan os.Signal, 1),
		done:     make(chan struct{}),
		selected: -1,
		options:  make(map[string]string),
	}
	fmt.Fprint(out, enterAltScreen+enableFocus+hideCursor)
	signal.Notify(b.resizeCh, syscall.SIGWINCH)
	go b.readLoop()
	return b, nil
}

// Stop leaves the alternate screen and restores the terminal state. Safe to
// call once only.
func (b *Backend) Stop() {
	close(b.done)
	signal.Stop(b.resizeCh)
	fmt.Fprint(b.out, disableFocus+leaveAltScreen+showCursor)
	term.Restore(int(b.in.Fd()), b.oldState)
}

// SetInputCallback installs the session's input entry point.
func (b *Backend) SetInputCallback(cb func(ui.EventMode)) { b.callback = cb }

// PumpEvents waits up to timeout for a key or a resize and dispatches it
// through the installed callback. It returns false when the input stream has
// closed, true otherwise (including on a quiet timeout).
func (b *Backend) PumpEvents(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case key, ok := <-b.keyCh:
		if !ok {
			return false
		}
		b.pending = append(b.pending, key)
		b.drainKeys()
	case <-b.resizeCh:
		b.handleResize()
	case <-timer.C:
		return true
	}
	if b.callback != nil {
		b.callback(ui.EventNormal)
	}
	return true
}

func (b *Backend) drainKeys() {
	for {
		select {
		case key, ok := <-b.keyCh:
			if !ok {
				return
			}
			b.pending = append(b.pending, key)
		default:
			return
		}
	}
}

func (b *Backend) handleResize() {
	width, height, err := term.GetSize(int(b.in.Fd()))
	if err != nil {
		return
	}
	b.mu.Lock()
	b.width = width
	b.height = height
	b.mu.Unlock()
	b.pending = append(b.pending, keys.Resize())
}

// Dimensions reports the window drawing area: the full terminal minus the
// status row.
func (b *Backend) Dimensions() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	height := b.height - 1
	if height < 1 {
		height = 1
	}
	return b.width, height
}

// IsKeyAvailable reports whether GetKey would return without blocking.
func (b *Backend) IsKeyAvailable() bool {
	b.drainKeys()
	return len(b.pending) > 0
}

// GetKey returns the next key, blocking until one arrives.
func (b *Backend) GetKey() keys.Key {
	if len(b.pending) > 0 {
		key := b.pending[0]
		b.pending = b.pending[1:]
		return key
	}
	key, ok := <-b.keyCh
	if !ok {
		return keys.Key{Code: keys.Invalid}
	}
	return key
}

// Draw paints the window content into the drawing area.
func (b *Backend) Draw(buf *display.Buffer, defaultFace faces.Face) {
	b.mu.Lock()
	defer b.mu.Unlock()
	contentHeight := b.height - 1
	for row := 0; row < contentHeight; row++ {
		b.moveTo(row, 0)
		if row < len(buf.Lines) {
			b.renderLine(buf.Lines[row], defaultFace)
		}
		b.buf.WriteString(eraseLineSuffix)
	}
	b.repaintOverlaysLocked()
}

func (b *Backend) renderLine(line display.Line, defaultFace faces.Face) {
	rendered := renderAtoms(line, defaultFace)
	b.buf.WriteString(ansi.Truncate(rendered, b.width, ""))
}

// DrawStatus paints the bottom row: status left, mode line right. When both
// do not fit, the mode line wins.
func (b *Backend) DrawStatus(status, mode display.Line, face faces.Face) {
	b.mu.Lock()
	defer b.mu.Unlock()
	statusStr := renderAtoms(status, face)
	modeStr := renderAtoms(mode, face)

	modeWidth := ansi.StringWidth(modeStr)
	if modeWidth > b.width {
		modeStr = ansi.Truncate(modeStr, b.width, "…")
		modeWidth = b.width
	}
	statusStr = ansi.Truncate(statusStr, b.width-modeWidth, "…")

	row := b.height - 1
	b.moveTo(row, 0)
	b.buf.WriteString(face.Style.Render(""))
	b.buf.WriteString(statusStr)
	b.buf.WriteString(eraseLineSuffix)
	b.moveTo(row, b.width-modeWidth)
	b.buf.WriteString(modeStr)
}

// Refresh flushes everything drawn since the last flush.
func (b *Backend) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.buf.Len() == 0 {
		return
	}
	b.out.Write(b.buf.Bytes())
	b.buf.Reset()
}

// MenuShow lays the menu out over the content area. Prompt menus dock just
// above the status row; inline menus sit below their anchor.
func (b *Backend) MenuShow(items []display.Line, anchor display.ScreenCoord, fg, bg faces.Face, style ui.MenuStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maxWidth := 0
	b.menuLines = b.menuLines[:0]
	for _, item := range items {
		content := item.Content()
		if w := runewidth.StringWidth(content); w > maxWidth {
			maxWidth = w
		}
		b.menuLines = append(b.menuLines, content)
	}
	if maxWidth > b.width {
		maxWidth = b.width
	}

	visible := len(b.menuLines)
	if max := b.height - 2; visible > max {
		visible = max
	}
	if style == ui.MenuInline {
		b.menuRow = anchor.Line + 1
		b.menuCol = int(anchor.Column)
		if b.menuRow+visible >= b.height-1 {
			b.menuRow = anchor.Line - visible
		}
	} else {
		b.menuRow = b.height - 1 - visible
		b.menuCol = 0
	}
	if b.menuRow < 0 {
		b.menuRow = 0
	}
	if b.menuCol+maxWidth > b.width {
		b.menuCol = b.width - maxWidth
	}
	if b.menuCol < 0 {
		b.menuCol = 0
	}
	b.selected = -1
	b.paintMenuLocked(fg, bg, maxWidth, visible)
}

func (b *Backend) paintMenuLocked(fg, bg faces.Face, width, visible int) {
	for i := 0; i < visible; i++ {
		face := bg
		if i == b.selected {
			face = fg
		}
		b.moveTo(b.menuRow+i, b.menuCol)
		line := runewidth.Truncate(b.menuLines[i], width, "…")
		line += spaces(width - runewidth.StringWidth(line))
		b.buf.WriteString(face.Style.Render(line))
	}
}

// MenuSelect repaints the menu with the new selection highlighted.
func (b *Backend) MenuSelect(selected int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = selected
	b.repaintOverlaysLocked()
}

// MenuHide drops the menu; the next window draw repaints the cells under it.
func (b *Backend) MenuHide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.menuLines = nil
	b.selected = -1
}

// InfoShow lays the info panel out: title then content lines, docked to the
// status area or anchored inline.
func (b *Backend) InfoShow(title, content text.String, anchor display.ScreenCoord, face faces.Face, style ui.InfoStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.infoLines = b.infoLines[:0]
	if !title.Empty() {
		b.infoLines = append(b.infoLines, title.GoString())
	}
	for _, line := range text.Split(content.View(), '\n') {
		b.infoLines = append(b.infoLines, line.GoString())
	}

	switch {
	case style == ui.InfoInlineAbove:
		b.infoRow = anchor.Line - len(b.infoLines)
	case style.Inline():
		b.infoRow = anchor.Line + 1
	default:
		b.infoRow = b.height - 1 - len(b.infoLines)
	}
	if b.infoRow < 0 {
		b.infoRow = 0
	}
	if style.Inline() {
		b.infoCol = int(anchor.Column)
	} else {
		b.infoCol = 0
	}
	b.paintInfoLocked(face)
}

func (b *Backend) paintInfoLocked(face faces.Face) {
	width := 0
	for _, line := range b.infoLines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	if b.infoCol+width > b.width {
		b.infoCol = b.width - width
	}
	if b.infoCol < 0 {
		b.infoCol = 0
	}
	for i, line := range b.infoLines {
		row := b.infoRow + i
		if row >= b.height-1 {
			break
		}
		b.moveTo(row, b.infoCol)
		padded := line + spaces(width-runewidth.StringWidth(line))
		b.buf.WriteString(face.Style.Render(padded))
	}
}

// InfoHide drops the panel; the next window draw repaints under it.
func (b *Backend) InfoHide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.infoLines = nil
}

func (b *Backend) repaintOverlaysLocked() {
	if len(b.menuLines) > 0 {
		visible := len(b.menuLines)
		if max := b.height - 2; visible > max {
			visible = max
		}
		width := 0
		for _, line := range b.menuLines {
			if w := runewidth.StringWidth(line); w > width {
				width = w
			}
		}
		if width > b.width {
			width = b.width
		}
		b.paintMenuLocked(faces.Get("MenuForeground"), faces.Get("MenuBackground"), width, visible)
	}
	if len(b.infoLines) > 0 {
		b.paintInfoLocked(faces.Get("Information"))
	}
}

// SetUIOptions takes the ui_options value as comma-separated key=value
// pairs. Unknown keys are kept so a later consumer can read them.
func (b *Backend) SetUIOptions(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.options = make(map[string]string)
	for _, pair := range text.SplitEscaped(text.ViewOf(value), ',', '\\') {
		view := pair.View()
		if view.Empty() {
			continue
		}
		eq := -1
		for i := text.ByteCount(0); i < view.Len(); i++ {
			if view.ByteAt(i) == '=' {
				eq = int(i)
				break
			}
		}
		if eq < 0 {
			b.options[view.GoString()] = ""
			continue
		}
		key := view.SubstrBytes(0, text.ByteCount(eq))
		val := view.SubstrBytes(text.ByteCount(eq+1), view.Len()-text.ByteCount(eq+1))
		b.options[key.GoString()] = val.GoString()
	}
}

// UIOption reads a value previously pushed through SetUIOptions.
func (b *Backend) UIOption(name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.options[name]
}

func (b *Backend) moveTo(row, col int) {
	fmt.Fprintf(&b.buf, "\x1b[%d;%dH", row+1, col+1)
}

func renderAtoms(line display.Line, defaultFace faces.Face) string {
	var out bytes.Buffer
	for _, atom := range line.Atoms {
		face := atom.Face
		if face.Name == "" {
			face = defaultFace
		}
		out.WriteString(face.Style.Render(atom.Text.GoString()))
	}
	return out.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return string(bytes.Repeat([]byte{' '}, n))
}
