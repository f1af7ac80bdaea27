package window

import (
	"testing"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/options"
)

func scratchWindow(content string) *Scroll {
	w := NewScroll(buffer.NewScratchBuffer("*scratch*", content), nil)
	w.SetDimensions(80, 4)
	return w
}

func TestScrollRedrawLifecycle(t *testing.T) {
	w := scratchWindow("one\ntwo\nthree\n")
	if !w.NeedsRedraw() {
		t.Fatal("fresh window should need a redraw")
	}
	w.UpdateDisplayBuffer()
	if w.NeedsRedraw() {
		t.Fatal("window dirty right after a display update")
	}
	w.ForceRedraw()
	if !w.NeedsRedraw() {
		t.Fatal("ForceRedraw did not mark the window dirty")
	}
}

func TestScrollBufferChangeMarksDirty(t *testing.T) {
	buf := buffer.NewScratchBuffer("*scratch*", "one\ntwo\n")
	w := NewScroll(buf, nil)
	w.SetDimensions(80, 4)
	w.UpdateDisplayBuffer()

	buf.SetLine(0, "changed")
	if !w.NeedsRedraw() {
		t.Fatal("buffer edit did not mark the window dirty")
	}
}

func TestScrollToClampsToBufferBounds(t *testing.T) {
	w := scratchWindow("one\ntwo\nthree\n")
	w.ScrollTo(100)
	if got := w.Position().Line; got != 2 {
		t.Fatalf("scroll past the end landed on line %d, want 2", got)
	}
	w.ScrollTo(-5)
	if got := w.Position().Line; got != 0 {
		t.Fatalf("scroll before the start landed on line %d, want 0", got)
	}
}

func TestUpdateDisplayBufferExpandsTabs(t *testing.T) {
	opts := options.NewStore(map[string]string{"tabstop": "4"})
	w := NewScroll(buffer.NewScratchBuffer("*scratch*", "\tx\n"), opts)
	w.SetDimensions(80, 1)

	buf := w.UpdateDisplayBuffer()
	if got := buf.Lines[0].Content(); got != "    x" {
		t.Fatalf("rendered line = %q, want tabs expanded to 4", got)
	}
}

func TestDisplayPositionTracksScroll(t *testing.T) {
	w := scratchWindow("aaa\nbbb\nccc\nddd\neee\nfff\n")
	w.ScrollTo(2)

	coord, ok := w.DisplayPosition(display.BufferCoord{Line: 3, Column: 2})
	if !ok {
		t.Fatal("visible coordinate reported as hidden")
	}
	if coord.Line != 1 || coord.Column != 2 {
		t.Fatalf("display position = %+v", coord)
	}

	if _, ok := w.DisplayPosition(display.BufferCoord{Line: 0}); ok {
		t.Fatal("scrolled-out coordinate reported as visible")
	}
}
