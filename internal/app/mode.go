package app

import (
	"fmt"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/client"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/window"
)

const pageLines = 20

// normalMode is the edit dispatcher for the demo binary: scrolling, buffer
// cycling and quitting. A one-shot continuation takes priority over normal
// dispatch, which is how modal sub-states (like the reload dialog) intercept
// the next key.
type normalMode struct {
	client       *client.Client
	buffers      []*buffer.FileBuffer
	continuation func(key keys.Key) error
}

func (m *normalMode) HandleKey(key keys.Key) error {
	if m.continuation != nil {
		fn := m.continuation
		m.continuation = nil
		return fn(key)
	}

	switch {
	case key == keys.Plain('q'):
		return &client.RemovedError{Graceful: true}
	case key == keys.Plain('j') || key.Code == keys.Down:
		m.scrollBy(1)
	case key == keys.Plain('k') || key.Code == keys.Up:
		m.scrollBy(-1)
	case key.Code == keys.PageDown || key == keys.Ctrl('f'):
		m.scrollBy(pageLines)
	case key.Code == keys.PageUp || key == keys.Ctrl('b'):
		m.scrollBy(-pageLines)
	case key.Code == keys.Home:
		m.scrollTo(0)
	case key.Code == keys.End:
		m.scrollTo(m.client.Buffer().LineCount() - 1)
	case key == keys.Plain('b'):
		m.nextBuffer()
	case key.Code == keys.Escape:
		// Nothing to cancel.
	default:
		return client.NewRuntimeError(fmt.Sprintf("%s is not a command", key))
	}
	return nil
}

func (m *normalMode) OnNextKey(fn func(key keys.Key) error) { m.continuation = fn }

func (m *normalMode) ResetNormalMode() { m.continuation = nil }

func (m *normalMode) IsRecording() bool { return false }

func (m *normalMode) RecordingRegister() rune { return 0 }

func (m *normalMode) ModeLine() []display.Atom {
	pos := m.client.Window().Position()
	total := m.client.Buffer().LineCount()
	return []display.Atom{
		display.NewAtom(fmt.Sprintf("%d/%d", pos.Line+1, total), faces.Get("StatusLine")),
	}
}

func (m *normalMode) scrollBy(delta int) {
	if w, ok := m.client.Window().(*window.Scroll); ok {
		w.ScrollTo(w.Position().Line + delta)
	}
}

func (m *normalMode) scrollTo(line int) {
	if w, ok := m.client.Window().(*window.Scroll); ok {
		w.ScrollTo(line)
	}
}

func (m *normalMode) nextBuffer() {
	if len(m.buffers) < 2 {
		return
	}
	current := m.client.Buffer()
	for i, buf := range m.buffers {
		if buffer.Buffer(buf) == current {
			m.client.ChangeBuffer(m.buffers[(i+1)%len(m.buffers)])
			return
		}
	}
	m.client.ChangeBuffer(m.buffers[0])
}
