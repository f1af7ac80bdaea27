package client

import (
	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/hooks"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/options"
	"github.com/wehlutyk/kakoune/internal/text"
	"github.com/wehlutyk/kakoune/internal/ui"
)

// fakeBackend records every backend call so tests can assert on draw
// traffic.
type fakeBackend struct {
	width, height int
	keys          []keys.Key

	drawCount       int
	drawStatusCount int
	refreshCount    int
	menuShowCount   int
	infoShowCount   int
	menuHideCount   int
	infoHideCount   int

	lastStatus    display.Line
	lastModeLine  display.Line
	lastMenuItems []display.Line
	lastSelected  int
	lastInfoTitle string
	lastInfoStyle ui.InfoStyle
	lastMenuPos   display.ScreenCoord
	lastInfoPos   display.ScreenCoord
	uiOptions     []string

	callback func(ui.EventMode)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{width: 80, height: 24}
}

func (f *fakeBackend) queueKeys(ks ...keys.Key) { f.keys = append(f.keys, ks...) }

func (f *fakeBackend) Dimensions() (int, int) { return f.width, f.height }

func (f *fakeBackend) IsKeyAvailable() bool { return len(f.keys) > 0 }

func (f *fakeBackend) GetKey() keys.Key {
	key := f.keys[0]
	f.keys = f.keys[1:]
	return key
}

func (f *fakeBackend) Draw(buf *display.Buffer, defaultFace faces.Face) { f.drawCount++ }

func (f *fakeBackend) DrawStatus(status, mode display.Line, face faces.Face) {
	f.drawStatusCount++
	f.lastStatus = status
	f.lastModeLine = mode
}

func (f *fakeBackend) Refresh() { f.refreshCount++ }

func (f *fakeBackend) MenuShow(items []display.Line, anchor display.ScreenCoord, fg, bg faces.Face, style ui.MenuStyle) {
	f.menuShowCount++
	f.lastMenuItems = items
	f.lastMenuPos = anchor
}

func (f *fakeBackend) MenuSelect(selected int) { f.lastSelected = selected }

func (f *fakeBackend) MenuHide() { f.menuHideCount++ }

func (f *fakeBackend) InfoShow(title, content text.String, anchor display.ScreenCoord, face faces.Face, style ui.InfoStyle) {
	f.infoShowCount++
	f.lastInfoTitle = title.GoString()
	f.lastInfoStyle = style
	f.lastInfoPos = anchor
}

func (f *fakeBackend) InfoHide() { f.infoHideCount++ }

func (f *fakeBackend) SetUIOptions(value string) { f.uiOptions = append(f.uiOptions, value) }

func (f *fakeBackend) SetInputCallback(cb func(ui.EventMode)) { f.callback = cb }

// fakeInput implements the edit dispatcher with observable state and
// one-shot continuation semantics.
type fakeInput struct {
	handled      []keys.Key
	continuation func(key keys.Key) error
	resetCount   int
	recording    bool
	register     rune
	handleErr    error
	modeAtoms    []display.Atom
}

func (f *fakeInput) HandleKey(key keys.Key) error {
	if f.continuation != nil {
		fn := f.continuation
		f.continuation = nil
		return fn(key)
	}
	f.handled = append(f.handled, key)
	return f.handleErr
}

func (f *fakeInput) OnNextKey(fn func(key keys.Key) error) { f.continuation = fn }

func (f *fakeInput) ResetNormalMode() {
	f.continuation = nil
	f.resetCount++
}

func (f *fakeInput) IsRecording() bool { return f.recording }

func (f *fakeInput) RecordingRegister() rune { return f.register }

func (f *fakeInput) ModeLine() []display.Atom { return f.modeAtoms }

// fakeInterrupter counts process-group signal deliveries.
type fakeInterrupter struct {
	count int
}

func (f *fakeInterrupter) Interrupt() { f.count++ }

// fakeWindow gives tests full control over redraw state and scroll
// position, including simulating a scroll happening during a draw.
type fakeWindow struct {
	buf          buffer.Buffer
	opts         *options.Store
	hookRunner   *hooks.Runner
	needsRedraw  bool
	position     display.BufferCoord
	posAfterDraw *display.BufferCoord
	width        int
	height       int
	updateCount  int
}

func newFakeWindow(buf buffer.Buffer) *fakeWindow {
	return &fakeWindow{
		buf:        buf,
		opts:       options.NewStore(nil),
		hookRunner: hooks.NewRunner(),
	}
}

func (w *fakeWindow) Buffer() buffer.Buffer { return w.buf }

func (w *fakeWindow) NeedsRedraw() bool { return w.needsRedraw }

func (w *fakeWindow) UpdateDisplayBuffer() *display.Buffer {
	w.updateCount++
	w.needsRedraw = false
	if w.posAfterDraw != nil {
		w.position = *w.posAfterDraw
		w.posAfterDraw = nil
	}
	return &display.Buffer{}
}

func (w *fakeWindow) Position() display.BufferCoord { return w.position }

func (w *fakeWindow) DisplayPosition(coord display.BufferCoord) (display.ScreenCoord, bool) {
	row := coord.Line - w.position.Line
	return display.ScreenCoord{Line: row, Column: text.CharCount(coord.Column)}, row >= 0
}

func (w *fakeWindow) SetDimensions(width, height int) {
	w.width = width
	w.height = height
}

func (w *fakeWindow) ForceRedraw() { w.needsRedraw = true }

func (w *fakeWindow) Options() *options.Store { return w.opts }

func (w *fakeWindow) Hooks() *hooks.Runner { return w.hookRunner }

type testSession struct {
	client      *Client
	backend     *fakeBackend
	input       *fakeInput
	window      *fakeWindow
	interrupter *fakeInterrupter
	hooks       *hooks.Runner
	registry    *Registry
}

func newTestSession(name string, buf buffer.Buffer, registry *Registry) *testSession {
	backend := newFakeBackend()
	input := &fakeInput{}
	wnd := newFakeWindow(buf)
	interrupter := &fakeInterrupter{}
	runner := hooks.NewRunner()
	c := New(Config{
		Name:        name,
		Session:     "test",
		UI:          backend,
		Window:      wnd,
		Input:       input,
		Hooks:       runner,
		Interrupter: interrupter,
	})
	if registry != nil {
		registry.Add(c)
	}
	return &testSession{
		client:      c,
		backend:     backend,
		input:       input,
		window:      wnd,
		interrupter: interrupter,
		hooks:       runner,
		registry:    registry,
	}
}
