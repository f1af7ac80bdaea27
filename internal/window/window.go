// Package window specifies the view collaborator: the component that maps
// buffer content to a screen-sized display buffer and owns the scroll
// position. The client session only consumes this interface; Scroll is a
// minimal implementation used by the demo binary and the tests.
package window

import (
	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/hooks"
	"github.com/wehlutyk/kakoune/internal/options"
)

// Window is the view contract the client session depends on.
type Window interface {
	Buffer() buffer.Buffer
	NeedsRedraw() bool
	UpdateDisplayBuffer() *display.Buffer
	Position() display.BufferCoord
	DisplayPosition(coord display.BufferCoord) (display.ScreenCoord, bool)
	SetDimensions(width, height int)
	ForceRedraw()
	Options() *options.Store
	Hooks() *hooks.Runner
}
