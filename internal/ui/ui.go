// Package ui declares the display backend contract the client session
// consumes. A backend owns one terminal-like surface: it reports dimensions,
// surfaces key events, and executes draw requests. The terminal
// implementation lives in the term subpackage.
package ui

import (
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/text"
)

// EventMode distinguishes how the backend wants available input handled.
type EventMode int

const (
	// EventNormal drains the session queue, then the backend.
	EventNormal EventMode = iota
	// EventPending drains only the session's internal queue.
	EventPending
	// EventUrgent reads exactly one key from the backend, bypassing the
	// queue.
	EventUrgent
)

// MenuStyle selects how a menu is positioned.
type MenuStyle int

const (
	// MenuPrompt docks the menu to the status area.
	MenuPrompt MenuStyle = iota
	// MenuInline anchors the menu to a buffer position.
	MenuInline
)

// InfoStyle selects how an info panel is positioned.
type InfoStyle int

const (
	// InfoPrompt docks the panel to the status area.
	InfoPrompt InfoStyle = iota
	// InfoInline anchors the panel to a buffer position.
	InfoInline
	// InfoInlineAbove anchors above the position.
	InfoInlineAbove
	// InfoInlineBelow anchors below the position.
	InfoInlineBelow
)

// Inline reports whether the style is anchored to a buffer position and must
// be re-resolved when the window scrolls.
func (s InfoStyle) Inline() bool {
	return s == InfoInline || s == InfoInlineAbove || s == InfoInlineBelow
}

// Backend is the display surface contract.
type Backend interface {
	Dimensions() (width, height int)
	IsKeyAvailable() bool
	GetKey() keys.Key
	Draw(buf *display.Buffer, defaultFace faces.Face)
	DrawStatus(status, mode display.Line, face faces.Face)
	Refresh()
	MenuShow(items []display.Line, anchor display.ScreenCoord, fg, bg faces.Face, style MenuStyle)
	MenuSelect(selected int)
	MenuHide()
	InfoShow(title, content text.String, anchor display.ScreenCoord, face faces.Face, style InfoStyle)
	InfoHide()
	SetUIOptions(value string)
	SetInputCallback(cb func(EventMode))
}
