package client

import (
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/logging/events"
	"github.com/wehlutyk/kakoune/internal/text"
	"github.com/wehlutyk/kakoune/internal/ui"
)

// menuState is the single active menu overlay, or empty.
type menuState struct {
	items    []display.Line
	anchor   display.BufferCoord
	style    ui.MenuStyle
	selected int
}

func (m menuState) inline() bool { return m.style == ui.MenuInline }

// infoState is the single active info panel, or empty.
type infoState struct {
	title   text.String
	content text.String
	anchor  display.BufferCoord
	style   ui.InfoStyle
}

// MenuShow replaces any active menu with a new one. Inline menus resolve
// their screen position through the window; other styles let the backend
// place them.
func (c *Client) MenuShow(choices []display.Line, anchor display.BufferCoord, style ui.MenuStyle) {
	c.menu = menuState{items: choices, anchor: anchor, style: style, selected: -1}
	var uiAnchor display.ScreenCoord
	if style == ui.MenuInline {
		uiAnchor, _ = c.window.DisplayPosition(anchor)
	}
	c.ui.MenuShow(c.menu.items, uiAnchor, faces.Get("MenuForeground"), faces.Get("MenuBackground"), style)
	events.Overlay.MenuShow(c.name, len(choices), c.menu.inline())
}

// MenuSelect moves the menu selection. A negative index clears it.
func (c *Client) MenuSelect(selected int) {
	c.menu.selected = selected
	c.ui.MenuSelect(selected)
	events.Overlay.MenuSelect(c.name, selected)
}

// MenuHide discards the active menu.
func (c *Client) MenuHide() {
	c.menu = menuState{}
	c.ui.MenuHide()
	events.Overlay.MenuHide(c.name)
}

// InfoShow replaces any active info panel.
func (c *Client) InfoShow(title, content string, anchor display.BufferCoord, style ui.InfoStyle) {
	c.info = infoState{
		title:   text.NewString(title),
		content: text.NewString(content),
		anchor:  anchor,
		style:   style,
	}
	var uiAnchor display.ScreenCoord
	if style.Inline() {
		uiAnchor, _ = c.window.DisplayPosition(anchor)
	}
	c.ui.InfoShow(c.info.title, c.info.content, uiAnchor, faces.Get("Information"), style)
	events.Overlay.InfoShow(c.name, title, style.Inline())
}

// InfoHide discards the active info panel.
func (c *Client) InfoHide() {
	c.info = infoState{}
	c.ui.InfoHide()
	events.Overlay.InfoHide(c.name)
}
