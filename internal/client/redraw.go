package client

import (
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/logging/events"
)

// RedrawIfNeeded is the sole entry point for display updates. It draws the
// window only when dirty, re-anchors inline overlays when the draw scrolled
// the window, diffs the status and mode lines against their caches, and
// always asks the backend to refresh. Calling it again with no state change
// issues no further draw calls.
func (c *Client) RedrawIfNeeded() {
	needsRedraw := c.window.NeedsRedraw()
	if needsRedraw {
		position := c.window.Position()
		c.ui.Draw(c.window.UpdateDisplayBuffer(), faces.Get("Default"))
		events.Client.Redraw(c.name, true)

		// The draw moved the window; inline overlays follow it. Fixed-region
		// styles keep their backend-decided position.
		if position != c.window.Position() {
			if len(c.menu.items) > 0 && c.menu.inline() {
				anchor, _ := c.window.DisplayPosition(c.menu.anchor)
				c.ui.MenuShow(c.menu.items, anchor,
					faces.Get("MenuForeground"), faces.Get("MenuBackground"), c.menu.style)
				c.ui.MenuSelect(c.menu.selected)
			}
			if !c.info.content.Empty() && c.info.style.Inline() {
				anchor, _ := c.window.DisplayPosition(c.info.anchor)
				c.ui.InfoShow(c.info.title, c.info.content, anchor,
					faces.Get("Information"), c.info.style)
			}
		}
	}

	modeLine := c.generateModeLine()
	if needsRedraw ||
		!c.statusLine.Equal(c.pendingStatusLine) ||
		!modeLine.Equal(c.modeLine) {
		c.modeLine = modeLine
		c.statusLine = c.pendingStatusLine
		c.ui.DrawStatus(c.statusLine, c.modeLine, faces.Get("StatusLine"))
		events.Client.StatusDraw(c.name)
	}

	c.ui.Refresh()
}

// ForceRedraw marks the window for a full redraw on the next
// reconciliation.
func (c *Client) ForceRedraw() {
	if c.window != nil {
		c.window.ForceRedraw()
	}
}
