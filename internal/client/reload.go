package client

import (
	"fmt"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/logging/events"
	"github.com/wehlutyk/kakoune/internal/ui"
)

const autoreloadOption = "autoreload"

// reloadState is the reload dialog's tagged state. The dialog is a
// short-lived modal sub-state: while awaiting confirmation a one-shot
// continuation intercepts the next key system-wide.
type reloadState int

const (
	reloadIdle reloadState = iota
	reloadAwaitingConfirmation
)

// ReloadDialogOpen reports whether this session's dialog owns input focus.
func (c *Client) ReloadDialogOpen() bool {
	return c.reloadDialog == reloadAwaitingConfirmation
}

// CheckIfBufferNeedsReloading compares the on-disk timestamp of the file
// backing the current buffer with the recorded one. Depending on the
// autoreload policy it reloads silently, asks, or does nothing. No-op while
// a dialog is already open.
func (c *Client) CheckIfBufferNeedsReloading() {
	if c.reloadDialog != reloadIdle {
		return
	}

	buf := c.window.Buffer()
	policy := c.window.Options().Get(autoreloadOption)
	if buf.Flags()&buffer.FlagFile == 0 || policy == "no" {
		return
	}

	ts := buffer.FsTimestamp(buf.Name())
	if ts.IsZero() || ts.Equal(buf.FsTimestamp()) {
		return
	}
	if policy == "ask" {
		name := buf.DisplayName()
		c.InfoShow(fmt.Sprintf("reload '%s' ?", name),
			fmt.Sprintf("'%s' was modified externally\npress <ret> or y to reload, <esc> or n to keep", name),
			display.BufferCoord{}, ui.InfoPrompt)
		c.reloadDialog = reloadAwaitingConfirmation
		events.Reload.Prompt(c.name, buf.Name())
		c.armReloadContinuation()
	} else {
		c.reloadBuffer()
	}
}

func (c *Client) armReloadContinuation() {
	c.input.OnNextKey(func(key keys.Key) error {
		return c.onBufferReloadKey(key)
	})
}

func (c *Client) reloadBuffer() {
	buf := c.window.Buffer()
	if err := buf.Reload(); err != nil {
		c.PrintStatus(statusf("Error", "reloading '%s' failed: %v", buf.DisplayName(), err))
		return
	}
	c.PrintStatus(statusf("Information", "'%s' reloaded", buf.DisplayName()))
}

// onBufferReloadKey drives the AwaitingConfirmation state. Accept reloads,
// decline re-reads the timestamp so this external change stops prompting,
// anything else re-arms the continuation. Whichever way the dialog resolves,
// it resolves buffer-wide: every session showing the buffer closes its own
// dialog.
func (c *Client) onBufferReloadKey(key keys.Key) error {
	buf := c.window.Buffer()

	switch {
	case key == keys.Plain('y') || key.Code == keys.Return || key == keys.Ctrl('m'):
		c.reloadBuffer()
		events.Reload.Resolved(buf.Name(), true)
	case key == keys.Plain('n') || key.Code == keys.Escape:
		// The file may have changed again since the prompt opened; record
		// the current timestamp so only the next distinct change re-prompts.
		buf.SetFsTimestamp(buffer.FsTimestamp(buf.Name()))
		c.PrintStatus(statusf("Information", "'%s' kept", buf.DisplayName()))
		events.Reload.Resolved(buf.Name(), false)
	default:
		c.PrintStatus(statusf("Error", "'%s' is not a valid choice", key))
		events.Reload.InvalidChoice(c.name, key.String())
		c.armReloadContinuation()
		return nil
	}

	c.registry.forEach(func(other *Client) {
		if other.window.Buffer() == buf && other.reloadDialog != reloadIdle {
			other.closeBufferReloadDialog()
		}
	})
	// Safety net for sessions running outside a registry.
	if c.reloadDialog != reloadIdle {
		c.closeBufferReloadDialog()
	}
	return nil
}

// closeBufferReloadDialog resets the dialog flag, hides the prompt panel and
// drops the dispatcher's modal state together, so no error path can leave
// them inconsistent.
func (c *Client) closeBufferReloadDialog() {
	c.reloadDialog = reloadIdle
	c.InfoHide()
	c.input.ResetNormalMode()
}
