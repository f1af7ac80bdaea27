package client

import (
	"errors"

	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/logging/events"
	"github.com/wehlutyk/kakoune/internal/ui"
)

var interruptKey = keys.Ctrl('c')

// HandleAvailableInput is the backend's input callback. In urgent mode it
// reads exactly one key, signalling on interrupt and queueing anything else;
// otherwise it drains the queue (and, outside pending mode, the backend)
// through the edit dispatcher.
func (c *Client) HandleAvailableInput(mode ui.EventMode) {
	if mode == ui.EventUrgent {
		key := c.ui.GetKey()
		if key == interruptKey {
			events.Client.Interrupt(c.name)
			c.interrupter.Interrupt()
		} else {
			c.pendingKeys = append(c.pendingKeys, key)
		}
		return
	}

	if err := c.pumpKeys(mode); err != nil {
		var removed *RemovedError
		if errors.As(err, &removed) {
			events.Client.Removed(c.name, removed.Graceful)
			c.registry.Remove(c, removed.Graceful)
		}
	}
}

// pumpKeys drains keys until none remain. Recoverable errors stop the
// current drain after being reported; removal requests propagate.
func (c *Client) pumpKeys(mode ui.EventMode) error {
	for {
		key, ok := c.getNextKey(mode)
		if !ok {
			return nil
		}
		events.Client.Key(c.name, key.String(), modeName(mode))
		if err := c.processKey(key); err != nil {
			var runtime *RuntimeError
			if errors.As(err, &runtime) {
				events.Client.RuntimeError(c.name, runtime)
				c.PrintStatus(statusAtom(runtime.Message, "Error"))
				c.hooks.Run("RuntimeError", runtime.Message)
				return nil
			}
			return err
		}
	}
}

func (c *Client) processKey(key keys.Key) error {
	switch {
	case key == interruptKey:
		events.Client.Interrupt(c.name)
		c.interrupter.Interrupt()
	case key.Code == keys.FocusIn:
		c.hooks.Run("FocusIn", c.name)
	case key.Code == keys.FocusOut:
		c.hooks.Run("FocusOut", c.name)
	case key.Mod&keys.ModResize != 0:
		c.ForceRedraw()
	default:
		return c.input.HandleKey(key)
	}
	return nil
}

// getNextKey pops the internal queue first, then asks the backend unless the
// mode pins us to the queue.
func (c *Client) getNextKey(mode ui.EventMode) (keys.Key, bool) {
	if len(c.pendingKeys) > 0 {
		key := c.pendingKeys[0]
		c.pendingKeys = c.pendingKeys[1:]
		return key, true
	}
	if mode != ui.EventPending && c.ui.IsKeyAvailable() {
		return c.ui.GetKey(), true
	}
	return keys.Key{}, false
}

func modeName(mode ui.EventMode) string {
	switch mode {
	case ui.EventPending:
		return "pending"
	case ui.EventUrgent:
		return "urgent"
	default:
		return "normal"
	}
}
