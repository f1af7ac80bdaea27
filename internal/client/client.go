// Package client implements the interactive session layer: one connected
// display surface, its window, the input pump, redraw reconciliation,
// transient overlays, and the file-reload dialog.
package client

import (
	"fmt"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/hooks"
	"github.com/wehlutyk/kakoune/internal/keys"
	"github.com/wehlutyk/kakoune/internal/logging/events"
	"github.com/wehlutyk/kakoune/internal/text"
	"github.com/wehlutyk/kakoune/internal/ui"
	"github.com/wehlutyk/kakoune/internal/window"
)

const uiOptionsOption = "ui_options"

// Config carries the collaborators and identity for one session.
type Config struct {
	Name        string
	Session     string
	UI          ui.Backend
	Window      window.Window
	Input       InputHandler
	Hooks       *hooks.Runner
	EnvVars     map[string]string
	Expander    Expander
	Interrupter Interrupter
}

// Client is one session: a display surface, a window, an input queue, and
// the overlay/dialog state drawn over the window.
type Client struct {
	name        string
	session     string
	ui          ui.Backend
	window      window.Window
	input       InputHandler
	hooks       *hooks.Runner
	envVars     map[string]string
	expander    Expander
	interrupter Interrupter
	registry    *Registry

	pendingKeys []keys.Key

	menu menuState
	info infoState

	statusLine        display.Line
	pendingStatusLine display.Line
	modeLine          display.Line

	reloadDialog reloadState

	// Transition bookkeeping only; the registry owns buffer lifetime.
	lastBuffer buffer.Buffer
}

// New wires a session to its surface: dimensions are pushed to the window,
// the ui_options watch is registered, and the input callback installed.
func New(cfg Config) *Client {
	c := &Client{
		name:        cfg.Name,
		session:     cfg.Session,
		ui:          cfg.UI,
		window:      cfg.Window,
		input:       cfg.Input,
		hooks:       cfg.Hooks,
		envVars:     cfg.EnvVars,
		expander:    cfg.Expander,
		interrupter: cfg.Interrupter,
	}
	if c.hooks == nil {
		c.hooks = hooks.NewRunner()
	}
	if c.interrupter == nil {
		c.interrupter = ProcessGroupInterrupter{}
	}
	width, height := c.ui.Dimensions()
	c.window.SetDimensions(width, height)
	c.window.Options().RegisterWatcher(uiOptionsOption, c)
	c.ui.SetUIOptions(c.window.Options().Get(uiOptionsOption))
	c.ui.SetInputCallback(c.HandleAvailableInput)
	return c
}

// Name returns the session name.
func (c *Client) Name() string { return c.name }

// Window returns the session's window.
func (c *Client) Window() window.Window { return c.window }

// Buffer returns the buffer currently displayed.
func (c *Client) Buffer() buffer.Buffer { return c.window.Buffer() }

// LastBuffer returns the previously displayed buffer, if any.
func (c *Client) LastBuffer() buffer.Buffer { return c.lastBuffer }

// Hooks returns the session's hook registry.
func (c *Client) Hooks() *hooks.Runner { return c.hooks }

// Close unregisters the option watch; called by the registry on removal.
func (c *Client) Close() {
	c.window.Options().UnregisterWatcher(uiOptionsOption, c)
}

// GetEnvVar returns the value recorded at session construction, or an empty
// view when absent. It never fails.
func (c *Client) GetEnvVar(name string) text.View {
	value, ok := c.envVars[name]
	if !ok {
		return text.View{}
	}
	return text.ViewOf(value)
}

// OnOptionChanged propagates ui_options changes to the display backend.
func (c *Client) OnOptionChanged(name, value string) {
	if name == uiOptionsOption {
		c.ui.SetUIOptions(value)
	}
}

// PrintStatus records the status line to draw on the next reconciliation.
func (c *Client) PrintStatus(line display.Line) {
	c.pendingStatusLine = line
}

// ChangeBuffer swaps the session onto a window displaying the given buffer.
// The old window returns to the registry's free pool.
func (c *Client) ChangeBuffer(buf buffer.Buffer) {
	if c.reloadDialog != reloadIdle {
		c.closeBufferReloadDialog()
	}
	c.lastBuffer = c.window.Buffer()

	c.window.Options().UnregisterWatcher(uiOptionsOption, c)
	old := c.window
	c.window = c.registry.takeFreeWindow(buf)
	c.registry.addFreeWindow(old)

	c.window.Options().RegisterWatcher(uiOptionsOption, c)
	c.ui.SetUIOptions(c.window.Options().Get(uiOptionsOption))
	width, height := c.ui.Dimensions()
	c.window.SetDimensions(width, height)

	c.window.Hooks().Run("WinDisplay", buf.Name())
	events.Client.BufferChange(c.name, buf.Name())
}

func statusAtom(content string, faceName string) display.Line {
	return display.Line{Atoms: []display.Atom{display.NewAtom(content, faces.Get(faceName))}}
}

func statusf(faceName, format string, args ...interface{}) display.Line {
	return statusAtom(fmt.Sprintf(format, args...), faceName)
}
