package client

import (
	"fmt"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/faces"
	"github.com/wehlutyk/kakoune/internal/logging"
)

const modelineFmtOption = "modelinefmt"

// generateModeLine composes the mode line: the expanded user format, the
// conditional flag indicators in fixed order, the dispatcher's own atoms,
// and the trailing session identifier. Expansion failures degrade to a
// fixed error atom; composition never fails.
func (c *Client) generateModeLine() display.Line {
	var modeline display.Line

	format := c.window.Options().Get(modelineFmtOption)
	expanded, err := c.expand(format)
	if err != nil {
		logging.Errorf("error while expanding modelinefmt: %v", err)
		modeline.Push(display.NewAtom("modelinefmt error, see log file", faces.Get("Error")))
	} else if expanded != "" {
		modeline.Push(display.NewAtom(expanded, faces.Get("StatusLine")))
	}

	infoFace := faces.Get("Information")
	buf := c.window.Buffer()
	if buf.IsModified() {
		modeline.Push(display.NewAtom("[+]", infoFace))
	}
	if c.input.IsRecording() {
		modeline.Push(display.NewAtom(fmt.Sprintf("[recording (%c)]", c.input.RecordingRegister()), infoFace))
	}
	if buf.Flags()&buffer.FlagNew != 0 {
		modeline.Push(display.NewAtom("[new file]", infoFace))
	}
	if c.hooks.Disabled() {
		modeline.Push(display.NewAtom("[no-hooks]", infoFace))
	}
	if buf.Flags()&buffer.FlagFifo != 0 {
		modeline.Push(display.NewAtom("[fifo]", infoFace))
	}
	modeline.Push(display.NewAtom(" ", faces.Get("StatusLine")))
	for _, atom := range c.input.ModeLine() {
		modeline.Push(atom)
	}
	modeline.Push(display.NewAtom(fmt.Sprintf(" - %s@[%s]", c.name, c.session), faces.Get("StatusLine")))

	return modeline
}

func (c *Client) expand(format string) (string, error) {
	if c.expander == nil {
		return format, nil
	}
	return c.expander.Expand(format)
}
