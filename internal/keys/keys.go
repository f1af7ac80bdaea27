// Package keys defines the key event model shared by the display backend and
// the client session. A key carries a modifier set and either a literal
// codepoint or a named symbolic value.
package keys

import (
	"fmt"

	"github.com/wehlutyk/kakoune/internal/text"
)

// Modifiers is a bit set of key modifiers. Resize is a pseudo-modifier: a key
// carrying it signals that the display surface changed size and must trigger
// a redraw without being dispatched.
type Modifiers uint8

const (
	ModNone    Modifiers = 0
	ModControl Modifiers = 1 << iota
	ModAlt
	ModResize
)

// Named symbolic values live in the Unicode private use area so they never
// collide with literal codepoints.
const (
	Escape text.Codepoint = 0xE000 + iota
	Return
	Backspace
	Delete
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
	FocusIn
	FocusOut
	Invalid
)

// Key is one input event from the display backend.
type Key struct {
	Mod  Modifiers
	Code text.Codepoint
}

// Ctrl returns the control-combination for a literal codepoint.
func Ctrl(cp text.Codepoint) Key {
	return Key{Mod: ModControl, Code: cp}
}

// Plain returns an unmodified literal key.
func Plain(cp text.Codepoint) Key {
	return Key{Code: cp}
}

// Resize returns the resize pseudo-key for the given dimensions encoded by
// the backend. Only the modifier is meaningful to the session.
func Resize() Key {
	return Key{Mod: ModResize}
}

var names = map[text.Codepoint]string{
	Escape:    "esc",
	Return:    "ret",
	Backspace: "backspace",
	Delete:    "del",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	PageUp:    "pageup",
	PageDown:  "pagedown",
	Home:      "home",
	End:       "end",
	FocusIn:   "focus_in",
	FocusOut:  "focus_out",
	Invalid:   "invalid",
}

// String renders the key for status messages, using angle-bracket notation
// for named and modified keys.
func (k Key) String() string {
	if name, ok := names[k.Code]; ok {
		return "<" + name + ">"
	}
	switch {
	case k.Mod&ModControl != 0 && k.Mod&ModAlt != 0:
		return fmt.Sprintf("<c-a-%c>", rune(k.Code))
	case k.Mod&ModControl != 0:
		return fmt.Sprintf("<c-%c>", rune(k.Code))
	case k.Mod&ModAlt != 0:
		return fmt.Sprintf("<a-%c>", rune(k.Code))
	default:
		return string(rune(k.Code))
	}
}
