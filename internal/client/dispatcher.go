package client

import (
	"github.com/wehlutyk/kakoune/internal/display"
	"github.com/wehlutyk/kakoune/internal/keys"
)

// InputHandler is the edit-mode dispatcher collaborator. It owns the modal
// editing state, macro recording, and pending one-shot key continuations.
type InputHandler interface {
	// HandleKey routes one key through the active mode or a pending
	// continuation. A *RuntimeError return is recoverable; a *RemovedError
	// return tears the session down.
	HandleKey(key keys.Key) error
	// OnNextKey installs a one-shot continuation intercepting the next key
	// system-wide. Installing a new continuation discards a pending one.
	OnNextKey(fn func(key keys.Key) error)
	// ResetNormalMode drops any modal state and pending continuation.
	ResetNormalMode()
	IsRecording() bool
	RecordingRegister() rune
	// ModeLine returns the dispatcher's mode-specific trailing atoms.
	ModeLine() []display.Atom
}

// Expander is the slice of the command engine used to evaluate the
// mode-line format string in the session's context.
type Expander interface {
	Expand(format string) (string, error)
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(format string) (string, error)

// Expand implements Expander.
func (f ExpanderFunc) Expand(format string) (string, error) { return f(format) }
