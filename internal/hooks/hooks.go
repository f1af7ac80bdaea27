// Package hooks runs named user-configured events. Invocation is
// fire-and-forget from the caller's perspective: a hook body that fails only
// reaches the diagnostic log, never the caller.
package hooks

import (
	"github.com/wehlutyk/kakoune/internal/logging"
	"github.com/wehlutyk/kakoune/internal/logging/events"
)

// Func is one hook body. The payload is a descriptive string whose meaning
// depends on the hook name.
type Func func(payload string)

// Runner dispatches named hooks to registered bodies.
type Runner struct {
	hooks    map[string][]Func
	disabled bool
}

// NewRunner builds an empty hook registry.
func NewRunner() *Runner {
	return &Runner{hooks: make(map[string][]Func)}
}

// Add registers a body for the named hook.
func (r *Runner) Add(name string, fn Func) {
	r.hooks[name] = append(r.hooks[name], fn)
}

// SetDisabled suppresses user hook execution while set.
func (r *Runner) SetDisabled(disabled bool) {
	r.disabled = disabled
}

// Disabled reports whether user hook execution is suppressed.
func (r *Runner) Disabled() bool {
	return r.disabled
}

// Run fires every body registered for the name. A panicking body is
// contained and logged; remaining bodies still run.
func (r *Runner) Run(name, payload string) {
	events.Hook.Run(name, payload)
	if r.disabled {
		return
	}
	for _, fn := range r.hooks[name] {
		r.runOne(name, fn, payload)
	}
}

func (r *Runner) runOne(name string, fn Func, payload string) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Errorf("hook %s panicked: %v", name, rec)
		}
	}()
	fn(payload)
}
