package client

import (
	"sync"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/window"
)

// WindowFactory builds a fresh window over a buffer when the free pool has
// none to reuse.
type WindowFactory func(buf buffer.Buffer) window.Window

// Registry tracks the live sessions and a pool of free windows. Sessions
// are driven by independent event sources, so cross-session effects (like
// buffer-wide dialog resolution) go through explicit visits here.
type Registry struct {
	mu          sync.Mutex
	clients     []*Client
	freeWindows []window.Window
	factory     WindowFactory
	onRemove    func(c *Client, graceful bool)
}

// NewRegistry builds a registry using factory for new windows.
func NewRegistry(factory WindowFactory) *Registry {
	return &Registry{factory: factory}
}

// SetRemoveHandler installs a callback fired after a session is removed.
func (r *Registry) SetRemoveHandler(fn func(c *Client, graceful bool)) {
	r.onRemove = fn
}

// Add registers a session.
func (r *Registry) Add(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.registry = r
	r.clients = append(r.clients, c)
}

// Remove tears a session down: it leaves the registry, releases its option
// watch, and the removal handler runs with the graceful flag.
func (r *Registry) Remove(c *Client, graceful bool) {
	if r == nil {
		c.Close()
		return
	}
	r.mu.Lock()
	kept := r.clients[:0]
	for _, existing := range r.clients {
		if existing != c {
			kept = append(kept, existing)
		}
	}
	r.clients = kept
	r.mu.Unlock()

	c.Close()
	if r.onRemove != nil {
		r.onRemove(c, graceful)
	}
}

// Clients returns a snapshot of the live sessions.
func (r *Registry) Clients() []*Client {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Client(nil), r.clients...)
}

// Count reports the number of live sessions.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *Registry) forEach(visit func(c *Client)) {
	for _, c := range r.Clients() {
		visit(c)
	}
}

// takeFreeWindow reuses a pooled window already showing the buffer, or
// builds a new one.
func (r *Registry) takeFreeWindow(buf buffer.Buffer) window.Window {
	if r != nil {
		r.mu.Lock()
		for i, w := range r.freeWindows {
			if w.Buffer() == buf {
				r.freeWindows = append(r.freeWindows[:i], r.freeWindows[i+1:]...)
				r.mu.Unlock()
				return w
			}
		}
		r.mu.Unlock()
		if r.factory != nil {
			return r.factory(buf)
		}
	}
	return window.NewScroll(buf, nil)
}

// addFreeWindow returns a window to the pool.
func (r *Registry) addFreeWindow(w window.Window) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freeWindows = append(r.freeWindows, w)
}
