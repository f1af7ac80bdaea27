// Package options stores named option values and notifies subscribed
// watchers on change. Subscriptions are tracked in an explicit registry with
// handle-based unregistration, so teardown is deterministic and no dangling
// subscriber can be invoked.
package options

// Watcher receives change notifications for options it subscribed to.
type Watcher interface {
	OnOptionChanged(name, value string)
}

// Store holds option values and the subscription registry.
type Store struct {
	values   map[string]string
	watchers map[string][]Watcher
}

// NewStore builds a store preloaded with the given values.
func NewStore(values map[string]string) *Store {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Store{
		values:   copied,
		watchers: make(map[string][]Watcher),
	}
}

// Get returns the option value, or the empty string when unset.
func (s *Store) Get(name string) string {
	return s.values[name]
}

// Set stores a value and notifies every watcher subscribed to the name.
func (s *Store) Set(name, value string) {
	if s.values[name] == value {
		return
	}
	s.values[name] = value
	for _, w := range s.watchers[name] {
		w.OnOptionChanged(name, value)
	}
}

// RegisterWatcher subscribes the watcher to changes of the named option.
func (s *Store) RegisterWatcher(name string, w Watcher) {
	s.watchers[name] = append(s.watchers[name], w)
}

// UnregisterWatcher removes every subscription of the watcher for the name.
// Unregistering a watcher that was never registered is a no-op.
func (s *Store) UnregisterWatcher(name string, w Watcher) {
	subs := s.watchers[name]
	kept := subs[:0]
	for _, sub := range subs {
		if sub != w {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(s.watchers, name)
		return
	}
	s.watchers[name] = kept
}

// WatcherCount reports the number of subscriptions for a name.
func (s *Store) WatcherCount(name string) int {
	return len(s.watchers[name])
}
