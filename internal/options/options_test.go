package options

import "testing"

type recordingWatcher struct {
	changes []string
}

func (w *recordingWatcher) OnOptionChanged(name, value string) {
	w.changes = append(w.changes, name+"="+value)
}

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	s := NewStore(map[string]string{"tabstop": "8"})
	w := &recordingWatcher{}
	s.RegisterWatcher("tabstop", w)

	s.Set("tabstop", "8")
	if len(w.changes) != 0 {
		t.Fatalf("unchanged value notified: %v", w.changes)
	}

	s.Set("tabstop", "4")
	if len(w.changes) != 1 || w.changes[0] != "tabstop=4" {
		t.Fatalf("changes = %v", w.changes)
	}
}

func TestWatcherScopedToName(t *testing.T) {
	s := NewStore(nil)
	w := &recordingWatcher{}
	s.RegisterWatcher("ui_options", w)

	s.Set("autoreload", "no")
	if len(w.changes) != 0 {
		t.Fatalf("watcher notified for another option: %v", w.changes)
	}
}

func TestUnregisterIsDeterministic(t *testing.T) {
	s := NewStore(nil)
	w := &recordingWatcher{}
	s.RegisterWatcher("ui_options", w)
	if s.WatcherCount("ui_options") != 1 {
		t.Fatal("registration not recorded")
	}

	s.UnregisterWatcher("ui_options", w)
	if s.WatcherCount("ui_options") != 0 {
		t.Fatal("unregistration not recorded")
	}
	s.Set("ui_options", "x")
	if len(w.changes) != 0 {
		t.Fatalf("unregistered watcher notified: %v", w.changes)
	}

	// Never-registered watchers unregister as a no-op.
	s.UnregisterWatcher("ui_options", &recordingWatcher{})
}
