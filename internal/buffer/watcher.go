package buffer

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that a watched file changed on disk, or that watching it
// failed.
type Event struct {
	Path string
	Err  error
}

// Watcher reports external modifications of buffer files. Events are
// throttled so editors saving via rename/write bursts produce one
// notification.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	watched map[string]struct{}
}

// NewWatcher starts a file watcher with the given throttle interval.
func NewWatcher(interval time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	w := &Watcher{
		fs:      fs,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
		watched: make(map[string]struct{}),
	}
	w.wg.Add(1)
	go w.loop(newThrottle(interval))
	return w, nil
}

// Watch adds a file. The containing directory is watched so saves done via
// rename are still observed.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	w.mu.Lock()
	w.watched[abs] = struct{}{}
	w.mu.Unlock()
	if err := w.fs.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", abs, err)
	}
	return nil
}

// Unwatch stops reporting changes for a file.
func (w *Watcher) Unwatch(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	delete(w.watched, abs)
	w.mu.Unlock()
}

// Events returns the channel of change notifications.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop shuts the watcher down. The events channel is closed once the loop
// drains; use Wait for a clean shutdown in tests.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	w.fs.Close()
}

// Wait blocks until the watch loop has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop(th *throttle) {
	defer w.wg.Done()
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			abs, err := filepath.Abs(evt.Name)
			if err != nil {
				continue
			}
			w.mu.Lock()
			_, interested := w.watched[abs]
			w.mu.Unlock()
			if !interested {
				continue
			}
			th.wait()
			select {
			case <-w.done:
				return
			case w.events <- Event{Path: abs}:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case <-w.done:
				return
			case w.events <- Event{Err: err}:
			}
		}
	}
}
