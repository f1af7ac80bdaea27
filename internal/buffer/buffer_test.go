package buffer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFileBufferLoadsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := NewFileBuffer(path)
	if err != nil {
		t.Fatalf("NewFileBuffer: %v", err)
	}
	if buf.Flags()&FlagFile == 0 || buf.Flags()&FlagNew != 0 {
		t.Fatalf("flags = %b", buf.Flags())
	}
	if buf.LineCount() != 2 {
		t.Fatalf("line count = %d", buf.LineCount())
	}
	if got := buf.Line(1).GoString(); got != "beta" {
		t.Fatalf("line 1 = %q", got)
	}
	if buf.FsTimestamp().IsZero() {
		t.Fatal("timestamp not recorded")
	}
	if buf.DisplayName() != "doc.txt" {
		t.Fatalf("display name = %q", buf.DisplayName())
	}
}

func TestNewFileBufferMissingFileIsNew(t *testing.T) {
	buf, err := NewFileBuffer(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("NewFileBuffer: %v", err)
	}
	if buf.Flags()&FlagNew == 0 {
		t.Fatal("missing file did not set the new flag")
	}
	if buf.LineCount() != 1 || !buf.Line(0).Empty() {
		t.Fatal("missing file buffer is not a single empty line")
	}
	if !buf.FsTimestamp().IsZero() {
		t.Fatal("missing file has a timestamp")
	}
}

func TestReloadReplacesContentAndClearsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	buf, err := NewFileBuffer(path)
	if err != nil {
		t.Fatal(err)
	}
	buf.SetLine(0, "edited")
	changes := buf.ChangeCount()

	if err := os.WriteFile(path, []byte("fresh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := buf.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if got := buf.Line(0).GoString(); got != "fresh" {
		t.Fatalf("line 0 = %q after reload", got)
	}
	if buf.IsModified() {
		t.Fatal("reload left the buffer modified")
	}
	if buf.ChangeCount() <= changes {
		t.Fatal("reload did not bump the change count")
	}
}

func TestFsTimestampSentinel(t *testing.T) {
	if !FsTimestamp("/does/not/exist").IsZero() {
		t.Fatal("missing path should yield the zero time")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("watch error: %v", evt.Err)
		}
		abs, _ := filepath.Abs(path)
		if evt.Path != abs {
			t.Fatalf("event path = %q, want %q", evt.Path, abs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a written file")
	}
}

func TestWatcherIgnoresUnwatchedSiblings(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.txt")
	sibling := filepath.Join(dir, "sibling.txt")
	for _, p := range []string{watched, sibling} {
		if err := os.WriteFile(p, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := NewWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()
	if err := w.Watch(watched); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(sibling, []byte("y\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event for %q", evt.Path)
	case <-time.After(300 * time.Millisecond):
	}
}
