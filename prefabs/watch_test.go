package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForEvent(t *testing.T, w *Watcher) ReloadEvent {
	t.Helper()
	select {
	case ev, ok := <-w.Events:
		if !ok {
			t.Fatalf("expected an event, channel closed")
		}
		return ev
	case <-time.After(3 * time.Second):
		t.Fatalf("expected an event, timed out")
	}
	return ReloadEvent{}
}

func TestWatcherReportsEdits(t *testing.T) {
	cases := []struct {
		name     string
		file     string
		wantKind ReloadKind
	}{
		{"spec_yaml", "enemy.yaml", ReloadSpec},
		{"spec_yml", "enemy.yml", ReloadSpec},
		{"script", "weave.tengo", ReloadScript},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			w, err := NewWatcher(dir)
			if err != nil {
				t.Fatalf("watcher failed: %v", err)
			}
			defer w.Close()

			path := filepath.Join(dir, c.file)
			if err := os.WriteFile(path, []byte("name: enemy"), 0o644); err != nil {
				t.Fatalf("write failed: %v", err)
			}

			ev := waitForEvent(t, w)
			if ev.Path != path {
				t.Fatalf("expected path %s, got %s", path, ev.Path)
			}
			if ev.Kind != c.wantKind {
				t.Fatalf("expected kind %d, got %d", c.wantKind, ev.Kind)
			}
		})
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	// the yaml write lands after the txt write; if the txt leaked through it
	// would arrive first
	specPath := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(specPath, []byte("name: player"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ev := waitForEvent(t, w)
	if ev.Path != specPath {
		t.Fatalf("expected only the spec event, got %s", ev.Path)
	}
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherDebounced(500*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "enemy.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("name: enemy"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	ev := waitForEvent(t, w)
	if ev.Path != path {
		t.Fatalf("expected %s, got %s", path, ev.Path)
	}

	select {
	case extra, ok := <-w.Events:
		if ok {
			t.Fatalf("expected rapid writes collapsed into one event, got extra %v", extra)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	t.Run("twice_is_safe", func(t *testing.T) {
		w, err := NewWatcher(t.TempDir())
		if err != nil {
			t.Fatalf("watcher failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("first close failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("second close failed: %v", err)
		}
	})

	t.Run("events_channel_drains_closed", func(t *testing.T) {
		w, err := NewWatcher(t.TempDir())
		if err != nil {
			t.Fatalf("watcher failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		select {
		case _, ok := <-w.Events:
			if ok {
				t.Fatalf("expected no events after close")
			}
		case <-time.After(3 * time.Second):
			t.Fatalf("expected Events to close after Close")
		}
	})

	t.Run("close_races_pending_send", func(t *testing.T) {
		// fill the event buffer, then close while the watcher may still be
		// forwarding; a send on a closed channel would panic the goroutine
		dir := t.TempDir()
		w, err := NewWatcherDebounced(0, dir)
		if err != nil {
			t.Fatalf("watcher failed: %v", err)
		}
		for i := 0; i < 64; i++ {
			name := filepath.Join(dir, "spec"+string(rune('a'+i%26))+".yaml")
			if err := os.WriteFile(name, []byte("name: x"), 0o644); err != nil {
				t.Fatalf("write failed: %v", err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		for range w.Events {
		}
	})
}
