package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadKind says which side of a prefab changed: the yaml spec or the
// movement script it references.
type ReloadKind int

const (
	ReloadSpec ReloadKind = iota
	ReloadScript
)

// ReloadEvent is one observed prefab edit.
type ReloadEvent struct {
	Path string
	Kind ReloadKind
}

const defaultDebounce = 100 * time.Millisecond

// Watcher reports prefab spec and script edits so a running game can rebuild
// entities without restarting. Events and Errors are closed by the watcher
// goroutine once Close has been called.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	Events   chan ReloadEvent
	Errors   chan error
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches the given directories for prefab changes with the
// default debounce window.
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherDebounced(defaultDebounce, dirs...)
}

// NewWatcherDebounced is NewWatcher with an explicit debounce window.
func NewWatcherDebounced(debounce time.Duration, dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}
	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		Events:   make(chan ReloadEvent, 16),
		Errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once; Events and Errors
// are closed by the watcher goroutine afterwards.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// run forwards classified, debounced edits. It owns the Events and Errors
// channels: every send is guarded against done, and both channels close only
// when this goroutine returns, so Close can never race a send.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// editors fire several events per save; drop repeats inside the window
	lastSent := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind, ok := classifyReload(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := lastSent[event.Name]; seen && now.Sub(t) < w.debounce {
				continue
			}
			lastSent[event.Name] = now
			select {
			case w.Events <- ReloadEvent{Path: event.Name, Kind: kind}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			default:
				// an unread earlier error is as good as this one
			}
		case <-w.done:
			return
		}
	}
}

// classifyReload maps a changed path to the prefab artifact it belongs to.
// Anything that is neither a spec nor a script is ignored.
func classifyReload(path string) (ReloadKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReloadSpec, true
	case ".tengo":
		return ReloadScript, true
	}
	return 0, false
}
