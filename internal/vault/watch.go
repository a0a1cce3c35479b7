package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"daytrace/internal/logs"
)

// Op is the kind of change a watch event reports
type Op int

const (
	OpCreate Op = iota
	OpModify
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return ""
	}
}

// Event is a debounced change to a note. Removing or renaming a watched
// folder is reported as OpDelete of the folder path.
type Event struct {
	Op   Op
	File File
}

const debounceDelay = 50 * time.Millisecond

// Watch starts watching the vault and delivers note events on the returned
// channel until ctx is cancelled, at which point the channel is closed.
// Bursts of events for one path collapse into the last one.
func (v *Vault) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &vaultWatcher{
		vault:   v,
		watcher: watcher,
		dirs:    make(map[string]bool),
		timers:  make(map[string]*time.Timer),
		pending: make(chan Event),
		out:     make(chan Event, 16),
	}

	if err := w.addDirs(v.Root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go w.run(ctx)
	return w.out, nil
}

type vaultWatcher struct {
	vault   *Vault
	watcher *fsnotify.Watcher
	dirs    map[string]bool // only touched by run
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending chan Event
	out     chan Event
}

// addDirs recursively adds directories to the watcher, skipping hidden dirs.
func (w *vaultWatcher) addDirs(root string) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && shouldSkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		w.dirs[p] = true
		return nil
	})
}

func (w *vaultWatcher) run(ctx context.Context) {
	defer close(w.out)
	defer w.watcher.Close()
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logs.Logger.Printf("fsnotify error: %v", err)

		case ev := <-w.pending:
			select {
			case w.out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// handle maps one fsnotify event onto note events.
func (w *vaultWatcher) handle(ctx context.Context, event fsnotify.Event) {
	file, ok := w.vault.fileFor(event.Name)
	if !ok {
		return
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if w.dirs[event.Name] {
			delete(w.dirs, event.Name)
			w.schedule(ctx, Event{Op: OpDelete, File: file})
			return
		}
		if w.isNote(file) {
			w.schedule(ctx, Event{Op: OpDelete, File: file})
		}

	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if shouldSkipDir(info.Name()) {
				return
			}
			if err := w.addDirs(event.Name); err != nil {
				logs.Logger.Printf("Warning: %v", err)
			}
			w.announceNotes(ctx, event.Name)
			return
		}
		if w.isNote(file) {
			w.schedule(ctx, Event{Op: OpCreate, File: file})
		}

	case event.Has(fsnotify.Write):
		if w.isNote(file) {
			w.schedule(ctx, Event{Op: OpModify, File: file})
		}
	}
}

// announceNotes reports notes inside a folder that appeared after the
// watch started, such as a folder moved into the vault.
func (w *vaultWatcher) announceNotes(ctx context.Context, dir string) {
	var found []File
	if err := w.vault.walk(dir, &found); err != nil {
		logs.Logger.Printf("Warning: could not scan new folder %s: %v", dir, err)
		return
	}
	for _, f := range found {
		w.schedule(ctx, Event{Op: OpCreate, File: f})
	}
}

func (w *vaultWatcher) isNote(f File) bool {
	return isNoteFile(f.Name()) && !w.vault.excluded(f.Path)
}

// schedule debounces ev per path; the last event in a burst wins.
func (w *vaultWatcher) schedule(ctx context.Context, ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := ev.File.Path
	if prev, ok := w.timers[key]; ok {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		if w.timers[key] != t {
			w.mu.Unlock()
			return
		}
		delete(w.timers, key)
		w.mu.Unlock()

		select {
		case w.pending <- ev:
		case <-ctx.Done():
		}
	})
	w.timers[key] = t
}

func (w *vaultWatcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, t := range w.timers {
		t.Stop()
		delete(w.timers, key)
	}
}
