package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"workbench/internal/logging"
)

const defaultDebounce = 200 * time.Millisecond

// Skipped directory names: VCS metadata and common build output
var ignoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	".cache":       true,
}

// Watcher implements ports.FolderWatcher with one fsnotify watcher per key
type Watcher struct {
	debounce time.Duration
	events   chan string
	mu       sync.Mutex
	stopped  bool
	timers   map[string]*time.Timer
	watchers map[string]*fsnotify.Watcher
}

// New creates a Watcher that reports a key once no event arrived for debounce
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		events:   make(chan string, 16),
		timers:   make(map[string]*time.Timer),
		watchers: make(map[string]*fsnotify.Watcher),
	}
}

// Events delivers the key of each tree that changed
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Watch adds root and its subfolders under key, replacing an earlier watch of key
func (w *Watcher) Watch(key, root string) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		_ = fw.Close()
		return nil
	}
	old := w.watchers[key]
	w.watchers[key] = fw
	w.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	addRecursive(fw, root)
	go w.observe(key, root, fw)

	logging.Logger.Debug("Watching folder tree", "key", key, "root", root)
	return nil
}

// Unwatch stops watching key
func (w *Watcher) Unwatch(key string) {
	w.mu.Lock()
	if t, ok := w.timers[key]; ok {
		t.Stop()
		delete(w.timers, key)
	}
	fw, ok := w.watchers[key]
	delete(w.watchers, key)
	w.mu.Unlock()

	if ok {
		_ = fw.Close()
	}
}

// Stop closes every watcher and the events channel
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	for _, t := range w.timers {
		t.Stop()
	}
	watchers := w.watchers
	w.timers = map[string]*time.Timer{}
	w.watchers = map[string]*fsnotify.Watcher{}
	close(w.events)
	w.mu.Unlock()

	for _, fw := range watchers {
		_ = fw.Close()
	}
}

func addRecursive(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && ignoredDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			logging.Logger.Debug("Failed to watch folder", "path", path, "error", err)
		}
		return nil
	})
}

func (w *Watcher) observe(key, root string, fw *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if isIgnored(root, ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					addRecursive(fw, ev.Name)
				}
			}
			w.schedule(key)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Watcher error", "key", key, "error", err)
		}
	}
}

// isIgnored reports paths inside or naming an ignored directory below root.
// Ancestors of root are not checked.
func isIgnored(root, path string) bool {
	if path == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if ignoredDirs[part] {
			return true
		}
	}
	return false
}

func (w *Watcher) schedule(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if t, ok := w.timers[key]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		if cur, ok := w.timers[key]; !ok || cur != t {
			return
		}
		delete(w.timers, key)
		if w.stopped {
			return
		}
		select {
		case w.events <- key:
		default:
			// A notification is already pending
		}
	})
	w.timers[key] = t
}
