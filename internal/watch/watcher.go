package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one file for changes and invokes a callback after a
// debounce window. Playout tools tend to rewrite the now-playing file in
// several quick writes; the debounce collapses them into one refresh.
type Watcher struct {
	path     string
	debounce time.Duration
	poll     time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for path. debounce is the quiet period
// before a change is reported; poll is the fallback scan interval used
// when the platform watcher cannot be set up (network shares, some
// mounts).
func NewWatcher(path string, debounce, poll time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if poll <= 0 {
		poll = 2 * time.Second
	}
	return &Watcher{path: path, debounce: debounce, poll: poll}
}

// Run blocks until ctx is cancelled, calling notify after each debounced
// change of the watched file.
func (w *Watcher) Run(ctx context.Context, notify func()) error {
	defer w.stopTimer()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return w.runPoll(ctx, notify)
	}
	defer fw.Close()

	// Watch the parent directory: editors and playout tools often
	// replace the file via rename, which drops a watch on the file
	// itself.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return w.runPoll(ctx, notify)
	}

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return w.runPoll(ctx, notify)
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.schedule(notify)
		case _, ok := <-fw.Errors:
			if !ok {
				return w.runPoll(ctx, notify)
			}
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule(notify func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, notify)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// runPoll is the fallback change detector: compare modification time and
// size on an interval.
func (w *Watcher) runPoll(ctx context.Context, notify func()) error {
	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(w.path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			w.schedule(notify)
		}
	}
}
