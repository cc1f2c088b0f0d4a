// Package watch re-runs an action when any of a set of files changes.
//
// Directories are watched rather than files, since editors often save by
// writing a temporary file and renaming it over the original. Bursts of
// events for one file are debounced into a single run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ajxudir/cascade/pkg/utils"
	"github.com/ajxudir/cascade/pkg/verbose"
	"github.com/ajxudir/cascade/pkg/warnings"
)

// DefaultDebounce is how long a file must be quiet before the action runs.
const DefaultDebounce = 200 * time.Millisecond

// Action is run with the path of the file that changed. An error is
// reported as a warning and watching continues.
type Action func(ctx context.Context, path string) error

// Stats counts watcher activity.
type Stats struct {
	Events int
	Runs   int
	Errors int
}

// Watcher runs an Action on changes to a fixed set of files.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	action   Action
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
	stats   Stats
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New watches the directories holding files.
//
// Parameters:
//   - files: Files to watch; empty entries are ignored
//   - action: Run after a watched file settles
//   - opts: Optional settings
//
// Returns:
//   - *Watcher: The watcher; call Run to start it
//   - error: When no file is given or a directory cannot be watched
func New(files []string, action Action, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]struct{}),
		action:   action,
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		if f == "" {
			continue
		}
		p := utils.NormalizePath(f)
		w.files[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	if len(w.files) == 0 {
		return nil, fmt.Errorf("nothing to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		verbose.Printf("Watching directory: %s", dir)
	}
	w.watcher = fw
	return w, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
//
// Returns:
//   - error: nil after cancellation; an error if the event stream closes
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	ticker := time.NewTicker(w.debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watch event stream closed")
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watch error stream closed")
			}
			warnings.Warnf("watch: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.runSettled(ctx)
		}
	}
}

// Stats returns a copy of the activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	path := utils.NormalizePath(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	verbose.Printf("watch: %s %s", event.Op, path)

	w.mu.Lock()
	w.stats.Events++
	w.pending[path] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) runSettled(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		err := w.action(ctx, path)
		w.mu.Lock()
		w.stats.Runs++
		if err != nil {
			w.stats.Errors++
		}
		w.mu.Unlock()
		if err != nil {
			warnings.Warnf("watch: %s: %v", filepath.Base(path), err)
		}
	}
}
