// Package watch re-runs a step whenever files under a directory tree change.
// Events are debounced and runs are serialized: at most one run is in flight
// and at most one more is queued behind it.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/codelabcopy/internal/logfields"
)

// DefaultDebounce is the quiet period before a change triggers a run.
const DefaultDebounce = 300 * time.Millisecond

// Step is the work re-run after a change.
type Step func(ctx context.Context) error

// Watcher watches Root recursively and calls Step after changes settle.
type Watcher struct {
	Root     string
	Step     Step
	Debounce time.Duration
	Logger   *slog.Logger
}

// Run blocks until ctx is canceled. Step errors are logged and do not stop
// the watcher. The root must exist when Run starts.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := addDirsRecursive(watcher, w.Root, logger); err != nil {
		return err
	}
	logger.Info("Watching for codelab changes", logfields.Path(w.Root))

	rebuildReq := make(chan struct{}, 1)
	trigger, stop := newDebouncer(debounce, rebuildReq)
	defer stop()

	workerCtx, cancelWorker := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.runWorker(workerCtx, rebuildReq, logger)
	}()
	defer func() {
		cancelWorker()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher", logfields.Path(w.Root))
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(watcher, ev, trigger, logger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

// runWorker drains rebuild requests one at a time. Because the request
// channel holds a single token, requests arriving mid-run collapse into one
// follow-up run.
func (w *Watcher) runWorker(ctx context.Context, rebuildReq <-chan struct{}, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			logger.Info("Change detected; copying codelabs")
			if err := w.Step(ctx); err != nil {
				logger.Warn("copy after change failed", logfields.Error(err))
			}
		}
	}
}

// newDebouncer returns a trigger that sends on req once no further trigger
// call has happened for d, and a stop func that cancels any pending timer.
func newDebouncer(d time.Duration, req chan<- struct{}) (trigger func(), stop func()) {
	var mu sync.Mutex
	var timer *time.Timer
	stopped := false

	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
	}
	return trigger, stop
}

// handleFileEvent starts watching new directories and triggers a run.
func handleFileEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func(), logger *slog.Logger) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name, logger)
		}
	}
	logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string, logger *slog.Logger) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", root)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				logger.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger runs.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Ignore hidden files
	if strings.HasPrefix(base, ".") {
		return true
	}

	// Ignore editor temp/swap files
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")
}
