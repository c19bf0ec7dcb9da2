// Package watcher ingests text files as they appear or change in a directory.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// DefaultQuiet is how long a path must stay untouched after its last event
// before it is emitted as a change.
const DefaultQuiet = 500 * time.Millisecond

// ErrNotDirectory indicates the watch target is not a directory.
var ErrNotDirectory = errors.New("watcher: not a directory")

// ChangeType classifies a file change.
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
)

// Change is one file ready to ingest.
type Change struct {
	Path string
	Type ChangeType
}

// HandlerFunc processes one change. Errors are logged and watching continues.
type HandlerFunc func(ctx context.Context, change Change) error

// Watcher watches a single directory (non-recursively) for file writes.
type Watcher struct {
	dir     string
	limiter *rate.Limiter
	quiet   time.Duration

	mu      sync.Mutex
	pending map[string]*pendingChange
	fsw     *fsnotify.Watcher
}

// pendingChange is a path waiting out its quiet period.
type pendingChange struct {
	change Change
	timer  *time.Timer
}

// New creates a watcher for dir that handles at most perSecond changes per
// second. A non-positive rate disables throttling.
func New(dir string, perSecond float64) *Watcher {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Watcher{
		dir:     dir,
		limiter: rate.NewLimiter(limit, 1),
		quiet:   DefaultQuiet,
		pending: make(map[string]*pendingChange),
	}
}

// Watch starts watching and returns a channel of changes. The channel is
// closed when ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	changes := make(chan Change)
	settled := make(chan Change)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(changes)
		defer fsw.Close()
		defer w.stopPending()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if change := w.handleEvent(event); change != nil {
					w.schedule(*change, settled, done)
				}
			case change := <-settled:
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher: %v", err)
			}
		}
	}()

	return changes, nil
}

// Run watches the directory and calls handle for each change, throttled by
// the rate limiter. It returns when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, handle HandlerFunc) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	for change := range changes {
		if err := w.limiter.Wait(ctx); err != nil {
			return nil //nolint:nilerr // cancellation ends the run cleanly
		}
		logger.Debug("Watch: %s %s", change.Type, change.Path)
		if err := handle(ctx, change); err != nil {
			logger.Warn("watch: %s: %v", change.Path, err)
		}
	}
	return nil
}

// Close stops the underlying watcher if Watch was called.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// handleEvent maps an fsnotify event to a change, or nil when the event is
// not ingestible (removal, chmod, directories, hidden paths).
func (w *Watcher) handleEvent(event fsnotify.Event) *Change {
	if isHidden(w.relative(event.Name)) {
		return nil
	}

	var changeType ChangeType
	switch {
	case event.Op.Has(fsnotify.Create):
		changeType = ChangeCreated
	case event.Op.Has(fsnotify.Write):
		changeType = ChangeUpdated
	default:
		return nil
	}

	if !isRegular(event.Name) {
		return nil
	}

	return &Change{Path: event.Name, Type: changeType}
}

// schedule emits change on settled once its path has seen no event for the
// quiet period. Each new event for a pending path restarts the wait; the
// first event's type is kept, so a create followed by writes stays a create.
func (w *Watcher) schedule(change Change, settled chan<- Change, done <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pending[change.Path]; ok {
		if p.timer.Stop() {
			p.timer.Reset(w.quiet)
			return
		}
		// Fired but not yet delivered; the replacement below supersedes it.
		change.Type = p.change.Type
	}

	p := &pendingChange{change: change}
	p.timer = time.AfterFunc(w.quiet, func() {
		w.mu.Lock()
		current := w.pending[change.Path] == p
		if current {
			delete(w.pending, change.Path)
		}
		w.mu.Unlock()
		if !current || !isRegular(change.Path) {
			return
		}
		select {
		case settled <- p.change:
		case <-done:
		}
	})
	w.pending[change.Path] = p
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
}

// relative returns path relative to the watched directory, so the
// directory's own location never counts as hidden.
func (w *Watcher) relative(path string) string {
	rel, err := filepath.Rel(w.dir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
