package campaign

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// UpdateFunc receives every campaign read by a Watcher. It runs on the
// watcher's goroutine.
type UpdateFunc func(Campaign, error)

// Watcher re-reads a campaign file on a fixed interval and shortly after the
// file changes on disk.
type Watcher struct {
	mu       sync.Mutex
	path     string
	interval time.Duration
	debounce time.Duration
	update   UpdateFunc
	logger   *zap.Logger

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher returns a watcher for path. Nothing happens until Start.
func NewWatcher(path string, interval time.Duration, update UpdateFunc, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		interval: interval,
		debounce: 200 * time.Millisecond,
		update:   update,
		logger:   logger,
	}
}

// Start reads the file once, then keeps watching it in a goroutine until
// Stop is called or ctx is done. File change notifications are best-effort:
// when they cannot be set up the watcher only polls.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("campaign watcher: notifications unavailable, polling only", zap.Error(err))
	} else if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		// Editors replace files, so the directory is watched.
		w.logger.Warn("campaign watcher: cannot watch directory, polling only",
			zap.String("dir", filepath.Dir(w.path)), zap.Error(err))
		_ = fsw.Close()
		fsw = nil
	}
	w.watcher = fsw

	w.reload()
	go w.run(ctx)
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if w.watcher != nil {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("campaign watcher: error closing notifications", zap.Error(err))
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	interval := w.interval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	poll := time.NewTicker(interval)
	defer poll.Stop()

	var (
		events  <-chan fsnotify.Event
		errs    <-chan error
		pending *time.Timer
		fire    <-chan time.Time
	)
	if w.watcher != nil {
		events, errs = w.watcher.Events, w.watcher.Errors
	}
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-poll.C:
			w.reload()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("campaign file changed", zap.String("op", event.Op.String()))
			// Coalesce bursts of writes into one read.
			if pending == nil {
				pending = time.NewTimer(w.debounce)
			} else {
				pending.Reset(w.debounce)
			}
			fire = pending.C
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.logger.Warn("campaign watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("campaign reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.logger.Debug("campaign reloaded",
			zap.Int("current_bags", c.CurrentBags), zap.Int("goal", c.Goal))
	}
	if w.update != nil {
		w.update(c, err)
	}
}
