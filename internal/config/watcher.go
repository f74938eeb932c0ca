package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"keycalc/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay is how long the watcher waits for writes to settle.
const DefaultReloadDelay = 250 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// The parent directory is watched so editors that save by rename are seen.
// A burst of events within the reload delay causes a single reload.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	delay    time.Duration
	pending  *time.Timer // guarded by mu
	onChange func(*Config)
	onError  func(error)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for path. onChange receives every config
// that loads and validates; onError receives load and watch failures.
// Either callback may be nil.
func NewWatcher(path string, delay time.Duration, onChange func(*Config), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		delay:    delay,
		onChange: onChange,
		onError:  onError,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Config("watching %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, drops any pending reload and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	w.cancelReload()

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryConfig).Error("error closing watcher: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	logging.Get(logging.CategoryConfig).Debug("%s event for %s", event.Op, event.Name)
	w.scheduleReload()
}

// scheduleReload (re)starts the reload timer, so only the last event of a
// burst triggers a load.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) cancelReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.report(fmt.Errorf("reload %s: %w", w.path, err))
		return
	}
	logging.Config("reloaded %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) report(err error) {
	logging.Get(logging.CategoryConfig).Warn("%v", err)
	if w.onError != nil {
		w.onError(err)
	}
}
