package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"incubator/pkg/logging"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store from a directory whenever one of its JSON files changes.
// A reload that fails to load or validate keeps the previous snapshot.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	store    *Store
	loader   Loader
	dir      string
	debounce time.Duration
	log      *logging.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	// OnReload, when set, is called after every reload attempt.
	OnReload func(version uint64, err error)
}

func NewWatcher(dir string, store *Store, log *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if log == nil {
		log = logging.NewNop()
	}

	return &Watcher{
		watcher:  fw,
		store:    store,
		loader:   DirLoader(dir),
		dir:      dir,
		debounce: defaultDebounce,
		log:      log.Named("catalog"),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the directory is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true

	go w.run(ctx)
	w.log.Info("watching catalog directory", "dir", w.dir)
	return nil
}

// Stop ends the watch loop and waits for it to exit. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.log.Error("close watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

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
			if relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watcher error", "error", err)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	version, err := w.load(ctx)
	if err != nil {
		w.log.Warn("catalog reload rejected, keeping previous snapshot", "dir", w.dir, "error", err)
	} else {
		w.log.Info("catalog reloaded", "version", version)
	}
	if w.OnReload != nil {
		w.OnReload(version, err)
	}
}

func (w *Watcher) load(ctx context.Context) (uint64, error) {
	d, err := w.loader.Load(ctx)
	if err != nil {
		return 0, err
	}
	return w.store.Replace(d)
}

func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
