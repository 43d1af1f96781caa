package asset

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to a set of files. It watches their parent
// directories so files replaced by rename are still seen.
type Watcher struct {
	Debounce time.Duration

	fs      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *zap.Logger

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]int
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

// NewWatcher starts a watcher with no files.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		Debounce: DefaultDebounce,
		fs:       fw,
		changes:  make(chan string, 8),
		done:     make(chan struct{}),
		log:      logger.Named("asset"),
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		pending:  make(map[string]*time.Timer),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers the absolute path of every modified file. The main
// loop should drain it without blocking.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.files[abs] {
		return
	}
	delete(w.files, abs)
	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		_ = w.fs.Remove(dir)
	}
}

// Close stops the watcher and closes the Changes channel.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()

	w.mu.Lock()
	for _, t := range w.pending {
		if t.Stop() {
			w.wg.Done()
		}
	}
	w.pending = nil
	w.mu.Unlock()

	w.wg.Wait()
	close(w.changes)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(filepath.Clean(ev.Name))
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// schedule restarts the debounce timer of a watched file.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.files[path] || w.pending == nil {
		return
	}
	if t, ok := w.pending[path]; ok && t.Stop() {
		t.Reset(w.Debounce)
		return
	}

	// The timer func locks mu before reading t, so t is always assigned.
	var t *time.Timer
	w.wg.Add(1)
	t = time.AfterFunc(w.Debounce, func() {
		defer w.wg.Done()
		w.fire(path, t)
	})
	w.pending[path] = t
}

func (w *Watcher) fire(path string, t *time.Timer) {
	w.mu.Lock()
	if w.pending == nil {
		w.mu.Unlock()
		return
	}
	if w.pending[path] == t {
		delete(w.pending, path)
	}
	w.mu.Unlock()

	select {
	case w.changes <- path:
	case <-w.done:
	default:
		w.log.Debug("change dropped, queue full", zap.String("path", path))
	}
}
