// Package watch tracks the picker's current browse directory with fsnotify
// so the result list can be re-ranked when the directory changes on disk.
package watch

import (
	"sync"
	"time"

	"pickd/internal/errors"
	"pickd/internal/log"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of filesystem events into one notification.
const debounceDelay = 100 * time.Millisecond

// Watcher monitors a single directory at a time. Change bursts are coalesced
// and surfaced as empty tokens on Events; the consumer re-runs its current
// query in response.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan struct{}
	stopChan  chan struct{}
	stopOnce  sync.Once

	mutex sync.Mutex
	dir   string
}

// New creates a watcher. Start must be called before events are delivered.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// SetDirectory swaps the watched directory, dropping the previous watch.
func (w *Watcher) SetDirectory(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		// Removal failure is harmless: the old directory may be gone already.
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.Debugf("removing watch on %s: %v", w.dir, err)
		}
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.NewPathError("failed to watch directory", dir, errors.WatchFailed, err)
	}
	w.dir = dir
	return nil
}

// Events delivers one token per coalesced burst of directory changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start runs the event loop in a goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

// Stop ends the event loop and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if err := w.fsWatcher.Close(); err != nil {
			log.Debugf("closing fsnotify watcher: %v", err)
		}
	})
}
