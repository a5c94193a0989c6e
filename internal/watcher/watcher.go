// Package watcher watches the theme file and reports changes so the app can
// reload the registry through the detector's single notification path.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kyleking/termkit/internal/logging"
)

// debounceWindow coalesces the burst of events editors emit per save.
const debounceWindow = 100 * time.Millisecond

// ThemeWatcher emits the watched path on its Reloads channel after every
// settled change to the file.
type ThemeWatcher struct {
	path    string
	fsw     *fsnotify.Watcher
	reloads chan string

	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// New watches the directory containing path. Watching the directory rather
// than the file survives the rename-and-replace dance editors do on save.
func New(path string) (*ThemeWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &ThemeWatcher{
		path:    path,
		fsw:     fsw,
		reloads: make(chan string, 1),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Reloads returns the channel carrying settled-change notifications.
func (w *ThemeWatcher) Reloads() <-chan string {
	return w.reloads
}

// Stop ends the watch. Safe to call more than once.
func (w *ThemeWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
		w.wg.Wait()
	})
}

func (w *ThemeWatcher) run() {
	defer w.wg.Done()

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
			} else {
				debounce.Reset(debounceWindow)
			}
			pending = debounce.C

		case <-pending:
			pending = nil

			select {
			case w.reloads <- w.path:
			default:
				// A reload is already queued; the consumer reads the file
				// fresh either way.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			logging.Warn("theme watch error", "error", err)
		}
	}
}
