package tui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gtree-project/gtree/internal/logger"
)

// Watcher reports external modifications of the open tree file. It
// watches the containing directory rather than the file itself: saves
// replace the file by rename, which would silently drop a direct
// file watch.
type Watcher struct {
	fw      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher starts watching the tree file at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run(filepath.Base(path))
	return w, nil
}

func (w *Watcher) run(base string) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: one pending notification is enough.
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("file watch: %v", err)

		case <-w.done:
			return
		}
	}
}

// Changes delivers one value per batch of file modifications.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
