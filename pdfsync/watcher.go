package pdfsync

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Watcher is a thin translation layer over OS filesystem notifications for
// a single directory. It applies no relevance filtering — every notification
// below the root comes out of Events as a RawEvent; the engine decides what
// matters. The subscription lives for the life of the process.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan RawEvent
}

// NewWatcher starts monitoring root and begins delivering normalized events.
func NewWatcher(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, serr.Wrap(err, "failed to create filesystem watcher")
	}
	if err = fsw.Add(root); err != nil {
		_ = fsw.Close()
		return nil, serr.Wrap(err, "failed to watch directory", "dir", root)
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan RawEvent, 64),
	}
	go w.run()

	logger.Info("Watching directory for changes", "dir", root)
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				close(w.events)
				return
			}
			w.events <- RawEvent{
				Op:   ev.Op.String(),
				Name: filepath.Base(ev.Name),
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				close(w.events)
				return
			}
			// Watcher errors are not fatal; the engine rescans on the
			// next event so a lost notification cannot corrupt state
			logger.LogErr(err, "filesystem watcher error")
		}
	}
}

// Events is the stream of normalized notifications. It is closed when the
// watcher is closed.
func (w *Watcher) Events() <-chan RawEvent {
	return w.events
}

// Close tears down the OS subscription and ends the event stream.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
