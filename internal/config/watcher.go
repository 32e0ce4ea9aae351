package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reports changes to the macro source files so running
// macro text can be refreshed without restarting the device. The
// tick loop drains Changes between ticks; the single-writer model
// of the engine is preserved because only the loop applies updates.
type Watcher struct {
	fsw     *fsnotify.Watcher
	watched map[string]bool
	changes chan string
	log     *logrus.Entry
}

// NewWatcher watches the given files via their parent directories,
// which survives the write-rename dance editors do on save.
func NewWatcher(log *logrus.Entry, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		watched: make(map[string]bool),
		changes: make(chan string, 1),
		log:     log,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("config: resolve %s: %w", p, err)
		}
		w.watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("config: watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

// Changes delivers the path of each changed watched file. The
// channel holds one pending change; bursts coalesce.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.watched[abs] {
				continue
			}
			select {
			case w.changes <- abs:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("file watcher error")
		}
	}
}
