package shader

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/gldraw/internal/logging"
)

// Watcher reports shader files that changed on disk.
//
// fsnotify delivers events on its own goroutine; Watcher only collects the
// names, and the render thread drains them with Changed, which never blocks.
type Watcher struct {
	fw      *fsnotify.Watcher
	watched map[string]bool

	mu      sync.Mutex
	changed map[string]bool
	done    chan struct{}
}

// Watch starts watching the given shader files. The parent directories are
// watched rather than the files, so editors that save by renaming a
// temporary file are still noticed.
func Watch(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader: watch: %w", err)
	}
	w := &Watcher{
		fw:      fw,
		watched: make(map[string]bool),
		changed: make(map[string]bool),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader: watch %s: %w", p, err)
		}
		w.watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader: watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if !w.watched[name] {
				continue
			}
			w.mu.Lock()
			w.changed[name] = true
			w.mu.Unlock()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logging.Logger().Warn("shader: watch error", "err", err)
		}
	}
}

// Changed returns the sorted absolute paths of watched files modified since
// the previous call, and forgets them.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.changed) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.changed))
	for name := range w.changed {
		out = append(out, name)
	}
	clear(w.changed)
	sort.Strings(out)
	return out
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
