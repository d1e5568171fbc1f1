package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "github.com/cssverse/csslin/internal/types"
)

// debounce window after a write event; editors often fire several
// events for one save.
const watchSettle = 100 * time.Millisecond

type watcher struct {
	fs       *fsnotify.Watcher
	onIssues func(filename string, issues []tt.Issue)
	onError  func(err error)
	done     chan struct{}
}

// StartWatching lints stylesheet files under the given directories
// every time one is written. Callbacks receive results and watcher
// errors; Stop ends the loop.
func (e *Engine) StartWatching(
	dirs []string,
	isStylesheet func(string) bool,
	onIssues func(filename string, issues []tt.Issue),
	onError func(err error),
) error {
	if e.watcher != nil {
		return fmt.Errorf("already watching")
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return fs.Add(path)
			}
			return nil
		})
		if err != nil {
			fs.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = &watcher{
		fs:       fs,
		onIssues: onIssues,
		onError:  onError,
		done:     make(chan struct{}),
	}
	go e.watchLoop(isStylesheet)
	return nil
}

// StopWatching closes the watcher and ends the watch loop.
func (e *Engine) StopWatching() error {
	if e.watcher == nil {
		return nil
	}
	w := e.watcher
	e.watcher = nil
	err := w.fs.Close()
	<-w.done
	return err
}

func (e *Engine) watchLoop(isStylesheet func(string) bool) {
	w := e.watcher
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, isStylesheet)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, isStylesheet func(string) bool) {
	w := e.watcher
	if w == nil || event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !isStylesheet(event.Name) {
		return
	}
	time.Sleep(watchSettle)
	issues, err := e.Run(event.Name)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onIssues != nil {
		w.onIssues(event.Name, issues)
	}
}
