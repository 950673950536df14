package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	tt "github.com/rubylint/rubylint/internal/types"
)

// Watcher re-lints Ruby files when they change on disk.
type Watcher struct {
	engine    *Engine
	watcher   *fsnotify.Watcher
	dirs      []string
	onIssues  func(filename string, issues []tt.Issue)
	isRunning bool
}

// NewWatcher creates a Watcher over the given directories. onIssues is
// invoked with the results of every re-lint.
func NewWatcher(engine *Engine, dirs []string, onIssues func(string, []tt.Issue)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}
	return &Watcher{
		engine:   engine,
		watcher:  fsWatcher,
		dirs:     dirs,
		onIssues: onIssues,
	}, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine.
func (w *Watcher) Start() error {
	if w.isRunning {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isRunning = true
	go w.watchLoop()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isRunning {
		log.Println("not watching")
	}

	w.isRunning = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isRunning {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if strings.HasSuffix(event.Name, ".rb") {
			// wait for a while after file change to consider multiple changes as one
			time.Sleep(100 * time.Millisecond)
			issues, err := w.engine.Run(event.Name)
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			if w.onIssues != nil {
				w.onIssues(event.Name, issues)
			}
		}
	}
}
