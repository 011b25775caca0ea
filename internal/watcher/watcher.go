// Package watcher monitors the user sources file and publishes a
// debounced event when it changes, so the running app can reload the
// tile source catalog.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/pubsub"
)

// EventType values published by the watcher.
const (
	SourcesChanged pubsub.EventType = "sources_changed"
	WatchError     pubsub.EventType = "watch_error"
)

// Event is the payload published on sources-file changes.
type Event struct {
	Path string
	Err  error
}

// Config holds watcher options.
type Config struct {
	// Path of the sources YAML file to watch.
	Path string
	// Debounce collapses rapid consecutive writes into one event.
	Debounce time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(path string) Config {
	return Config{Path: path, Debounce: 500 * time.Millisecond}
}

// Watcher monitors one file and publishes change events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	broker    *pubsub.Broker[Event]
	done      chan struct{}
}

// New creates a sources-file watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      cfg.Path,
		debounce:  cfg.Debounce,
		broker:    pubsub.NewBroker[Event](),
		done:      make(chan struct{}),
	}, nil
}

// Broker exposes the event broker for subscriptions.
func (w *Watcher) Broker() *pubsub.Broker[Event] {
	return w.broker
}

// Start begins watching the directory containing the sources file.
// Watching the directory rather than the file survives editors that
// replace the file on save.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	go w.loop()
	log.Debug(log.CatWatcher, "Watching sources file", "path", w.path)
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-timerC(timer):
			if pending {
				log.Debug(log.CatWatcher, "Sources file changed", "path", w.path)
				w.broker.Publish(SourcesChanged, Event{Path: w.path})
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.broker.Publish(WatchError, Event{Path: w.path, Err: err})

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}
