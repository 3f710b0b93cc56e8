// Package fswatch adapts filesystem notifications into a LibEvents
// notification source. It watches a set of directories with fsnotify
// and forwards each observed operation as a named event, but only for
// event names somebody has subscribed to.
package fswatch

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/BannZay/LibEvents/pkg/errors"
	"github.com/BannZay/LibEvents/pkg/logging"
)

// Event names the watcher can emit. Each carries the affected path as
// its single dispatch argument.
const (
	EventCreated = "file.created"
	EventWritten = "file.written"
	EventRemoved = "file.removed"
	EventRenamed = "file.renamed"
	EventChmod   = "file.chmod"
)

// KnownEvents lists every event name the watcher understands.
func KnownEvents() []string {
	return []string{EventCreated, EventWritten, EventRemoved, EventRenamed, EventChmod}
}

// Dispatcher receives the events the watcher observes; in production
// this is an *events.Registry.
type Dispatcher interface {
	Dispatch(event string, args ...any)
}

// Watcher implements events.Source over an fsnotify watcher. Delivery
// is gated per event name: an operation is only forwarded while its
// name has at least one Subscribe outstanding.
type Watcher struct {
	mu     sync.Mutex
	fs     *fsnotify.Watcher
	gated  map[string]bool
	logger zerolog.Logger
}

// New creates a watcher over the given directories.
func New(paths ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatchSetup, "cannot create filesystem watcher")
	}

	w := &Watcher{
		fs:     fs,
		gated:  make(map[string]bool),
		logger: logging.GetLogger("source.fswatch"),
	}

	for _, path := range paths {
		if err := w.AddPath(path); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}
	return w, nil
}

// AddPath adds another directory to the watch set.
func (w *Watcher) AddPath(path string) error {
	if err := w.fs.Add(path); err != nil {
		return errors.Wrapf(err, errors.ErrWatchSetup, "cannot watch %q", path)
	}
	w.logger.Debug().Str("path", path).Msg("Watching path")
	return nil
}

// Subscribe gates delivery of one event name on. Unknown names are
// rejected so a misspelled subscription fails at registration time.
func (w *Watcher) Subscribe(event string) error {
	if !knownEvent(event) {
		return errors.Newf(errors.ErrInvalidInput, "unknown event name '%s'", event)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.gated[event] = true
	return nil
}

// Unsubscribe gates delivery of one event name off.
func (w *Watcher) Unsubscribe(event string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.gated, event)
	return nil
}

// Start runs the forwarding loop in its own goroutine until ctx is
// cancelled or the watcher is closed.
func (w *Watcher) Start(ctx context.Context, d Dispatcher) {
	go w.run(ctx, d)
}

// Close releases the underlying fsnotify watcher, which also ends the
// forwarding loop.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) run(ctx context.Context, d Dispatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.forward(ev, d)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

// forward translates one fsnotify operation into named events. A single
// operation can carry several bits; each subscribed name fires once.
func (w *Watcher) forward(ev fsnotify.Event, d Dispatcher) {
	for _, name := range opEvents(ev.Op) {
		if !w.subscribed(name) {
			continue
		}
		w.logger.Trace().Str("event", name).Str("path", ev.Name).Msg("Forwarding event")
		d.Dispatch(name, ev.Name)
	}
}

func (w *Watcher) subscribed(event string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gated[event]
}

func knownEvent(event string) bool {
	for _, name := range KnownEvents() {
		if name == event {
			return true
		}
	}
	return false
}

// opEvents maps fsnotify op bits to event names.
func opEvents(op fsnotify.Op) []string {
	var names []string
	if op.Has(fsnotify.Create) {
		names = append(names, EventCreated)
	}
	if op.Has(fsnotify.Write) {
		names = append(names, EventWritten)
	}
	if op.Has(fsnotify.Remove) {
		names = append(names, EventRemoved)
	}
	if op.Has(fsnotify.Rename) {
		names = append(names, EventRenamed)
	}
	if op.Has(fsnotify.Chmod) {
		names = append(names, EventChmod)
	}
	return names
}
