package events

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/BannZay/LibEvents/pkg/errors"
	"github.com/BannZay/LibEvents/pkg/logging"
)

// Callback is a user callback managed by a Listener. Its first
// argument is the listener's target, followed by the event arguments.
type Callback func(target any, args ...any)

// Invoker is returned by Listener.Get: calling it with the event
// arguments produces the same call the dispatch path would make.
type Invoker func(args ...any)

// Listener is a per-owner facade over a Registry. It records which
// events its owner logically wants, independently of whether they are
// currently active: the registry holds a live entry for (listener,
// event) iff the listener is enabled and the event is in its own map.
// Disable and Enable toggle the whole set at once without disturbing
// other owners' subscriptions to the same event names.
type Listener struct {
	mu       sync.Mutex
	registry *Registry
	target   any
	enabled  bool
	events   map[string]Handler
	logger   zerolog.Logger
}

// NewListener creates an enabled listener with no events registered.
// A nil registry means the process default. The target is the value
// passed as first argument to every callback; a nil target binds the
// listener itself.
func NewListener(registry *Registry, target any) *Listener {
	if registry == nil {
		registry = Default()
	}
	l := &Listener{
		registry: registry,
		enabled:  true,
		events:   make(map[string]Handler),
		logger:   logging.GetLogger("events.listener"),
	}
	if target == nil {
		target = l
	}
	l.target = target
	return l
}

// Set is the slot-assignment form of registration: a non-nil callback
// registers it under event, a nil callback clears the slot. It mirrors
// assigning to a named event field on the original listener object.
func (l *Listener) Set(event string, cb Callback) error {
	if cb == nil {
		return l.UnregisterEvent(event)
	}
	return l.RegisterEvent(event, cb)
}

// Get is the slot-read form: it returns nil when event is not
// registered, a logged no-op while the listener is disabled, and
// otherwise an Invoker that calls the stored callback with the
// listener's target.
func (l *Listener) Get(event string) Invoker {
	l.mu.Lock()
	defer l.mu.Unlock()

	handler, ok := l.events[event]
	if !ok {
		return nil
	}
	if !l.enabled {
		return func(...any) {
			l.logger.Debug().Str("event", event).Msg("Ignored call to disabled event handler")
		}
	}
	target := l.target
	return func(args ...any) {
		handler(target, args...)
	}
}

// RegisterEvent wraps cb so it fires with the listener's target as
// first argument, records it in the listener's own map, and — only
// while the listener is enabled — registers it with the registry under
// this listener.
func (l *Listener) RegisterEvent(event string, cb Callback) error {
	if event == "" {
		return errors.New(errors.ErrInvalidInput, "event name must not be empty")
	}
	if cb == nil {
		return errors.Newf(errors.ErrInvalidInput, "handler for event '%s' must be callable", event)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	target := l.target
	wrapped := Handler(func(_ any, args ...any) {
		cb(target, args...)
	})

	l.events[event] = wrapped
	if !l.enabled {
		return nil
	}

	if _, err := l.registry.RegisterEvent(l, event, wrapped); err != nil {
		delete(l.events, event)
		return err
	}
	return nil
}

// UnregisterEvent removes event from the listener's own map and from
// the registry. The registry-side removal happens even while disabled,
// where it is a no-op. Unknown events are not an error.
func (l *Listener) UnregisterEvent(event string) error {
	if event == "" {
		return errors.New(errors.ErrInvalidInput, "event name must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.events, event)
	l.registry.UnregisterEvent(l, event)
	return nil
}

// UnregisterAllEvents releases every event in the listener's own map.
// Unlike Registry.UnregisterAllEvents this is bounded by the
// listener's own registrations.
func (l *Listener) UnregisterAllEvents() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for event := range l.events {
		l.registry.UnregisterEvent(l, event)
		delete(l.events, event)
	}
}

// Disable withdraws every live registry entry but keeps the
// listener's own map, so Enable can restore the exact same set.
// Idempotent.
func (l *Listener) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}
	l.enabled = false
	for event := range l.events {
		l.registry.UnregisterEvent(l, event)
	}
	l.logger.Debug().Int("events", len(l.events)).Msg("Listener disabled")
}

// Enable re-registers every event retained in the listener's own map.
// Idempotent.
func (l *Listener) Enable() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.enabled {
		return
	}
	l.enabled = true
	for event, handler := range l.events {
		if _, err := l.registry.RegisterEvent(l, event, handler); err != nil {
			l.logger.Error().Err(err).Str("event", event).Msg("Re-registration failed on enable")
		}
	}
	l.logger.Debug().Int("events", len(l.events)).Msg("Listener enabled")
}

// Enabled reports whether the listener currently forwards its events.
func (l *Listener) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// IsEventRegistered delegates to the registry with this listener as
// owner, so it reflects the active state rather than the listener's
// own map.
func (l *Listener) IsEventRegistered(event string) bool {
	return l.registry.IsEventRegistered(l, event)
}

// GetEventList returns a snapshot of the listener's own registered
// events in their wrapped form.
func (l *Listener) GetEventList() map[string]Handler {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := make(map[string]Handler, len(l.events))
	for event, handler := range l.events {
		list[event] = handler
	}
	return list
}

// GetOwner returns the target bound as first argument to callbacks.
func (l *Listener) GetOwner() any {
	return l.target
}
