package events

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BannZay/LibEvents/pkg/errors"
	"github.com/BannZay/LibEvents/pkg/logging"
)

// Handler is the registry-level callback. It receives the owner the
// handler was registered under, followed by the event's arguments.
type Handler func(owner any, args ...any)

// Registry maps event names to the owners interested in them. Each
// distinct event name holds exactly one subscription to the external
// source regardless of how many owners listen to it; creating one
// source subscription per interested party is the inefficiency this
// type exists to eliminate.
//
// Owners are compared as map keys, so they must be comparable. Use
// pointer owners to get identity semantics.
type Registry struct {
	mu      sync.Mutex
	source  Source
	entries map[string]map[any]Handler
	logger  zerolog.Logger
}

// New creates a Registry bound to the given notification source.
// A nil source is allowed; the registry is then driven entirely by
// direct Dispatch calls.
func New(source Source) *Registry {
	if source == nil {
		source = nopSource{}
	}
	return &Registry{
		source:  source,
		entries: make(map[string]map[any]Handler),
		logger:  logging.GetLogger("events.registry"),
	}
}

type registerOptions struct {
	doNotOverride bool
}

// RegisterOption adjusts RegisterEvent behavior.
type RegisterOption func(*registerOptions)

// DoNotOverride makes RegisterEvent keep an existing handler for the
// same (owner, event) pair instead of overwriting it.
func DoNotOverride() RegisterOption {
	return func(o *registerOptions) {
		o.doNotOverride = true
	}
}

// RegisterEvent stores handler for (owner, event). The first owner for
// an event name triggers exactly one Subscribe call on the source.
// It returns false without modification when DoNotOverride is set and
// the owner already has a handler for the event.
func (r *Registry) RegisterEvent(owner any, event string, handler Handler, opts ...RegisterOption) (bool, error) {
	if owner == nil {
		return false, errors.New(errors.ErrInvalidInput, "owner must not be nil")
	}
	if event == "" {
		return false, errors.New(errors.ErrInvalidInput, "event name must not be empty")
	}
	if handler == nil {
		return false, errors.New(errors.ErrInvalidInput, "handler must not be nil")
	}

	var options registerOptions
	for _, opt := range opts {
		opt(&options)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owners, ok := r.entries[event]
	if !ok {
		if err := r.source.Subscribe(event); err != nil {
			return false, errors.Wrapf(err, errors.ErrSourceSubscribe, "cannot subscribe to event '%s'", event)
		}
		owners = make(map[any]Handler)
		r.entries[event] = owners
		r.logger.Debug().Str("event", event).Msg("Subscribed to source")
	}

	if _, exists := owners[owner]; exists && options.doNotOverride {
		return false, nil
	}

	owners[owner] = handler
	r.logger.Trace().Str("event", event).Int("owners", len(owners)).Msg("Handler registered")
	return true, nil
}

// UnregisterEvent removes owner's handler for event. Removing the last
// owner drops the event entry and releases the source subscription.
// Unknown owners and events are a no-op, not an error.
func (r *Registry) UnregisterEvent(owner any, event string) {
	if owner == nil || event == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owners, ok := r.entries[event]
	if !ok {
		return
	}
	if _, exists := owners[owner]; !exists {
		return
	}

	// More than one owner remains: drop only this owner's entry.
	if len(owners) > 1 {
		delete(owners, owner)
		r.logger.Trace().Str("event", event).Int("owners", len(owners)).Msg("Handler unregistered")
		return
	}

	delete(r.entries, event)
	if err := r.source.Unsubscribe(event); err != nil {
		r.logger.Error().Err(err).Str("event", event).Msg("Unsubscribe from source failed")
	}
	r.logger.Debug().Str("event", event).Msg("Unsubscribed from source")
}

// UnregisterAllEvents removes owner's subscription from every event
// name that holds one. This scans the whole registry; callers that
// remove frequently should track their own registrations through a
// Listener instead.
func (r *Registry) UnregisterAllEvents(owner any) {
	if owner == nil {
		return
	}

	r.mu.Lock()
	events := make([]string, 0, len(r.entries))
	for event, owners := range r.entries {
		if _, exists := owners[owner]; exists {
			events = append(events, event)
		}
	}
	r.mu.Unlock()

	for _, event := range events {
		r.UnregisterEvent(owner, event)
	}
}

// IsEventRegistered reports whether owner currently has a handler
// stored for event.
func (r *Registry) IsEventRegistered(owner any, event string) bool {
	if owner == nil || event == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owners, ok := r.entries[event]
	if !ok {
		return false
	}
	_, exists := owners[owner]
	return exists
}

// Dispatch invokes every handler registered for event with its owner
// and args. The owner set is snapshotted first, so handlers may
// register and unregister freely while the dispatch runs; changes take
// effect on the next Dispatch. Invocation order is unspecified. A
// panicking handler is logged and does not stop the remaining ones.
func (r *Registry) Dispatch(event string, args ...any) {
	type entry struct {
		owner   any
		handler Handler
	}

	r.mu.Lock()
	owners := r.entries[event]
	snapshot := make([]entry, 0, len(owners))
	for owner, handler := range owners {
		snapshot = append(snapshot, entry{owner: owner, handler: handler})
	}
	r.mu.Unlock()

	r.logger.Trace().Str("event", event).Int("owners", len(snapshot)).Msg("Dispatching event")

	for _, e := range snapshot {
		r.invoke(event, e.owner, e.handler, args)
	}
}

// invoke isolates handler failures so one panicking handler cannot
// abort the dispatch of the others.
func (r *Registry) invoke(event string, owner any, handler Handler, args []any) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("event", event).
				Interface("panic", rec).
				Msg("Handler panicked during dispatch")
		}
	}()
	handler(owner, args...)
}

// EventNames returns the names with at least one owner, sorted.
func (r *Registry) EventNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for event := range r.entries {
		names = append(names, event)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of owners registered for event.
func (r *Registry) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries[event])
}
