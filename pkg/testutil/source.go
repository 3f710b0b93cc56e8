package testutil

import (
	"sync"

	"github.com/BannZay/LibEvents/pkg/errors"
)

// RecordingSource is a scripted events.Source for tests. It records
// subscribe and unsubscribe calls in order and can be told to fail.
type RecordingSource struct {
	mu            sync.Mutex
	subscribes    []string
	unsubscribes  []string
	active        map[string]bool
	FailSubscribe bool
}

// NewRecordingSource returns an empty recording source.
func NewRecordingSource() *RecordingSource {
	return &RecordingSource{active: make(map[string]bool)}
}

// Subscribe records the call, or fails when FailSubscribe is set.
func (s *RecordingSource) Subscribe(event string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSubscribe {
		return errors.Newf(errors.ErrInternal, "scripted subscribe failure for '%s'", event)
	}
	s.subscribes = append(s.subscribes, event)
	s.active[event] = true
	return nil
}

// Unsubscribe records the call.
func (s *RecordingSource) Unsubscribe(event string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unsubscribes = append(s.unsubscribes, event)
	delete(s.active, event)
	return nil
}

// Subscribes returns the ordered subscribe calls seen so far.
func (s *RecordingSource) Subscribes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.subscribes...)
}

// Unsubscribes returns the ordered unsubscribe calls seen so far.
func (s *RecordingSource) Unsubscribes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.unsubscribes...)
}

// IsActive reports whether event is currently subscribed.
func (s *RecordingSource) IsActive(event string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[event]
}

// ActiveCount returns the number of currently subscribed event names.
func (s *RecordingSource) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
