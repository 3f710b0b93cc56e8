package testutil

import "sync"

// Call is one recorded callback invocation.
type Call struct {
	Owner any
	Args  []any
}

// CallRecorder collects callback invocations for assertions.
type CallRecorder struct {
	mu    sync.Mutex
	calls []Call
}

// Record appends one invocation.
func (r *CallRecorder) Record(owner any, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Owner: owner, Args: args})
}

// Calls returns the invocations recorded so far.
func (r *CallRecorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Count returns the number of recorded invocations.
func (r *CallRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards all recorded invocations.
func (r *CallRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
