package events

import "sync"

// Process-wide default registry. It exists for hosts that want a single
// shared registry without threading it through every constructor; code
// that can take a *Registry dependency should prefer that.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating a source-less
// one on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = New(nil)
	}
	return defaultRegistry
}

// SetDefault installs r as the process-wide registry. Typically called
// once at startup with a registry bound to a real source.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = r
}

// ResetDefault discards the process-wide registry. The next Default
// call creates a fresh one. Intended for teardown and tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = nil
}
