package events

// Source is the external collaborator that detects and signals named
// events. The registry calls Subscribe when the first owner registers
// for an event name and Unsubscribe when the last owner leaves, so the
// source only ever delivers event types somebody listens to. The source
// is expected to forward occurrences into Registry.Dispatch.
type Source interface {
	Subscribe(event string) error
	Unsubscribe(event string) error
}

// nopSource backs registries without a real source; such registries are
// purely push-driven through Dispatch.
type nopSource struct{}

func (nopSource) Subscribe(string) error   { return nil }
func (nopSource) Unsubscribe(string) error { return nil }
