package telemetry

// NullEmitter discards every event. It is the default emitter for
// coordinators that do not configure one explicitly.
type NullEmitter struct{}

// NewNullEmitter returns an Emitter that does nothing.
func NewNullEmitter() NullEmitter { return NullEmitter{} }

// Emit implements Emitter by discarding event.
func (NullEmitter) Emit(Event) {}
