package telemetry

// Emitter receives observability events produced while the engine
// services a navigate() call.
//
// Implementations must not block navigation for long: the engine calls
// Emit synchronously, in the same call chain as the mutation it
// describes, so events are delivered in the exact order those mutations
// occurred. Slow or fire-and-forget delivery is the implementation's
// responsibility, not the caller's.
type Emitter interface {
	// Emit delivers a single event. It must not panic.
	Emit(event Event)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(event Event)

// Emit implements Emitter.
func (f EmitterFunc) Emit(event Event) { f(event) }

// Multi fans a single event out to every emitter in order. Useful for
// combining, e.g., a LogEmitter with an OtelEmitter.
func Multi(emitters ...Emitter) Emitter {
	cp := make([]Emitter, len(emitters))
	copy(cp, emitters)
	return EmitterFunc(func(event Event) {
		for _, e := range cp {
			if e != nil {
				e.Emit(event)
			}
		}
	})
}
