// Package telemetry provides pluggable observability for the navigation
// engine: structured events describing navigate calls and state
// transitions, fanned out to whatever backend the embedder wants.
package telemetry

// Event represents a single observability event emitted during a
// navigate call.
//
// The coordinator that received a top-level navigate call emits events
// for the start of the call, a validation failure (with the error text),
// and the final outcome of the execution pass. Delegation into modals,
// detours and children, bubbling, and presentation changes emit no
// events of their own.
type Event struct {
	// CorrelationID identifies the top-level navigate() call this event
	// belongs to. All events produced while servicing one call (including
	// recursive delegation) share the same CorrelationID.
	CorrelationID string

	// Coordinator is the name of the coordinator that produced the event.
	Coordinator string

	// RouteID is the identifier of the route being navigated to.
	RouteID string

	// Msg is a short machine-stable description: the engine emits
	// "navigate_start", "validate_failed", "navigate_committed" and
	// "navigate_execute_failed".
	Msg string

	// Meta carries event-specific structured detail (e.g. "error" with
	// the error text on "validate_failed" events).
	Meta map[string]any
}
