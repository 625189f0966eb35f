package navflow

import (
	"github.com/johnnypjr/navflow/audit"
	"github.com/johnnypjr/navflow/metrics"
	"github.com/johnnypjr/navflow/telemetry"
)

// Option configures a Coordinator[R] at construction time. Modeled on the
// functional-options pattern: each Option mutates the coordinator being
// built, applied in the order passed to NewCoordinator.
type Option[R Route] func(*Coordinator[R])

// WithEmitter attaches an observability emitter. Defaults to
// telemetry.NullEmitter if never set.
func WithEmitter[R Route](e telemetry.Emitter) Option[R] {
	return func(c *Coordinator[R]) {
		if e != nil {
			c.emitter = e
		}
	}
}

// WithMetrics attaches a Prometheus collector. Unset by default, meaning
// no metrics are recorded.
func WithMetrics[R Route](m *metrics.Collector) Option[R] {
	return func(c *Coordinator[R]) { c.collector = m }
}

// WithAuditSink attaches a write-only SQLite audit trail. Unset by
// default.
func WithAuditSink[R Route](sink *audit.SQLiteSink) Option[R] {
	return func(c *Coordinator[R]) { c.audit = sink }
}

// WithPresentationContext overrides the default ContextRoot a freshly
// constructed coordinator starts with. Coordinators that are later
// attached via AddChild, activated as a modal, or presented as a detour
// have their context overwritten again at that point; this option only
// matters for a coordinator that will remain a standalone tree root.
func WithPresentationContext[R Route](ctx PresentationContext) Option[R] {
	return func(c *Coordinator[R]) { c.presentationContext = ctx }
}
