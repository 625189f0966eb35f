package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OtelEmitter turns each event into a point-in-time OpenTelemetry span.
//
// Each span is started from context.Background(), so spans are not
// nested; the events of one navigate() call share the same
// navflow.correlation_id attribute, which lets a trace backend group
// them. An event whose Meta carries an "error" string marks its span
// with an error status.
type OtelEmitter struct {
	tracer trace.Tracer
}

// NewOtelEmitter creates an OtelEmitter from an OpenTelemetry tracer,
// typically otel.Tracer("navflow").
func NewOtelEmitter(tracer trace.Tracer) *OtelEmitter {
	return &OtelEmitter{tracer: tracer}
}

// Emit starts and immediately ends a span named after event.Msg.
func (o *OtelEmitter) Emit(event Event) {
	_, span := o.tracer.Start(context.Background(), event.Msg)
	defer span.End()

	span.SetAttributes(
		attribute.String("navflow.correlation_id", event.CorrelationID),
		attribute.String("navflow.coordinator", event.Coordinator),
		attribute.String("navflow.route_id", event.RouteID),
	)
	for k, v := range event.Meta {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
	if errMsg, ok := event.Meta["error"].(string); ok {
		span.SetStatus(codes.Error, errMsg)
		span.RecordError(fmt.Errorf("%s", errMsg))
	}
}

// Flush forces the process-wide tracer provider to export buffered spans,
// if it supports doing so (SDK providers do; the no-op provider does not).
func (o *OtelEmitter) Flush(ctx context.Context) error {
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := otel.GetTracerProvider().(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}
