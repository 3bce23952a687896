package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("gymlog-service")
var GlobalCleanupTracer = otel.Tracer("gymlog-session-cleanup")

// EndSpanWithErrCheck records err on the span, if any, and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}
	span.End()
}

// EndSpanWithOutcome ends a span of an operation that can finish with a soft
// denial. Denials are tagged as an attribute and never marked as errors.
func EndSpanWithOutcome(span trace.Span, outcome string, err error) {
	if outcome != "" {
		span.SetAttributes(attribute.String("outcome", outcome))
	}
	EndSpanWithErrCheck(span, err)
}
