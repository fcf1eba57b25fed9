package trace

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPExporter ships completed interactions to an OTLP endpoint.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// NewOTLPExporter creates an exporter when OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Returns nil (disabled) otherwise.
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "slidepanel"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("slidepanel/drawer"),
		enabled:  true,
	}, nil
}

// ExportInteraction exports a completed interaction span tree.
func (e *OTLPExporter) ExportInteraction(ctx context.Context, in *Interaction) error {
	if e == nil || !e.enabled || in.RootSpan == nil {
		return nil
	}
	traceID, err := hexToTraceID(in.ID)
	if err != nil {
		return err
	}
	traceCtx := oteltrace.ContextWithSpanContext(ctx, oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: oteltrace.FlagsSampled,
	}))
	e.exportSpan(traceCtx, in.RootSpan, oteltrace.SpanContext{})
	return nil
}

// exportSpan recursively exports a span and its children, preserving
// the trace ID and parent structure. The SDK assigns fresh span IDs.
func (e *OTLPExporter) exportSpan(ctx context.Context, span *Span, parent oteltrace.SpanContext) {
	parentCtx := ctx
	if parent.IsValid() {
		parentCtx = oteltrace.ContextWithSpanContext(ctx, parent)
	}

	_, otlpSpan := e.tracer.Start(
		parentCtx,
		span.Name,
		oteltrace.WithTimestamp(span.StartTime),
	)

	attrs := make([]attribute.KeyValue, 0, len(span.Attributes))
	for k, v := range span.Attributes {
		attrs = append(attrs, attribute.String("slidepanel."+k, v))
	}
	otlpSpan.SetAttributes(attrs...)
	otlpSpan.End(oteltrace.WithTimestamp(span.StartTime.Add(span.Duration)))

	current := otlpSpan.SpanContext()
	for _, child := range span.Children {
		e.exportSpan(ctx, child, current)
	}
}

func hexToTraceID(hexStr string) (oteltrace.TraceID, error) {
	bytes, err := hex.DecodeString(hexStr)
	if err != nil {
		return oteltrace.TraceID{}, err
	}
	if len(bytes) != 16 {
		return oteltrace.TraceID{}, fmt.Errorf("trace id %q is not 16 bytes", hexStr)
	}
	var traceID oteltrace.TraceID
	copy(traceID[:], bytes)
	return traceID, nil
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
