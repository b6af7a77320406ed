// Package tracing installs the OpenTelemetry tracer provider for the server.
package tracing

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

const defaultServiceName = "galacticquest"

type Config struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Version     string
}

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

var stdoutWriter io.Writer = os.Stdout

// Init sets the global tracer provider and propagator. With tracing disabled
// the global no-op provider stays in place. An empty endpoint exports to
// stdout; otherwise spans go to the OTLP/HTTP collector at that address.
func Init(ctx context.Context, cfg Config, logger logging.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = defaultServiceName
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(name),
			semconv.ServiceVersionKey.String(cfg.Version),
			attribute.String("service.component", "server"),
		),
	)
	if err != nil {
		logger.Warn(ctx, "otel resource init failed (continuing)", "error", err)
	}

	exporter, err := buildExporter(ctx, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info(ctx, "otel tracing initialized", "service", name, "endpoint", cfg.Endpoint)
	return tp.Shutdown, nil
}

func buildExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return stdouttrace.New(stdouttrace.WithWriter(stdoutWriter), stdouttrace.WithPrettyPrint())
	}
	// WithEndpoint takes host:port; a plain http:// address means no TLS.
	opts := []otlptracehttp.Option{}
	if rest, ok := strings.CutPrefix(endpoint, "http://"); ok {
		endpoint = rest
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	opts = append(opts, otlptracehttp.WithEndpoint(strings.TrimPrefix(endpoint, "https://")))
	return otlptracehttp.New(ctx, opts...)
}
