package tracing

import "go.opentelemetry.io/otel"

// GlobalTracer is used across handlers and the API client; with no SDK
// configured it is a no-op, the deployment wires an exporter via the
// standard OTEL_* env vars.
var GlobalTracer = otel.Tracer("fitdash")
