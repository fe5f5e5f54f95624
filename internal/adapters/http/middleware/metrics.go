package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskvault/taskvault/internal/platform/telemetry"
)

// tracerName scopes the spans started by this middleware.
const tracerName = "github.com/taskvault/taskvault/internal/adapters/http/middleware"

// Metrics returns middleware that records a server span plus the request
// counter and duration histogram for every inbound request. A nil Metrics
// disables instrumentation (telemetry turned off).
func Metrics(m *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		tracer := otel.Tracer(tracerName)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(r.URL.Path),
				telemetry.AttrHTTPStatus.Int(rw.statusCode),
			)

			m.RequestTotal.Add(ctx, 1, attrs)
			m.RequestDuration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
		})
	}
}
