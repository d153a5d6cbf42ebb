package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/leadboard/internal/platform/telemetry"
)

// Tracing tests are not parallel because they replace the global
// TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

// boardRouter mounts two routes shaped like the board API behind the
// OpenTelemetry middleware.
func boardRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Post("/api/v1/leads/{id}/open", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	r.Get("/api/v1/board/events", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestOpenTelemetry_SpanNamedAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-42/open", http.NoBody)
	boardRouter(nil, http.StatusNotFound).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}

	span := spans[0]
	if want := "HTTP POST /api/v1/leads/{id}/open"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}

	attrs := make(map[string]any)
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	if got := attrs["http.route"]; got != "/api/v1/leads/{id}/open" {
		t.Errorf("http.route = %v, want /api/v1/leads/{id}/open", got)
	}
	if got, ok := attrs["http.status_code"].(int64); !ok || got != http.StatusNotFound {
		t.Errorf("http.status_code = %v, want %d", attrs["http.status_code"], http.StatusNotFound)
	}
	if span.Status.Code == codes.Error {
		t.Error("4xx marked the span as an error")
	}
}

func TestOpenTelemetry_SetsErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-1/open", http.NoBody)
	boardRouter(nil, http.StatusBadGateway).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %d, want %d (Error)", spans[0].Status.Code, codes.Error)
	}
}

func TestOpenTelemetry_RecordsMetricsExceptEventStream(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "leadboard-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := boardRouter(metrics, http.StatusOK)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-1/open", http.NoBody))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-2/open", http.NoBody))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/board/events", http.NoBody))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	perRoute := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("request total is %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(attribute.Key("http.route"))
				perRoute[route.AsString()] += dp.Value
			}
		}
	}

	if got := perRoute["/api/v1/leads/{id}/open"]; got != 2 {
		t.Errorf("open requests = %d, want 2", got)
	}
	if got, ok := perRoute["/api/v1/board/events"]; ok {
		t.Errorf("event stream recorded %d requests, want none", got)
	}
}

func TestOpenTelemetry_NilMetricsNoPanic(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	boardRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-1/open", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
