package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/leadboard/internal/platform/logging"
)

func serveLogged(t *testing.T, level slog.Level, method, path string, status int) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, http.NoBody))

	return buf.String()
}

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	out := serveLogged(t, slog.LevelInfo, http.MethodPost, "/api/v1/board/drag/drop", http.StatusAccepted)

	for _, want := range []string{
		"request started",
		"request completed",
		"method=POST",
		"path=/api/v1/board/drag/drop",
		"status=202",
		"bytes=2",
		"duration=",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestLogging_HoverAndProbesAreDebug(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/api/v1/board/drag/hover", "/health/ready"} {
		if out := serveLogged(t, slog.LevelInfo, http.MethodPost, path, http.StatusOK); out != "" {
			t.Errorf("%s logged at info: %s", path, out)
		}
		if out := serveLogged(t, slog.LevelDebug, http.MethodPost, path, http.StatusOK); !strings.Contains(out, "request completed") {
			t.Errorf("%s missing at debug: %s", path, out)
		}
	}
}

func TestLogging_ServerErrorsEscalate(t *testing.T) {
	t.Parallel()

	out := serveLogged(t, slog.LevelError, http.MethodPost, "/api/v1/board/drag/hover", http.StatusInternalServerError)

	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "status=500") {
		t.Errorf("5xx not logged at error level, got: %s", out)
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/api/v1/leads/{id}/open", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-7/open", http.NoBody))

	if !strings.Contains(buf.String(), "route=/api/v1/leads/{id}/open") {
		t.Errorf("log output missing route pattern, got: %s", buf.String())
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Info("handler log")
			})),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "handler log") {
			handlerLine = line
		}
	}
	if handlerLine == "" {
		t.Fatal("handler log not captured")
	}
	if !strings.Contains(handlerLine, "req-log-test") || !strings.Contains(handlerLine, "corr-log-test") {
		t.Errorf("handler log missing request IDs: %s", handlerLine)
	}
}
