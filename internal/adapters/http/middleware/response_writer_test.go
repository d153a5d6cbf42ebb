package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestResponseWriter_RecordsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(rw *responseWriter)
		want  int
	}{
		{"implicit 200", func(rw *responseWriter) { _, _ = rw.Write([]byte("{}")) }, http.StatusOK},
		{"explicit 202", func(rw *responseWriter) { rw.WriteHeader(http.StatusAccepted) }, http.StatusAccepted},
		{"first status wins", func(rw *responseWriter) {
			rw.WriteHeader(http.StatusConflict)
			rw.WriteHeader(http.StatusOK)
		}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.want {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.want)
			}
			if rec.Code != tt.want {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.want)
			}
			if !rw.headerWritten {
				t.Error("headerWritten = false, want true")
			}
		})
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	_, _ = rw.Write([]byte("event: board\n"))
	_, _ = rw.Write([]byte("data: {}\n\n"))

	if rw.written != 23 {
		t.Errorf("written = %d, want 23", rw.written)
	}
}

func TestResponseWriter_FlushReachesUnderlyingWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	var w http.ResponseWriter = rw
	f, ok := w.(http.Flusher)
	if !ok {
		t.Fatal("responseWriter does not implement http.Flusher")
	}
	f.Flush()

	if !rec.Flushed {
		t.Error("underlying recorder was not flushed")
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.Post("/api/v1/leads/{id}/open", func(_ http.ResponseWriter, req *http.Request) {
		got = routePattern(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leads/L-9/open", http.NoBody))

	if got != "/api/v1/leads/{id}/open" {
		t.Errorf("routePattern() = %q, want %q", got, "/api/v1/leads/{id}/open")
	}

	bare := httptest.NewRequest(http.MethodGet, "/unrouted", http.NoBody)
	if got := routePattern(bare); got != "/unrouted" {
		t.Errorf("routePattern() without router = %q, want /unrouted", got)
	}
}
