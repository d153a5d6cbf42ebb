package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/leadboard/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/leadboard/internal/adapters/http"
	"github.com/jsamuelsen11/leadboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/leadboard/internal/domain/lead"
	"github.com/jsamuelsen11/leadboard/internal/ports"
	"github.com/jsamuelsen11/leadboard/mocks"
)

func newTestHandlers(t *testing.T) (adapthttp.Handlers, *mocks.MockBoardService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	registry := mocks.NewMockHealthRegistry(t)

	return adapthttp.Handlers{
		Board:  handlers.NewBoardHandler(svc),
		Lead:   handlers.NewLeadHandler(svc),
		Events: handlers.NewEventsHandler(events.NewHub(1, nil), time.Hour),
		Health: handlers.NewHealthHandler(registry),
	}, svc, registry
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockBoardService) {
	t.Helper()
	h, svc, _ := newTestHandlers(t)
	return adapthttp.NewRouter(h, nil), svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/board"},
		{http.MethodGet, "/api/v1/board/events"},
		{http.MethodPost, "/api/v1/board/reload"},
		{http.MethodPut, "/api/v1/board/regions"},
		{http.MethodPost, "/api/v1/board/drag"},
		{http.MethodPost, "/api/v1/board/drag/hover"},
		{http.MethodPost, "/api/v1/board/drag/drop"},
		{http.MethodPost, "/api/v1/board/drag/cancel"},
		{http.MethodPost, "/api/v1/leads"},
		{http.MethodPost, "/api/v1/leads/{id}/open"},
	}

	chiRouter, ok := router.(chi.Routes)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, _, registry := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, nil, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_TimeoutWrapsAPIRoutes(t *testing.T) {
	t.Parallel()

	h, svc, _ := newTestHandlers(t)

	var wrapped []string
	timeout := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped = append(wrapped, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
	router := adapthttp.NewRouter(h, timeout)

	svc.EXPECT().Board(mock.Anything).Return(&ports.BoardView{
		Columns: []ports.ColumnView{{Stage: lead.StageNew}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))

	if len(wrapped) != 1 || wrapped[0] != "/api/v1/board" {
		t.Errorf("timeout wrapped %v, want [/api/v1/board]", wrapped)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board/events", nil).WithContext(ctx))

	if len(wrapped) != 1 {
		t.Errorf("timeout wrapped the event stream: %v", wrapped)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}
}

func TestRouter_IntegrationGetBoard(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().Board(mock.Anything).Return(&ports.BoardView{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/board", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
