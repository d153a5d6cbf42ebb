// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/leadboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/leadboard/internal/adapters/http/middleware"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Board  *handlers.BoardHandler
	Lead   *handlers.LeadHandler
	Events *handlers.EventsHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The timeout middleware
// (may be nil) wraps every route except the event stream, which stays open
// for the lifetime of the client.
func NewRouter(
	h Handlers,
	timeout func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/board/events", h.Events.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(timeout))

			// Board read model.
			r.Get("/board", h.Board.GetBoard)
			r.Post("/board/reload", h.Board.Reload)
			r.Put("/board/regions", h.Board.SetLayout)

			// Drag gesture.
			r.Post("/board/drag", h.Board.StartDrag)
			r.Post("/board/drag/hover", h.Board.Hover)
			r.Post("/board/drag/drop", h.Board.Drop)
			r.Post("/board/drag/cancel", h.Board.CancelDrag)

			// Leads outside a drag.
			r.Post("/leads", h.Lead.CreateLead)
			r.Post("/leads/{id}/open", h.Lead.OpenLead)
		})
	})

	return r
}
