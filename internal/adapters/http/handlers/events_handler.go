package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/leadboard/internal/adapters/events"
	"github.com/jsamuelsen11/leadboard/internal/platform/logging"
)

// defaultHeartbeat keeps idle connections alive through proxies.
const defaultHeartbeat = 15 * time.Second

// EventSource hands out event subscriptions. Implemented by *events.Hub.
type EventSource interface {
	Subscribe() (<-chan events.Event, func())
}

// EventsHandler streams board events to the view layer as Server-Sent Events.
type EventsHandler struct {
	source    EventSource
	heartbeat time.Duration
}

// NewEventsHandler creates an EventsHandler. A non-positive heartbeat selects
// the default interval.
func NewEventsHandler(source EventSource, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &EventsHandler{source: source, heartbeat: heartbeat}
}

// Stream handles GET /api/v1/board/events. The stream ends when the client
// disconnects or the source closes the subscription.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	rc := http.NewResponseController(w)

	// The stream outlives the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		logger.DebugContext(ctx, "cannot clear write deadline", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ch, cancel := h.source.Subscribe()
	defer cancel()

	_, _ = fmt.Fprint(w, "retry: 3000\n\n")
	if err := rc.Flush(); err != nil {
		logger.ErrorContext(ctx, "streaming not supported",
			slog.String("operation", "EventsHandler.Stream"),
			slog.Any("error", err),
		)
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			_ = rc.Flush()
		case e, ok := <-ch:
			if !ok {
				return
			}
			if err := writeEvent(w, e); err != nil {
				logger.WarnContext(ctx, "dropping SSE client",
					slog.String("operation", "EventsHandler.Stream"),
					slog.Any("error", err),
				)
				return
			}
			_ = rc.Flush()
		}
	}
}

// writeEvent writes one SSE frame.
func writeEvent(w http.ResponseWriter, e events.Event) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", e.Type, err)
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Type, data)
	return err
}
